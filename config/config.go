package config

import (
	"fmt"

	"github.com/kooooct/futoru/models"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Env holds everything read from the environment at startup.
type Env struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	ServerAddr string
	JWTSecret  string

	// Daily target used whenever a profile is missing or incomplete.
	FallbackTargetCalories int
}

// LoadEnv reads .env (if present) and the process environment.
func LoadEnv() *Env {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file, using process environment")
	}

	viper.AutomaticEnv()
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_USER", "futoru")
	viper.SetDefault("DB_PASSWORD", "futoru")
	viper.SetDefault("DB_NAME", "futoru")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("SERVER_ADDR", ":8080")
	viper.SetDefault("FALLBACK_TARGET_CALORIES", 2200)

	return &Env{
		DBHost:                 viper.GetString("DB_HOST"),
		DBUser:                 viper.GetString("DB_USER"),
		DBPassword:             viper.GetString("DB_PASSWORD"),
		DBName:                 viper.GetString("DB_NAME"),
		DBPort:                 viper.GetString("DB_PORT"),
		ServerAddr:             viper.GetString("SERVER_ADDR"),
		JWTSecret:              viper.GetString("JWT_SECRET"),
		FallbackTargetCalories: viper.GetInt("FALLBACK_TARGET_CALORIES"),
	}
}

func InitDB(env *Env) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		env.DBHost,
		env.DBUser,
		env.DBPassword,
		env.DBName,
		env.DBPort,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.FoodItem{},
		&models.MealLog{},
		&models.Recipe{},
	)
	if err != nil {
		logrus.Fatalf("AutoMigrate failed: %v", err)
	}
}
