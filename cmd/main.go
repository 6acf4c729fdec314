package main

import (
	"github.com/kooooct/futoru/config"
	"github.com/kooooct/futoru/routes"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	env := config.LoadEnv()
	config.InitDB(env)

	r := routes.SetupRouter(env)
	if err := r.Run(env.ServerAddr); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
