package main

import (
	"github.com/lexatlas/lexatlas/internal/server"
	"github.com/lexatlas/lexatlas/internal/util"
	"github.com/lexatlas/lexatlas/pkg/logger"
	"github.com/lexatlas/lexatlas/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
