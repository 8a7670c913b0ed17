package cmd

import (
	"log"

	"github.com/qastore/pkg/config"
	"github.com/qastore/pkg/database"
	"github.com/qastore/pkg/logging"
	"github.com/qastore/pkg/server"
	"github.com/qastore/pkg/utils"
)

func StartApp() {
	utils.LoadEnv()
	conf := config.InitConfig()

	logger, err := logging.New(conf.App.Env)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	database.InitDB(conf.Database)
	server.LaunchHttpServer(conf, logger)
}
