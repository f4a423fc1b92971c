package main

import (
	"github.com/devsultan06/myjourney2026/config"
	"github.com/devsultan06/myjourney2026/models"
	"github.com/devsultan06/myjourney2026/routes"
	"github.com/devsultan06/myjourney2026/utils"
)

func main() {
	cfg := config.Load()

	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(
		&models.User{},
		&models.Activity{},
		&models.CodingSession{},
		&models.LeetCodeProblem{},
		&models.Workout{},
		&models.Book{},
		&models.JobApplication{},
		&models.Event{},
		&models.Task{},
		&models.Notification{},
	)

	r := routes.SetupRouter(db)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
