package main

import (
	"github.com/Habib786340/CustomerLeadApplication/config"
	"github.com/Habib786340/CustomerLeadApplication/models"
	"github.com/Habib786340/CustomerLeadApplication/routes"
	"github.com/Habib786340/CustomerLeadApplication/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(&models.Profile{}, &models.ProfileImage{}, &models.AuditEntry{})

	r := routes.SetupRouter(db)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
