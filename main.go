package main

import (
	"time"

	"github.com/saeedNW/go-divar/config"
	"github.com/saeedNW/go-divar/routes"
	"github.com/saeedNW/go-divar/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase()
	defer config.CloseDatabase()

	r := routes.SetupRouter(db)

	// Start background cleanup for abandoned temp uploads (best-effort)
	utils.StartTempUploadSweeper(5 * time.Minute)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
