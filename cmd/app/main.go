package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"Smart-Fridge-Manager/cmd/config"
	migration "Smart-Fridge-Manager/cmd/database/migrate"
	"Smart-Fridge-Manager/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}

	app, scheduler, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("App initialization failed: %v", err)
	}

	if err := scheduler.Start(); err != nil {
		log.Fatalf("Scheduler start failed: %v", err)
	}
	defer scheduler.Stop()

	port := utils.GetConfig("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}
