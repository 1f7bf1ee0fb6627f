package main

import (
	"log"

	"github.com/Cesar-OOS/sistemaCursosTecnm/app/config"
	"github.com/Cesar-OOS/sistemaCursosTecnm/app/database"
)

func main() {
	log.Println("Starting manual migration...")

	config.InitDB()
	db := config.GetDB()
	if db == nil {
		log.Fatal("Failed to get database instance")
	}
	defer db.Close()

	if err := database.RunMigrations(db, config.GetDriver()); err != nil {
		log.Fatal("Migration failed:", err)
	}

	log.Println("Manual migration completed successfully!")
}
