package main

import (
	"database/sql"
	"log"
	"os"

	"github.com/joho/godotenv"

	"platforme-educatif/app/config"
	"platforme-educatif/app/database"
)

func main() {
	log.Println("Starting manual migration...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migrations failed:", err)
	}

	// Optionally apply extra SQL files passed on the command line
	for _, path := range os.Args[1:] {
		executeSQLFile(db, path)
	}

	log.Println("Manual migration completed successfully!")
}

func executeSQLFile(db *sql.DB, filePath string) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("Skipping %s: %v", filePath, err)
		return
	}

	log.Printf("Executing %s...", filePath)
	if _, err := db.Exec(string(content)); err != nil {
		log.Printf("Error executing %s: %v", filePath, err)
	} else {
		log.Printf("Successfully executed %s", filePath)
	}
}
