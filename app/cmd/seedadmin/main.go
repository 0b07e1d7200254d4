package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"platforme-educatif/app/config"
	"platforme-educatif/app/database"
	"platforme-educatif/app/models"
	"platforme-educatif/app/routes/auth"
)

// Seeds the first administrator account.
func main() {
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password")
	firstName := flag.String("first-name", "Admin", "first name")
	lastName := flag.String("last-name", "User", "last name")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("Usage: seedadmin -email <email> -password <password>")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
	config.InitDB()
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user := &models.User{
		Email:     *email,
		Password:  hash,
		FirstName: *firstName,
		LastName:  *lastName,
	}
	if err := database.CreateUserWithRole(config.GetDB(), user, "admin"); err != nil {
		log.Fatal("Failed to create admin user:", err)
	}

	log.Printf("Admin user %s created with id %s", user.Email, user.ID)
}
