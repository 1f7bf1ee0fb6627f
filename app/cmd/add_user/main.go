package main

import (
	"flag"
	"fmt"

	"github.com/Cesar-OOS/sistemaCursosTecnm/app/config"
	"github.com/Cesar-OOS/sistemaCursosTecnm/app/database"
	"github.com/Cesar-OOS/sistemaCursosTecnm/app/models"

	"github.com/google/uuid"
)

func main() {
	email := flag.String("email", "", "login email")
	password := flag.String("password", "", "login password")
	firstName := flag.String("first-name", "Coordinación", "first name")
	lastName := flag.String("last-name", "Desarrollo Académico", "last name")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Println("Usage: add_user -email <email> -password <password>")
		return
	}

	config.InitDB()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		return
	}
	defer db.Close()

	user := &models.User{
		ID:        uuid.New().String(),
		Email:     *email,
		Password:  *password,
		FirstName: *firstName,
		LastName:  *lastName,
	}

	if err := database.CreateUser(db, config.GetDriver(), user); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		return
	}

	fmt.Printf("User created successfully: %s %s (%s)\n", user.FirstName, user.LastName, user.Email)
}
