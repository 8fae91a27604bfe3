package main

import (
	"log"
	"os"
	"time"

	"github.com/TWhiteShadow/gamevault/internal/config"
	"github.com/TWhiteShadow/gamevault/internal/database"
	"github.com/TWhiteShadow/gamevault/internal/models"
	"github.com/TWhiteShadow/gamevault/internal/utils"
)

func main() {
	cfg := config.Load()
	database.Connect(cfg)
	database.Migrate()

	seedAdmin()
	seedCatalog()
	seedSubscribers()
}

func seedAdmin() {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminEmail == "" || adminPassword == "" {
		log.Fatal("Missing environment variables: ADMIN_EMAIL, ADMIN_PASSWORD")
	}

	var admin models.User
	result := database.DB.Where("email = ?", adminEmail).First(&admin)

	if result.Error == nil {
		log.Println("Admin user already exists:", admin.Email)
		return
	}

	passwordHash, err := utils.HashPassword(adminPassword)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin = models.User{
		Email:        adminEmail,
		PasswordHash: passwordHash,
		Roles:        models.RoleSet{models.RoleAdmin}.Normalize(),
	}

	if err := database.DB.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin:", err)
	}

	log.Println("Admin user created:", admin.Email)
}

func seedCatalog() {
	var count int64
	database.DB.Model(&models.Category{}).Count(&count)
	if count > 0 {
		log.Println("Catalog already seeded, skipping")
		return
	}

	categoryNames := []string{"Action", "Adventure", "RPG", "Strategy", "Sports", "Simulation"}
	categories := make([]models.Category, 0, len(categoryNames))
	for _, name := range categoryNames {
		categories = append(categories, models.Category{Name: name})
	}
	if err := database.DB.Create(&categories).Error; err != nil {
		log.Fatal("Failed to create categories:", err)
	}

	editorData := [][2]string{
		{"Nintendo", "Japan"},
		{"Electronic Arts", "United States"},
		{"Ubisoft", "France"},
		{"CD Projekt Red", "Poland"},
		{"Square Enix", "Japan"},
	}
	editors := make([]models.Editor, 0, len(editorData))
	for _, entry := range editorData {
		editors = append(editors, models.Editor{Name: entry[0], Country: entry[1]})
	}
	if err := database.DB.Create(&editors).Error; err != nil {
		log.Fatal("Failed to create editors:", err)
	}

	games := []models.VideoGame{
		{
			Title:       "The Legend of Zelda: Breath of the Wild",
			ReleaseDate: date("2017-03-03"),
			Description: "An open-world action-adventure game",
			EditorID:    editors[0].ID,
			Categories:  []models.Category{categories[0], categories[1]},
		},
		{
			Title:       "FIFA 24",
			ReleaseDate: date("2023-09-29"),
			Description: "A football simulation game",
			EditorID:    editors[1].ID,
			Categories:  []models.Category{categories[4], categories[5]},
		},
		{
			Title:       "Assassin's Creed Valhalla",
			ReleaseDate: date("2020-11-10"),
			Description: "An action role-playing game set in the Viking age",
			EditorID:    editors[2].ID,
			Categories:  []models.Category{categories[0], categories[2]},
		},
		{
			Title:       "The Witcher 3: Wild Hunt",
			ReleaseDate: date("2015-05-19"),
			Description: "An open-world action role-playing game",
			EditorID:    editors[3].ID,
			Categories:  []models.Category{categories[0], categories[2]},
		},
		{
			Title:       "Final Fantasy VII Rebirth",
			ReleaseDate: date("2024-02-29"),
			Description: "A role-playing game remaking a classic",
			EditorID:    editors[4].ID,
			Categories:  []models.Category{categories[2]},
		},
	}
	if err := database.DB.Omit("Editor").Create(&games).Error; err != nil {
		log.Fatal("Failed to create video games:", err)
	}

	log.Printf("Catalog seeded: %d categories, %d editors, %d games",
		len(categories), len(editors), len(games))
}

func seedSubscribers() {
	var count int64
	database.DB.Model(&models.User{}).Where("newsletter_subscription = ?", true).Count(&count)
	if count > 0 {
		log.Println("Subscribers already seeded, skipping")
		return
	}

	emails := []string{"player1@example.com", "player2@example.com"}
	for _, email := range emails {
		passwordHash, err := utils.HashPassword("ChangeMe123")
		if err != nil {
			log.Fatal("Failed to hash password:", err)
		}
		user := models.User{
			Email:                  email,
			PasswordHash:           passwordHash,
			Roles:                  models.RoleSet{}.Normalize(),
			NewsletterSubscription: true,
		}
		if err := database.DB.Create(&user).Error; err != nil {
			log.Fatal("Failed to create subscriber:", err)
		}
	}

	log.Printf("Seeded %d newsletter subscribers", len(emails))
}

func date(value string) time.Time {
	parsed, err := time.Parse(models.ReleaseDateFormat, value)
	if err != nil {
		log.Fatal("Invalid seed date:", err)
	}
	return parsed
}
