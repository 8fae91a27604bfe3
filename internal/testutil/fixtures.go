package testutil

import (
	"time"

	"github.com/TWhiteShadow/gamevault/internal/models"
	"github.com/TWhiteShadow/gamevault/internal/utils"
)

// CreateTestUser creates a user with a hashed password
func CreateTestUser(email, password string, roles models.RoleSet, newsletter bool) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	return &models.User{
		Email:                  email,
		PasswordHash:           hashedPassword,
		Roles:                  roles.Normalize(),
		NewsletterSubscription: newsletter,
	}, nil
}

// DefaultTestUser returns a default regular user
func DefaultTestUser() (*models.User, error) {
	return CreateTestUser("user@example.com", "Test123456", models.RoleSet{models.RoleUser}, false)
}

// DefaultAdminUser returns a default admin user
func DefaultAdminUser() (*models.User, error) {
	return CreateTestUser("admin@example.com", "Admin123456", models.RoleSet{models.RoleAdmin}, false)
}

// CreateTestEditor creates an editor fixture
func CreateTestEditor(name, country string) *models.Editor {
	return &models.Editor{Name: name, Country: country}
}

// CreateTestCategory creates a category fixture
func CreateTestCategory(name string) *models.Category {
	return &models.Category{Name: name}
}

// CreateTestVideoGame creates a video game fixture owned by the given editor
func CreateTestVideoGame(title string, releaseDate time.Time, editorID uint) *models.VideoGame {
	return &models.VideoGame{
		Title:       title,
		ReleaseDate: releaseDate,
		Description: "A test game",
		EditorID:    editorID,
	}
}
