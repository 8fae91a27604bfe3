package repository

import (
	"errors"
	"time"

	"github.com/TWhiteShadow/gamevault/internal/models"
	"gorm.io/gorm"
)

type VideoGameRepository struct {
	db *gorm.DB
}

func NewVideoGameRepository(db *gorm.DB) *VideoGameRepository {
	return &VideoGameRepository{db: db}
}

// Create inserts the game and its category join rows. The editor is an
// already-persisted reference; only its id is written.
func (r *VideoGameRepository) Create(game *models.VideoGame) error {
	return r.db.Omit("Editor").Create(game).Error
}

// Save persists field changes and replaces the category associations with
// the ones currently set on the model.
func (r *VideoGameRepository) Save(game *models.VideoGame) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(game).Association("Categories").Replace(game.Categories); err != nil {
			return err
		}
		return tx.Omit("Categories", "Editor").Save(game).Error
	})
}

func (r *VideoGameRepository) GetByID(id uint) (*models.VideoGame, error) {
	var game models.VideoGame
	err := r.db.Preload("Editor").Preload("Categories").First(&game, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &game, nil
}

func (r *VideoGameRepository) GetAll() ([]models.VideoGame, error) {
	var games []models.VideoGame
	err := r.db.Preload("Editor").Preload("Categories").Order("id").Find(&games).Error
	if err != nil {
		return nil, err
	}
	return games, nil
}

func (r *VideoGameRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		game := models.VideoGame{ID: id}
		if err := tx.Model(&game).Association("Categories").Clear(); err != nil {
			return err
		}
		return tx.Delete(&game).Error
	})
}

// CountByEditor returns how many games an editor currently owns.
func (r *VideoGameRepository) CountByEditor(editorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.VideoGame{}).Where("editor_id = ?", editorID).Count(&count).Error
	return count, err
}

// GetReleasedBetween returns the games whose release date falls in
// [from, to), for the newsletter.
func (r *VideoGameRepository) GetReleasedBetween(from, to time.Time) ([]models.VideoGame, error) {
	var games []models.VideoGame
	err := r.db.
		Preload("Editor").
		Where("release_date >= ? AND release_date < ?", from, to).
		Order("release_date").
		Find(&games).Error
	if err != nil {
		return nil, err
	}
	return games, nil
}
