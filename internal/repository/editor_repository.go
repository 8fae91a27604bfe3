package repository

import (
	"errors"

	"github.com/TWhiteShadow/gamevault/internal/models"
	"gorm.io/gorm"
)

type EditorRepository struct {
	db *gorm.DB
}

func NewEditorRepository(db *gorm.DB) *EditorRepository {
	return &EditorRepository{db: db}
}

func (r *EditorRepository) Create(editor *models.Editor) error {
	return r.db.Create(editor).Error
}

func (r *EditorRepository) Save(editor *models.Editor) error {
	return r.db.Save(editor).Error
}

func (r *EditorRepository) GetByID(id uint) (*models.Editor, error) {
	var editor models.Editor
	err := r.db.Preload("VideoGames").First(&editor, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &editor, nil
}

func (r *EditorRepository) GetAll() ([]models.Editor, error) {
	var editors []models.Editor
	err := r.db.Preload("VideoGames").Order("id").Find(&editors).Error
	if err != nil {
		return nil, err
	}
	return editors, nil
}

// Delete removes the editor and all its video games, join rows included.
// The whole cascade commits as one transaction.
func (r *EditorRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Exec(
			"DELETE FROM video_game_categories WHERE video_game_id IN (SELECT id FROM video_games WHERE editor_id = ?)",
			id,
		).Error
		if err != nil {
			return err
		}
		if err := tx.Where("editor_id = ?", id).Delete(&models.VideoGame{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Editor{}, id).Error
	})
}
