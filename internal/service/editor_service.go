package service

import (
	"github.com/TWhiteShadow/gamevault/internal/apperr"
	"github.com/TWhiteShadow/gamevault/internal/models"
	"github.com/TWhiteShadow/gamevault/internal/repository"
	"github.com/TWhiteShadow/gamevault/internal/validation"
	"github.com/TWhiteShadow/gamevault/pkg/logger"
	"go.uber.org/zap"
)

type EditorService struct {
	editorRepo *repository.EditorRepository
}

func NewEditorService(editorRepo *repository.EditorRepository) *EditorService {
	return &EditorService{editorRepo: editorRepo}
}

func (s *EditorService) List() ([]models.Editor, error) {
	editors, err := s.editorRepo.GetAll()
	if err != nil {
		logger.Log.Error("Failed to fetch editors", zap.Error(err))
		return nil, apperr.Internal(err)
	}
	return editors, nil
}

func (s *EditorService) Get(id uint) (*models.Editor, error) {
	editor, err := s.editorRepo.GetByID(id)
	if err != nil {
		logger.Log.Error("Failed to fetch editor", zap.Uint("editor_id", id), zap.Error(err))
		return nil, apperr.Internal(err)
	}
	if editor == nil {
		return nil, apperr.NotFound("Editor")
	}
	return editor, nil
}

func (s *EditorService) Create(name, country string) (*models.Editor, error) {
	editor := &models.Editor{Name: name, Country: country}

	if violations := validation.ValidateEditor(editor); len(violations) > 0 {
		logger.Log.Warn("Editor validation failed", zap.Int("violations", len(violations)))
		return nil, apperr.ValidationFailed(violations)
	}

	if err := s.editorRepo.Create(editor); err != nil {
		logger.Log.Error("Failed to create editor", zap.String("name", name), zap.Error(err))
		return nil, apperr.Internal(err)
	}

	logger.Log.Info("Editor created",
		zap.Uint("editor_id", editor.ID),
		zap.String("name", editor.Name),
		zap.String("country", editor.Country),
	)

	return editor, nil
}

// Update merges the provided fields onto the stored editor.
func (s *EditorService) Update(id uint, name, country *string) (*models.Editor, error) {
	editor, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		editor.Name = *name
	}
	if country != nil {
		editor.Country = *country
	}

	if violations := validation.ValidateEditor(editor); len(violations) > 0 {
		logger.Log.Warn("Editor validation failed", zap.Uint("editor_id", id))
		return nil, apperr.ValidationFailed(violations)
	}

	if err := s.editorRepo.Save(editor); err != nil {
		logger.Log.Error("Failed to update editor", zap.Uint("editor_id", id), zap.Error(err))
		return nil, apperr.Internal(err)
	}

	logger.Log.Info("Editor updated", zap.Uint("editor_id", editor.ID))

	return editor, nil
}

// Delete removes the editor and, with it, every video game it owns.
func (s *EditorService) Delete(id uint) error {
	editor, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := s.editorRepo.Delete(id); err != nil {
		logger.Log.Error("Failed to delete editor", zap.Uint("editor_id", id), zap.Error(err))
		return apperr.Internal(err)
	}

	logger.Log.Info("Editor deleted",
		zap.Uint("editor_id", id),
		zap.Int("cascaded_games", len(editor.VideoGames)),
	)

	return nil
}
