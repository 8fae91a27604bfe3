package service

import (
	"time"

	"github.com/TWhiteShadow/gamevault/internal/apperr"
	"github.com/TWhiteShadow/gamevault/internal/models"
	"github.com/TWhiteShadow/gamevault/internal/repository"
	"github.com/TWhiteShadow/gamevault/internal/validation"
	"github.com/TWhiteShadow/gamevault/pkg/logger"
	"go.uber.org/zap"
)

// VideoGameInput carries the raw fields of a video game write request.
// Pointer fields distinguish "absent" from "present": on update, absent
// fields keep their prior values. The Editor and Categories keys carry raw
// ids that are resolved against the store before anything else runs.
type VideoGameInput struct {
	Title       *string
	Description *string
	ReleaseDate *string
	CoverImage  *string
	Editor      *uint
	Categories  *[]uint
}

type VideoGameService struct {
	gameRepo     *repository.VideoGameRepository
	editorRepo   *repository.EditorRepository
	categoryRepo *repository.CategoryRepository
}

func NewVideoGameService(
	gameRepo *repository.VideoGameRepository,
	editorRepo *repository.EditorRepository,
	categoryRepo *repository.CategoryRepository,
) *VideoGameService {
	return &VideoGameService{
		gameRepo:     gameRepo,
		editorRepo:   editorRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *VideoGameService) List() ([]models.VideoGame, error) {
	games, err := s.gameRepo.GetAll()
	if err != nil {
		logger.Log.Error("Failed to fetch video games", zap.Error(err))
		return nil, apperr.Internal(err)
	}
	return games, nil
}

func (s *VideoGameService) Get(id uint) (*models.VideoGame, error) {
	game, err := s.gameRepo.GetByID(id)
	if err != nil {
		logger.Log.Error("Failed to fetch video game", zap.Uint("video_game_id", id), zap.Error(err))
		return nil, apperr.Internal(err)
	}
	if game == nil {
		return nil, apperr.NotFound("Video game")
	}
	return game, nil
}

// Create runs the write pipeline: resolve the Editor and Categories
// references, then validate the assembled candidate, then persist. A request
// whose references do not resolve never reaches validation.
func (s *VideoGameService) Create(input VideoGameInput) (*models.VideoGame, error) {
	game := &models.VideoGame{}

	if err := s.resolveRelations(game, input); err != nil {
		return nil, err
	}

	violations := s.applyFields(game, input)
	violations = append(violations, validation.ValidateVideoGame(game)...)
	if len(violations) > 0 {
		logger.Log.Warn("Video game validation failed", zap.Int("violations", len(violations)))
		return nil, apperr.ValidationFailed(violations)
	}

	if err := s.gameRepo.Create(game); err != nil {
		logger.Log.Error("Failed to create video game", zap.String("title", game.Title), zap.Error(err))
		return nil, apperr.Internal(err)
	}

	logger.Log.Info("Video game created",
		zap.Uint("video_game_id", game.ID),
		zap.String("title", game.Title),
		zap.Uint("editor_id", game.EditorID),
		zap.Int("categories", len(game.Categories)),
	)

	return s.Get(game.ID)
}

// Update merges the provided fields onto the stored game, re-resolving any
// relation ids present in the payload, and persists the result.
func (s *VideoGameService) Update(id uint, input VideoGameInput) (*models.VideoGame, error) {
	game, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := s.resolveRelations(game, input); err != nil {
		return nil, err
	}

	violations := s.applyFields(game, input)
	violations = append(violations, validation.ValidateVideoGame(game)...)
	if len(violations) > 0 {
		logger.Log.Warn("Video game validation failed", zap.Uint("video_game_id", id))
		return nil, apperr.ValidationFailed(violations)
	}

	if err := s.gameRepo.Save(game); err != nil {
		logger.Log.Error("Failed to update video game", zap.Uint("video_game_id", id), zap.Error(err))
		return nil, apperr.Internal(err)
	}

	logger.Log.Info("Video game updated", zap.Uint("video_game_id", game.ID))

	return s.Get(game.ID)
}

func (s *VideoGameService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	if err := s.gameRepo.Delete(id); err != nil {
		logger.Log.Error("Failed to delete video game", zap.Uint("video_game_id", id), zap.Error(err))
		return apperr.Internal(err)
	}

	logger.Log.Info("Video game deleted", zap.Uint("video_game_id", id))

	return nil
}

// resolveRelations looks up the Editor and Categories ids of the payload and
// attaches the persisted entities to the candidate. An unknown id aborts the
// write with ReferenceNotFound before field validation runs. No partial
// category list is ever attached.
func (s *VideoGameService) resolveRelations(game *models.VideoGame, input VideoGameInput) error {
	if input.Editor != nil {
		editor, err := s.editorRepo.GetByID(*input.Editor)
		if err != nil {
			logger.Log.Error("Failed to resolve editor", zap.Uint("editor_id", *input.Editor), zap.Error(err))
			return apperr.Internal(err)
		}
		if editor == nil {
			logger.Log.Warn("Unknown editor reference", zap.Uint("editor_id", *input.Editor))
			return apperr.ReferenceNotFound("Editor")
		}
		game.EditorID = editor.ID
		game.Editor = *editor
	}

	if input.Categories != nil {
		ids := *input.Categories
		categories, err := s.categoryRepo.GetByIDs(ids)
		if err != nil {
			logger.Log.Error("Failed to resolve categories", zap.Error(err))
			return apperr.Internal(err)
		}
		if len(categories) != len(uniqueIDs(ids)) {
			logger.Log.Warn("Unknown category reference", zap.Uints("category_ids", ids))
			return apperr.ReferenceNotFound("Category")
		}
		game.Categories = categories
	}

	return nil
}

// applyFields merges the scalar payload fields onto the candidate. A release
// date that does not parse as a calendar date is reported as a violation.
func (s *VideoGameService) applyFields(game *models.VideoGame, input VideoGameInput) []apperr.Violation {
	var violations []apperr.Violation

	if input.Title != nil {
		game.Title = *input.Title
	}
	if input.Description != nil {
		game.Description = *input.Description
	}
	if input.CoverImage != nil {
		game.CoverImage = input.CoverImage
	}
	if input.ReleaseDate != nil {
		date, err := time.Parse(models.ReleaseDateFormat, *input.ReleaseDate)
		if err != nil {
			violations = append(violations, apperr.Violation{
				Field:   "releaseDate",
				Message: "The release date must be a valid date (YYYY-MM-DD)",
			})
		} else {
			game.ReleaseDate = date
		}
	}

	return violations
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}
