package service

import (
	"github.com/TWhiteShadow/gamevault/internal/apperr"
	"github.com/TWhiteShadow/gamevault/internal/models"
	"github.com/TWhiteShadow/gamevault/internal/repository"
	"github.com/TWhiteShadow/gamevault/internal/validation"
	"github.com/TWhiteShadow/gamevault/pkg/logger"
	"go.uber.org/zap"
)

type CategoryService struct {
	categoryRepo *repository.CategoryRepository
}

func NewCategoryService(categoryRepo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) List() ([]models.Category, error) {
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		logger.Log.Error("Failed to fetch categories", zap.Error(err))
		return nil, apperr.Internal(err)
	}
	return categories, nil
}

func (s *CategoryService) Get(id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		logger.Log.Error("Failed to fetch category", zap.Uint("category_id", id), zap.Error(err))
		return nil, apperr.Internal(err)
	}
	if category == nil {
		return nil, apperr.NotFound("Category")
	}
	return category, nil
}

func (s *CategoryService) Create(name string) (*models.Category, error) {
	category := &models.Category{Name: name}

	if violations := validation.ValidateCategory(category); len(violations) > 0 {
		logger.Log.Warn("Category validation failed", zap.Int("violations", len(violations)))
		return nil, apperr.ValidationFailed(violations)
	}

	if err := s.categoryRepo.Create(category); err != nil {
		logger.Log.Error("Failed to create category", zap.String("name", name), zap.Error(err))
		return nil, apperr.Internal(err)
	}

	logger.Log.Info("Category created",
		zap.Uint("category_id", category.ID),
		zap.String("name", category.Name),
	)

	return category, nil
}

// Update merges the provided fields onto the stored category. Absent fields
// keep their prior values.
func (s *CategoryService) Update(id uint, name *string) (*models.Category, error) {
	category, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		category.Name = *name
	}

	if violations := validation.ValidateCategory(category); len(violations) > 0 {
		logger.Log.Warn("Category validation failed", zap.Uint("category_id", id))
		return nil, apperr.ValidationFailed(violations)
	}

	if err := s.categoryRepo.Save(category); err != nil {
		logger.Log.Error("Failed to update category", zap.Uint("category_id", id), zap.Error(err))
		return nil, apperr.Internal(err)
	}

	logger.Log.Info("Category updated", zap.Uint("category_id", category.ID))

	return category, nil
}

func (s *CategoryService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	if err := s.categoryRepo.Delete(id); err != nil {
		logger.Log.Error("Failed to delete category", zap.Uint("category_id", id), zap.Error(err))
		return apperr.Internal(err)
	}

	logger.Log.Info("Category deleted", zap.Uint("category_id", id))

	return nil
}
