package service

import (
	"github.com/TWhiteShadow/gamevault/internal/apperr"
	"github.com/TWhiteShadow/gamevault/internal/models"
	"github.com/TWhiteShadow/gamevault/internal/repository"
	"github.com/TWhiteShadow/gamevault/internal/utils"
	"github.com/TWhiteShadow/gamevault/internal/validation"
	"github.com/TWhiteShadow/gamevault/pkg/logger"
	"go.uber.org/zap"
)

// UserInput carries the raw fields of a user write request. Pointer fields
// distinguish absent from present for partial updates.
type UserInput struct {
	Email                  *string
	Password               *string
	Roles                  *models.RoleSet
	NewsletterSubscription *bool
}

type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) List() ([]models.User, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		logger.Log.Error("Failed to fetch users", zap.Error(err))
		return nil, apperr.Internal(err)
	}
	return users, nil
}

func (s *UserService) Get(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		logger.Log.Error("Failed to fetch user", zap.Uint("user_id", id), zap.Error(err))
		return nil, apperr.Internal(err)
	}
	if user == nil {
		return nil, apperr.NotFound("User")
	}
	return user, nil
}

func (s *UserService) Create(input UserInput) (*models.User, error) {
	var violations []apperr.Violation

	email := ""
	if input.Email != nil {
		email = *input.Email
	}
	violations = append(violations, validation.ValidateEmail(email)...)

	if input.Password == nil || *input.Password == "" {
		violations = append(violations, apperr.Violation{Field: "password", Message: "The password is required"})
	}

	if len(violations) == 0 {
		existing, err := s.userRepo.GetByEmail(email)
		if err != nil {
			logger.Log.Error("Failed to check email uniqueness", zap.String("email", email), zap.Error(err))
			return nil, apperr.Internal(err)
		}
		if existing != nil {
			violations = append(violations, apperr.Violation{Field: "email", Message: "The email is already used"})
		}
	}

	if len(violations) > 0 {
		logger.Log.Warn("User validation failed", zap.Int("violations", len(violations)))
		return nil, apperr.ValidationFailed(violations)
	}

	passwordHash, err := utils.HashPassword(*input.Password)
	if err != nil {
		logger.Log.Error("Failed to hash password", zap.Error(err))
		return nil, apperr.Internal(err)
	}

	roles := models.RoleSet{}
	if input.Roles != nil {
		roles = *input.Roles
	}

	user := &models.User{
		Email:        email,
		PasswordHash: passwordHash,
		Roles:        roles.Normalize(),
	}
	if input.NewsletterSubscription != nil {
		user.NewsletterSubscription = *input.NewsletterSubscription
	}

	if err := s.userRepo.Create(user); err != nil {
		logger.Log.Error("Failed to create user", zap.String("email", email), zap.Error(err))
		return nil, apperr.Internal(err)
	}

	logger.Log.Info("User created",
		zap.Uint("user_id", user.ID),
		zap.String("email", user.Email),
		zap.Strings("roles", user.Roles.Strings()),
	)

	return user, nil
}

// Update merges the provided fields onto the stored user. Only an
// administrator may change the roles set: a roles field submitted by anyone
// else is accepted but discarded, leaving the stored roles untouched.
func (s *UserService) Update(id uint, input UserInput, actorIsAdmin bool) (*models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	var violations []apperr.Violation

	if input.Email != nil && *input.Email != user.Email {
		violations = append(violations, validation.ValidateEmail(*input.Email)...)
		if len(violations) == 0 {
			existing, err := s.userRepo.GetByEmail(*input.Email)
			if err != nil {
				logger.Log.Error("Failed to check email uniqueness", zap.Error(err))
				return nil, apperr.Internal(err)
			}
			if existing != nil {
				violations = append(violations, apperr.Violation{Field: "email", Message: "The email is already used"})
			}
		}
		if len(violations) == 0 {
			user.Email = *input.Email
		}
	}

	if len(violations) > 0 {
		logger.Log.Warn("User validation failed", zap.Uint("user_id", id))
		return nil, apperr.ValidationFailed(violations)
	}

	if input.Password != nil && *input.Password != "" {
		passwordHash, err := utils.HashPassword(*input.Password)
		if err != nil {
			logger.Log.Error("Failed to hash password", zap.Error(err))
			return nil, apperr.Internal(err)
		}
		user.PasswordHash = passwordHash
	}

	if input.Roles != nil {
		if actorIsAdmin {
			user.Roles = input.Roles.Normalize()
		} else {
			logger.Log.Warn("Roles change discarded for non-admin actor", zap.Uint("user_id", id))
		}
	}

	if input.NewsletterSubscription != nil {
		user.NewsletterSubscription = *input.NewsletterSubscription
	}

	if err := s.userRepo.Save(user); err != nil {
		logger.Log.Error("Failed to update user", zap.Uint("user_id", id), zap.Error(err))
		return nil, apperr.Internal(err)
	}

	logger.Log.Info("User updated", zap.Uint("user_id", user.ID))

	return user, nil
}

// Delete removes the user, refusing to drop the administrator count to zero.
// The count-then-delete runs inside one transaction.
func (s *UserService) Delete(id uint) error {
	user, err := s.Get(id)
	if err != nil {
		return err
	}

	err = s.userRepo.Transaction(func(txRepo *repository.UserRepository) error {
		if user.Roles.Has(models.RoleAdmin) {
			count, err := txRepo.CountAdmins()
			if err != nil {
				return apperr.Internal(err)
			}
			if count <= 1 {
				logger.Log.Warn("Refusing to delete the last admin", zap.Uint("user_id", id))
				return apperr.LastAdminProtected()
			}
		}
		return txRepo.Delete(id)
	})
	if err != nil {
		if appErr, ok := err.(*apperr.Error); ok {
			return appErr
		}
		logger.Log.Error("Failed to delete user", zap.Uint("user_id", id), zap.Error(err))
		return apperr.Internal(err)
	}

	logger.Log.Info("User deleted", zap.Uint("user_id", id))

	return nil
}
