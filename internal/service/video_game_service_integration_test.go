package service_test

import (
	"errors"
	"testing"

	"github.com/TWhiteShadow/gamevault/internal/apperr"
	"github.com/TWhiteShadow/gamevault/internal/models"
	"github.com/TWhiteShadow/gamevault/internal/repository"
	"github.com/TWhiteShadow/gamevault/internal/service"
	"github.com/TWhiteShadow/gamevault/internal/testutil"
	"github.com/TWhiteShadow/gamevault/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// CatalogServiceIntegrationTestSuite covers the editor, category and video
// game services against an in-memory database
type CatalogServiceIntegrationTestSuite struct {
	suite.Suite
	testDB          *testutil.TestDatabase
	editorService   *service.EditorService
	categoryService *service.CategoryService
	gameService     *service.VideoGameService

	nintendo *models.Editor
	action   *models.Category
	aventure *models.Category
}

// SetupSuite runs before all tests
func (s *CatalogServiceIntegrationTestSuite) SetupSuite() {
	logger.Init(false)

	s.testDB = testutil.SetupTestDatabase(s.T())

	editorRepo := repository.NewEditorRepository(s.testDB.DB)
	categoryRepo := repository.NewCategoryRepository(s.testDB.DB)
	gameRepo := repository.NewVideoGameRepository(s.testDB.DB)

	s.editorService = service.NewEditorService(editorRepo)
	s.categoryService = service.NewCategoryService(categoryRepo)
	s.gameService = service.NewVideoGameService(gameRepo, editorRepo, categoryRepo)
}

// TearDownSuite runs after all tests
func (s *CatalogServiceIntegrationTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

// SetupTest runs before each test: reset tables and recreate base fixtures
func (s *CatalogServiceIntegrationTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)

	s.nintendo = testutil.CreateTestEditor("Nintendo", "Japan")
	s.testDB.DB.Create(s.nintendo)

	s.action = testutil.CreateTestCategory("Action")
	s.aventure = testutil.CreateTestCategory("Aventure")
	s.testDB.DB.Create(s.action)
	s.testDB.DB.Create(s.aventure)
}

func asAppError(t *testing.T, err error) *apperr.Error {
	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr), "error should be an application error")
	return appErr
}

func strPtr(v string) *string { return &v }

func uintPtr(v uint) *uint { return &v }

func (s *CatalogServiceIntegrationTestSuite) TestCreateVideoGame() {
	input := service.VideoGameInput{
		Title:       strPtr("The Legend of Zelda"),
		Description: strPtr("An open world adventure"),
		ReleaseDate: strPtr("2025-03-03"),
		Editor:      uintPtr(s.nintendo.ID),
		Categories:  &[]uint{s.action.ID, s.aventure.ID},
	}

	game, err := s.gameService.Create(input)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), game)

	assert.NotZero(s.T(), game.ID)
	assert.Equal(s.T(), "The Legend of Zelda", game.Title)
	assert.Equal(s.T(), "2025-03-03", game.ReleaseDate.Format(models.ReleaseDateFormat))
	assert.Equal(s.T(), s.nintendo.ID, game.EditorID)
	assert.Equal(s.T(), "Nintendo", game.Editor.Name)
	assert.Len(s.T(), game.Categories, 2)
}

func (s *CatalogServiceIntegrationTestSuite) TestCreateVideoGameUnknownEditor() {
	input := service.VideoGameInput{
		Title:       strPtr("Ghost Game"),
		Description: strPtr("References an editor that does not exist"),
		ReleaseDate: strPtr("2025-01-01"),
		Editor:      uintPtr(9999),
	}

	game, err := s.gameService.Create(input)
	require.Error(s.T(), err)
	assert.Nil(s.T(), game)

	appErr := asAppError(s.T(), err)
	assert.Equal(s.T(), apperr.CodeReferenceNotFound, appErr.Code)
	assert.Equal(s.T(), "Editor not found", appErr.Message)

	// Nothing was persisted
	var count int64
	s.testDB.DB.Model(&models.VideoGame{}).Count(&count)
	assert.Equal(s.T(), int64(0), count)
}

func (s *CatalogServiceIntegrationTestSuite) TestCreateVideoGameUnknownCategory() {
	input := service.VideoGameInput{
		Title:       strPtr("Ghost Game"),
		Description: strPtr("References a category that does not exist"),
		ReleaseDate: strPtr("2025-01-01"),
		Editor:      uintPtr(s.nintendo.ID),
		Categories:  &[]uint{s.action.ID, 9999},
	}

	game, err := s.gameService.Create(input)
	require.Error(s.T(), err)
	assert.Nil(s.T(), game)

	appErr := asAppError(s.T(), err)
	assert.Equal(s.T(), apperr.CodeReferenceNotFound, appErr.Code)
	assert.Equal(s.T(), "Category not found", appErr.Message)
}

func (s *CatalogServiceIntegrationTestSuite) TestCreateVideoGameValidation() {
	// Empty payload: every required field missing
	game, err := s.gameService.Create(service.VideoGameInput{})
	require.Error(s.T(), err)
	assert.Nil(s.T(), game)

	appErr := asAppError(s.T(), err)
	assert.Equal(s.T(), apperr.CodeValidationFailed, appErr.Code)
	assert.Len(s.T(), appErr.Violations, 4)
	assert.Equal(s.T(), "The title is required", appErr.Violations[0].Message)
	assert.Equal(s.T(), "The editor is required", appErr.Violations[3].Message)
}

func (s *CatalogServiceIntegrationTestSuite) TestCreateVideoGameInvalidDate() {
	input := service.VideoGameInput{
		Title:       strPtr("Bad Date"),
		Description: strPtr("Date does not parse"),
		ReleaseDate: strPtr("03/03/2025"),
		Editor:      uintPtr(s.nintendo.ID),
	}

	_, err := s.gameService.Create(input)
	require.Error(s.T(), err)

	appErr := asAppError(s.T(), err)
	assert.Equal(s.T(), apperr.CodeValidationFailed, appErr.Code)

	messages := make([]string, 0, len(appErr.Violations))
	for _, v := range appErr.Violations {
		messages = append(messages, v.Message)
	}
	assert.Contains(s.T(), messages, "The release date must be a valid date (YYYY-MM-DD)")
}

func (s *CatalogServiceIntegrationTestSuite) TestUpdateVideoGamePartial() {
	created, err := s.gameService.Create(service.VideoGameInput{
		Title:       strPtr("Mario Kart"),
		Description: strPtr("Racing"),
		ReleaseDate: strPtr("2024-11-01"),
		Editor:      uintPtr(s.nintendo.ID),
		Categories:  &[]uint{s.action.ID},
	})
	require.NoError(s.T(), err)

	// Only the title is present; everything else must keep its value
	updated, err := s.gameService.Update(created.ID, service.VideoGameInput{
		Title: strPtr("Mario Kart Deluxe"),
	})
	require.NoError(s.T(), err)

	assert.Equal(s.T(), "Mario Kart Deluxe", updated.Title)
	assert.Equal(s.T(), "Racing", updated.Description)
	assert.Equal(s.T(), "2024-11-01", updated.ReleaseDate.Format(models.ReleaseDateFormat))
	assert.Equal(s.T(), s.nintendo.ID, updated.EditorID)
	assert.Len(s.T(), updated.Categories, 1)
}

func (s *CatalogServiceIntegrationTestSuite) TestUpdateVideoGameReplaceCategories() {
	created, err := s.gameService.Create(service.VideoGameInput{
		Title:       strPtr("Metroid"),
		Description: strPtr("Exploration"),
		ReleaseDate: strPtr("2025-06-01"),
		Editor:      uintPtr(s.nintendo.ID),
		Categories:  &[]uint{s.action.ID},
	})
	require.NoError(s.T(), err)

	updated, err := s.gameService.Update(created.ID, service.VideoGameInput{
		Categories: &[]uint{s.aventure.ID},
	})
	require.NoError(s.T(), err)

	require.Len(s.T(), updated.Categories, 1)
	assert.Equal(s.T(), s.aventure.ID, updated.Categories[0].ID)
}

func (s *CatalogServiceIntegrationTestSuite) TestUpdateVideoGameNotFound() {
	_, err := s.gameService.Update(9999, service.VideoGameInput{Title: strPtr("Nope")})
	require.Error(s.T(), err)

	appErr := asAppError(s.T(), err)
	assert.Equal(s.T(), apperr.CodeNotFound, appErr.Code)
	assert.Equal(s.T(), "Video game not found", appErr.Message)
}

func (s *CatalogServiceIntegrationTestSuite) TestDeleteVideoGame() {
	created, err := s.gameService.Create(service.VideoGameInput{
		Title:       strPtr("Pikmin"),
		Description: strPtr("Strategy"),
		ReleaseDate: strPtr("2023-07-21"),
		Editor:      uintPtr(s.nintendo.ID),
		Categories:  &[]uint{s.action.ID},
	})
	require.NoError(s.T(), err)

	require.NoError(s.T(), s.gameService.Delete(created.ID))

	_, err = s.gameService.Get(created.ID)
	appErr := asAppError(s.T(), err)
	assert.Equal(s.T(), apperr.CodeNotFound, appErr.Code)

	// Join rows are gone too
	var joinCount int64
	s.testDB.DB.Table("video_game_categories").Count(&joinCount)
	assert.Equal(s.T(), int64(0), joinCount)
}

func (s *CatalogServiceIntegrationTestSuite) TestDeleteEditorCascadesToGames() {
	for i := 0; i < 3; i++ {
		_, err := s.gameService.Create(service.VideoGameInput{
			Title:       strPtr("Game"),
			Description: strPtr("Owned by Nintendo"),
			ReleaseDate: strPtr("2025-01-01"),
			Editor:      uintPtr(s.nintendo.ID),
			Categories:  &[]uint{s.action.ID},
		})
		require.NoError(s.T(), err)
	}

	require.NoError(s.T(), s.editorService.Delete(s.nintendo.ID))

	var gameCount, joinCount, categoryCount int64
	s.testDB.DB.Model(&models.VideoGame{}).Count(&gameCount)
	s.testDB.DB.Table("video_game_categories").Count(&joinCount)
	s.testDB.DB.Model(&models.Category{}).Count(&categoryCount)

	assert.Equal(s.T(), int64(0), gameCount, "Deleting an editor removes its games")
	assert.Equal(s.T(), int64(0), joinCount, "Join rows of removed games are gone")
	assert.Equal(s.T(), int64(2), categoryCount, "Categories survive an editor delete")
}

func (s *CatalogServiceIntegrationTestSuite) TestDeleteCategoryDetachesGames() {
	created, err := s.gameService.Create(service.VideoGameInput{
		Title:       strPtr("Splatoon"),
		Description: strPtr("Shooter"),
		ReleaseDate: strPtr("2025-05-01"),
		Editor:      uintPtr(s.nintendo.ID),
		Categories:  &[]uint{s.action.ID, s.aventure.ID},
	})
	require.NoError(s.T(), err)

	require.NoError(s.T(), s.categoryService.Delete(s.action.ID))

	// The game survives with the remaining category
	game, err := s.gameService.Get(created.ID)
	require.NoError(s.T(), err)
	require.Len(s.T(), game.Categories, 1)
	assert.Equal(s.T(), s.aventure.ID, game.Categories[0].ID)
}

func (s *CatalogServiceIntegrationTestSuite) TestEditorValidation() {
	_, err := s.editorService.Create("", "")
	require.Error(s.T(), err)

	appErr := asAppError(s.T(), err)
	assert.Equal(s.T(), apperr.CodeValidationFailed, appErr.Code)
	require.Len(s.T(), appErr.Violations, 2)
	assert.Equal(s.T(), "The name is required", appErr.Violations[0].Message)
	assert.Equal(s.T(), "The country is required", appErr.Violations[1].Message)
}

func (s *CatalogServiceIntegrationTestSuite) TestCategoryLifecycle() {
	created, err := s.categoryService.Create("RPG")
	require.NoError(s.T(), err)
	assert.NotZero(s.T(), created.ID)

	updated, err := s.categoryService.Update(created.ID, strPtr("JRPG"))
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "JRPG", updated.Name)

	list, err := s.categoryService.List()
	require.NoError(s.T(), err)
	assert.Len(s.T(), list, 3)

	require.NoError(s.T(), s.categoryService.Delete(created.ID))

	_, err = s.categoryService.Get(created.ID)
	appErr := asAppError(s.T(), err)
	assert.Equal(s.T(), apperr.CodeNotFound, appErr.Code)
}

func (s *CatalogServiceIntegrationTestSuite) TestEditorListPreloadsGames() {
	_, err := s.gameService.Create(service.VideoGameInput{
		Title:       strPtr("Donkey Kong"),
		Description: strPtr("Platformer"),
		ReleaseDate: strPtr("2025-02-14"),
		Editor:      uintPtr(s.nintendo.ID),
	})
	require.NoError(s.T(), err)

	editors, err := s.editorService.List()
	require.NoError(s.T(), err)
	require.Len(s.T(), editors, 1)
	require.Len(s.T(), editors[0].VideoGames, 1)
	assert.Equal(s.T(), "Donkey Kong", editors[0].VideoGames[0].Title)
}

// TestSuite runs all tests in the suite
func TestCatalogServiceIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceIntegrationTestSuite))
}
