package handler

import (
	"strconv"

	"github.com/TWhiteShadow/gamevault/internal/models"
	"github.com/gin-gonic/gin"
)

// parseID parses the :id path parameter. A non-numeric id can never match a
// stored entity, so callers map the false return to their kind's NotFound.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func categoryJSON(category models.Category) gin.H {
	return gin.H{
		"id":   category.ID,
		"name": category.Name,
	}
}

// gameBriefJSON is the video game representation embedded in an editor,
// without the editor itself.
func gameBriefJSON(game models.VideoGame) gin.H {
	return gin.H{
		"id":          game.ID,
		"title":       game.Title,
		"releaseDate": game.ReleaseDate.Format(models.ReleaseDateFormat),
		"description": game.Description,
	}
}

func editorJSON(editor models.Editor) gin.H {
	games := make([]gin.H, 0, len(editor.VideoGames))
	for _, game := range editor.VideoGames {
		games = append(games, gameBriefJSON(game))
	}
	return gin.H{
		"id":         editor.ID,
		"name":       editor.Name,
		"country":    editor.Country,
		"videoGames": games,
	}
}

func videoGameJSON(game models.VideoGame) gin.H {
	categories := make([]gin.H, 0, len(game.Categories))
	for _, category := range game.Categories {
		categories = append(categories, categoryJSON(category))
	}

	body := gin.H{
		"id":          game.ID,
		"title":       game.Title,
		"releaseDate": game.ReleaseDate.Format(models.ReleaseDateFormat),
		"description": game.Description,
		"editor": gin.H{
			"id":      game.Editor.ID,
			"name":    game.Editor.Name,
			"country": game.Editor.Country,
		},
		"categories": categories,
	}
	if game.CoverImage != nil {
		body["cover_image"] = *game.CoverImage
	}
	return body
}

// userJSON never includes the password hash.
func userJSON(user models.User) gin.H {
	return gin.H{
		"id":                     user.ID,
		"email":                  user.Email,
		"roles":                  user.Roles,
		"newsletterSubscription": user.NewsletterSubscription,
	}
}
