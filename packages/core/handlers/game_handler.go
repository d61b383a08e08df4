package handlers

import (
	"net/http"

	"core/models"
	"core/session"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	sessions *session.Manager
}

func NewGameHandler(sessions *session.Manager) *GameHandler {
	return &GameHandler{sessions: sessions}
}

// CreateGame starts a new game dated today and makes it the active game. An
// empty name or a missing team is silently ignored.
// @Summary Create a game
// @Tags games
// @Accept json
// @Produce json
// @Param game body models.CreateGameRequest true "Game name"
// @Success 200 {object} session.Snapshot
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /games [post]
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req models.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, ok := sessionFor(c, h.sessions)
	if !ok {
		return
	}

	if _, err := sess.CreateGame(req.Name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create game"})
		return
	}

	c.JSON(http.StatusOK, sess.Snapshot())
}

// SelectGame points the active game at an existing game. No data changes.
// @Summary Select the active game
// @Tags games
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} session.Snapshot
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /games/{id}/select [post]
func (h *GameHandler) SelectGame(c *gin.Context) {
	sess, ok := sessionFor(c, h.sessions)
	if !ok {
		return
	}

	if !sess.SelectGame(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	c.JSON(http.StatusOK, sess.Snapshot())
}
