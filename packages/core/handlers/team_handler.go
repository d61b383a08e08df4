package handlers

import (
	"net/http"

	"core/models"
	"core/session"

	authMiddleware "auth/middleware"

	"github.com/gin-gonic/gin"
)

// sessionFor resolves the caller's tracking session, loading their team data
// on first access. Requests without an authenticated user never get here when
// the JWT middleware is mounted, but the guard stays anyway.
func sessionFor(c *gin.Context, sessions *session.Manager) (*session.Session, bool) {
	userID, ok := authMiddleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return nil, false
	}

	sess, err := sessions.ForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load team data"})
		return nil, false
	}
	return sess, true
}

type TeamHandler struct {
	sessions *session.Manager
}

func NewTeamHandler(sessions *session.Manager) *TeamHandler {
	return &TeamHandler{sessions: sessions}
}

// GetSetup returns the roster/game setup snapshot.
// @Summary Setup snapshot
// @Description Current team, roster, games and active game for the signed-in user
// @Tags team
// @Produce json
// @Success 200 {object} session.Snapshot
// @Failure 401 {object} map[string]string
// @Router /team [get]
func (h *TeamHandler) GetSetup(c *gin.Context) {
	sess, ok := sessionFor(c, h.sessions)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, sess.Snapshot())
}

// SetTeamName updates the team name. Persistence is debounced: rapid renames
// coalesce into one write after the quiet period.
// @Summary Rename the team
// @Tags team
// @Accept json
// @Produce json
// @Param team body models.UpdateTeamRequest true "New team name"
// @Success 200 {object} session.Snapshot
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /team [put]
func (h *TeamHandler) SetTeamName(c *gin.Context) {
	var req models.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, ok := sessionFor(c, h.sessions)
	if !ok {
		return
	}

	sess.SetTeamName(req.Name)
	c.JSON(http.StatusOK, sess.Snapshot())
}

// AddPlayer adds a player to the roster. An empty name, or a team that has
// not been saved yet, is silently ignored.
// @Summary Add a roster player
// @Tags team
// @Accept json
// @Produce json
// @Param player body models.AddPlayerRequest true "Player name"
// @Success 200 {object} session.Snapshot
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /team/players [post]
func (h *TeamHandler) AddPlayer(c *gin.Context) {
	var req models.AddPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, ok := sessionFor(c, h.sessions)
	if !ok {
		return
	}

	if _, err := sess.AddPlayer(req.Name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add player"})
		return
	}

	c.JSON(http.StatusOK, sess.Snapshot())
}

// RemovePlayer deletes a roster player. The roster changes only after the
// store confirms the delete; historical shots keep the player's name.
// @Summary Remove a roster player
// @Tags team
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {object} session.Snapshot
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /team/players/{id} [delete]
func (h *TeamHandler) RemovePlayer(c *gin.Context) {
	sess, ok := sessionFor(c, h.sessions)
	if !ok {
		return
	}

	if err := sess.RemovePlayer(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove player"})
		return
	}

	c.JSON(http.StatusOK, sess.Snapshot())
}
