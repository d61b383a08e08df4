package handlers

import (
	"net/http"

	"core/models"
	"core/session"
	"core/stats"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	sessions *session.Manager
}

func NewStatsHandler(sessions *session.Manager) *StatsHandler {
	return &StatsHandler{sessions: sessions}
}

// GetStats computes team and per-player shooting stats over the requested
// scope. An unknown game id yields zero-valued stats rather than an error.
// @Summary Shooting statistics
// @Tags stats
// @Produce json
// @Param scope query string false "Either 'all' or a game id (default 'all')"
// @Success 200 {object} models.StatsResponse
// @Failure 401 {object} map[string]string
// @Router /stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	scope := c.DefaultQuery("scope", stats.ScopeAll)

	sess, ok := sessionFor(c, h.sessions)
	if !ok {
		return
	}

	snap := sess.Snapshot()
	c.JSON(http.StatusOK, models.StatsResponse{
		Scope:   scope,
		Team:    stats.Team(snap.Games, scope),
		Players: stats.Players(snap.Games, snap.Players, scope),
	})
}
