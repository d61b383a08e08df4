package handlers

import (
	"errors"
	"net/http"

	"core/models"
	"core/session"

	"github.com/gin-gonic/gin"
)

type ChooseTypeRequest struct {
	Type models.ShotType `json:"type" binding:"required"`
}

type ChooseResultRequest struct {
	Result models.ShotResult `json:"result" binding:"required"`
}

type ChoosePlayerRequest struct {
	PlayerName string `json:"player_name" binding:"required"`
}

// WizardHandler drives the shot-entry flow. The wizard is strictly linear:
// type, then result, then player, then an explicit confirmation; out-of-order
// requests are rejected with 409.
type WizardHandler struct {
	sessions *session.Manager
}

func NewWizardHandler(sessions *session.Manager) *WizardHandler {
	return &WizardHandler{sessions: sessions}
}

func wizardError(c *gin.Context, err error) {
	if errors.Is(err, session.ErrWizardOrder) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// GetWizard returns the current wizard state.
// @Summary Shot wizard state
// @Tags wizard
// @Produce json
// @Success 200 {object} session.WizardView
// @Failure 401 {object} map[string]string
// @Router /wizard [get]
func (h *WizardHandler) GetWizard(c *gin.Context) {
	sess, ok := sessionFor(c, h.sessions)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, sess.Wizard())
}

// ChooseType is step one of the wizard.
// @Summary Choose the shot type
// @Tags wizard
// @Accept json
// @Produce json
// @Param selection body ChooseTypeRequest true "Shot type (triple, doble, libre)"
// @Success 200 {object} session.WizardView
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /wizard/type [post]
func (h *WizardHandler) ChooseType(c *gin.Context) {
	var req ChooseTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, ok := sessionFor(c, h.sessions)
	if !ok {
		return
	}

	if err := sess.ChooseShotType(req.Type); err != nil {
		wizardError(c, err)
		return
	}

	c.JSON(http.StatusOK, sess.Wizard())
}

// ChooseResult is step two of the wizard.
// @Summary Choose the shot result
// @Tags wizard
// @Accept json
// @Produce json
// @Param selection body ChooseResultRequest true "Shot result (convertido, fallado)"
// @Success 200 {object} session.WizardView
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /wizard/result [post]
func (h *WizardHandler) ChooseResult(c *gin.Context) {
	var req ChooseResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, ok := sessionFor(c, h.sessions)
	if !ok {
		return
	}

	if err := sess.ChooseShotResult(req.Result); err != nil {
		wizardError(c, err)
		return
	}

	c.JSON(http.StatusOK, sess.Wizard())
}

// ChoosePlayer is step three; the wizard then awaits confirmation.
// @Summary Choose the attributing player
// @Tags wizard
// @Accept json
// @Produce json
// @Param selection body ChoosePlayerRequest true "Player display name"
// @Success 200 {object} session.WizardView
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /wizard/player [post]
func (h *WizardHandler) ChoosePlayer(c *gin.Context) {
	var req ChoosePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, ok := sessionFor(c, h.sessions)
	if !ok {
		return
	}

	if err := sess.ChooseShotPlayer(req.PlayerName); err != nil {
		wizardError(c, err)
		return
	}

	c.JSON(http.StatusOK, sess.Wizard())
}

// Back discards the most recent selection.
// @Summary Step the wizard backward
// @Tags wizard
// @Produce json
// @Success 200 {object} session.WizardView
// @Failure 401 {object} map[string]string
// @Router /wizard/back [post]
func (h *WizardHandler) Back(c *gin.Context) {
	sess, ok := sessionFor(c, h.sessions)
	if !ok {
		return
	}

	sess.WizardBack()
	c.JSON(http.StatusOK, sess.Wizard())
}

// Cancel clears the wizard without recording anything.
// @Summary Cancel the wizard
// @Tags wizard
// @Produce json
// @Success 200 {object} session.WizardView
// @Failure 401 {object} map[string]string
// @Router /wizard/cancel [post]
func (h *WizardHandler) Cancel(c *gin.Context) {
	sess, ok := sessionFor(c, h.sessions)
	if !ok {
		return
	}

	sess.CancelShot()
	c.JSON(http.StatusOK, sess.Wizard())
}

// Confirm records the completed selection against the active game.
// @Summary Confirm and record the shot
// @Tags wizard
// @Produce json
// @Success 200 {object} models.Shot
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /wizard/confirm [post]
func (h *WizardHandler) Confirm(c *gin.Context) {
	sess, ok := sessionFor(c, h.sessions)
	if !ok {
		return
	}

	shot, err := sess.ConfirmShot()
	if err != nil {
		if errors.Is(err, session.ErrWizardOrder) || errors.Is(err, session.ErrNoActiveGame) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record shot"})
		return
	}

	c.JSON(http.StatusOK, shot)
}
