package core

import (
	"core/cron"
	"core/handlers"
	"core/session"
	"core/store"

	authMiddleware "auth/middleware"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type Module struct {
	TeamHandler   *handlers.TeamHandler
	GameHandler   *handlers.GameHandler
	WizardHandler *handlers.WizardHandler
	StatsHandler  *handlers.StatsHandler
	Sessions      *session.Manager
	Store         store.Store
	Scheduler     *cron.Scheduler
}

func NewModule(db *gorm.DB, logger zerolog.Logger) *Module {
	st := store.NewGormStore(db)
	return newModule(st, logger)
}

// NewModuleWithStore wires the module against an explicit store, which is how
// the in-memory backend is mounted.
func NewModuleWithStore(st store.Store, logger zerolog.Logger) *Module {
	return newModule(st, logger)
}

func newModule(st store.Store, logger zerolog.Logger) *Module {
	sessions := session.NewManager(st, clockwork.NewRealClock(), logger)

	return &Module{
		TeamHandler:   handlers.NewTeamHandler(sessions),
		GameHandler:   handlers.NewGameHandler(sessions),
		WizardHandler: handlers.NewWizardHandler(sessions),
		StatsHandler:  handlers.NewStatsHandler(sessions),
		Sessions:      sessions,
		Store:         st,
		Scheduler:     cron.NewScheduler(sessions),
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	team := r.Group("/team")
	team.Use(authMiddleware.JWTMiddleware())
	{
		team.GET("", m.TeamHandler.GetSetup)
		team.PUT("", m.TeamHandler.SetTeamName)
		team.POST("/players", m.TeamHandler.AddPlayer)
		team.DELETE("/players/:id", m.TeamHandler.RemovePlayer)
	}

	games := r.Group("/games")
	games.Use(authMiddleware.JWTMiddleware())
	{
		games.POST("", m.GameHandler.CreateGame)
		games.POST("/:id/select", m.GameHandler.SelectGame)
	}

	wizard := r.Group("/wizard")
	wizard.Use(authMiddleware.JWTMiddleware())
	{
		wizard.GET("", m.WizardHandler.GetWizard)
		wizard.POST("/type", m.WizardHandler.ChooseType)
		wizard.POST("/result", m.WizardHandler.ChooseResult)
		wizard.POST("/player", m.WizardHandler.ChoosePlayer)
		wizard.POST("/back", m.WizardHandler.Back)
		wizard.POST("/cancel", m.WizardHandler.Cancel)
		wizard.POST("/confirm", m.WizardHandler.Confirm)
	}

	r.GET("/stats", authMiddleware.JWTMiddleware(), m.StatsHandler.GetStats)
}

// StartScheduler starts the session janitor.
func (m *Module) StartScheduler() error {
	return m.Scheduler.Start()
}

// StopScheduler stops the session janitor.
func (m *Module) StopScheduler() {
	m.Scheduler.Stop()
}
