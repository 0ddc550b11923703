package app

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/senseiarena/arena/internal/auth"
	"github.com/senseiarena/arena/internal/handler"
	"github.com/senseiarena/arena/internal/service"
)

// RouterDeps holds all dependencies needed by NewRouter.
type RouterDeps struct {
	Pool        *pgxpool.Pool
	Arena       *service.ArenaService
	JWTMgr      *auth.JWTManager
	Logger      *slog.Logger
	CORSOrigins string
}

// NewRouter assembles the chi.Router with all routes and middleware.
func NewRouter(deps RouterDeps) chi.Router {
	sessionHandler := handler.NewSessionHandler(deps.Arena)
	questHandler := handler.NewQuestHandler(deps.Arena)
	stakeHandler := handler.NewStakeHandler(deps.Arena)
	gameHandler := handler.NewGameHandler(deps.Arena)
	profileHandler := handler.NewProfileHandler(deps.Arena)

	r := chi.NewRouter()

	// Global middleware (order matters)
	r.Use(handler.Recovery(deps.Logger))
	r.Use(handler.RequestID)
	r.Use(handler.RequestLogger(deps.Logger))
	r.Use(handler.CORS(deps.CORSOrigins))
	r.Use(handler.JSONContentType)

	// Health (no auth)
	r.Get("/health", handler.HealthHandler(deps.Pool))

	// Session establishment (no auth)
	r.Post("/connect", sessionHandler.Connect)

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(auth.Authenticate(deps.JWTMgr))

		r.Get("/quests", questHandler.Snapshot)
		r.Post("/stake", stakeHandler.DirectStake)
		r.Post("/games/outcome", gameHandler.SubmitOutcome)

		r.Route("/profile", func(r chi.Router) {
			r.Put("/avatar", profileHandler.SetAvatar)
			r.Put("/badge", profileHandler.EquipBadge)
			r.Delete("/badge", profileHandler.UnequipBadge)
			r.Post("/reset", profileHandler.Reset)
		})
	})

	return r
}
