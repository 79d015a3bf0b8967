package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Handlers - все REST-хендлеры портала, собранные в одном месте для роутинга.
type Handlers struct {
	Coach        *CoachHandler
	Player       *PlayerHandler
	Team         *TeamHandler
	Evaluation   *EvaluationHandler
	Homework     *HomeworkHandler
	Drill        *DrillHandler
	Announcement *AnnouncementHandler
	Import       *ImportHandler
}

// Server - REST API сервер портала.
type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

// NewServer создает и настраивает роутер. Если authMiddleware == nil
// (identity provider не сконфигурирован), ролевые проверки отключаются -
// это режим для локальной разработки.
func NewServer(httpPort string, handlers *Handlers, authMiddleware *AuthMiddleware, dbPool *pgxpool.Pool, allowedOrigins []string, baseLogger port.LoggerPort) *Server {
	r := chi.NewRouter()

	// Общие middleware
	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
		AllowCredentials: true,
		MaxAge:           300, // 5 минут
	}))

	// Без identity provider-а ролевые проверки вырождаются в no-op.
	requireRole := func(roles ...string) func(http.Handler) http.Handler {
		if authMiddleware == nil {
			return func(next http.Handler) http.Handler { return next }
		}
		return authMiddleware.RequireRole(roles...)
	}

	// Health check для балансировщика/оркестратора
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if err := dbPool.Ping(req.Context()); err != nil {
			WriteJSONError(w, http.StatusServiceUnavailable, "Database is unreachable")
			return
		}
		RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		if authMiddleware != nil {
			r.Use(authMiddleware.Authenticate)
		}

		// --- Управление тренерами и командами: только администратор ---
		r.Group(func(r chi.Router) {
			r.Use(requireRole(domain.RoleAdmin))

			r.Post("/coaches", handlers.Coach.CreateCoach)
			r.Put("/coaches/{coachID}", handlers.Coach.UpdateCoach)
			r.Delete("/coaches/{coachID}", handlers.Coach.DeleteCoach)

			r.Post("/teams", handlers.Team.CreateTeam)

			r.Post("/import/roster", handlers.Import.ImportRoster)
		})

		// --- Работа с игроками и тренировочным процессом: тренер или администратор ---
		r.Group(func(r chi.Router) {
			r.Use(requireRole(domain.RoleCoach, domain.RoleAdmin))

			r.Post("/players", handlers.Player.CreatePlayer)
			r.Put("/players/{playerID}", handlers.Player.UpdatePlayer)
			r.Delete("/players/{playerID}", handlers.Player.DeletePlayer)

			r.Post("/evaluations", handlers.Evaluation.SubmitEvaluation)
			r.Post("/homework", handlers.Homework.AssignHomework)
			r.Post("/drills", handlers.Drill.CreateDrill)
			r.Post("/announcements", handlers.Announcement.CreateAnnouncement)
		})

		// --- Чтение: любой авторизованный пользователь ---
		r.Get("/coaches", handlers.Coach.ListCoaches)
		r.Get("/teams", handlers.Team.ListTeams)
		r.Get("/teams/{teamID}/announcements", handlers.Announcement.ListTeamAnnouncements)
		r.Get("/players", handlers.Player.ListPlayers)
		r.Get("/players/{playerID}", handlers.Player.GetPlayer)
		r.Get("/players/{playerID}/evaluations", handlers.Evaluation.ListPlayerEvaluations)
		r.Get("/players/{playerID}/homework", handlers.Homework.ListPlayerHomework)
		r.Get("/drills", handlers.Drill.ListDrills)
	})

	srv := &http.Server{
		Addr:    ":" + httpPort,
		Handler: r,
	}

	return &Server{
		httpServer: srv,
		logger:     baseLogger,
	}
}

// Start запускает HTTP-сервер.
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop корректно останавливает сервер.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
