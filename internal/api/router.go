package api

import (
	"context"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/api/handler"
	"github.com/Bhuvansai22/Statrtova-Frontend/internal/api/metrics"
	"github.com/Bhuvansai22/Statrtova-Frontend/internal/api/middleware"
	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/domain"
	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/service"
	"github.com/Bhuvansai22/Statrtova-Frontend/internal/infrastructure/backend"
	"github.com/Bhuvansai22/Statrtova-Frontend/internal/infrastructure/session"
	"github.com/Bhuvansai22/Statrtova-Frontend/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("startova"))

	// --- Outbound backend adapter ---
	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, log)
	store := session.NewStore(rdb, cfg.Session.TTL)

	// The backend rejecting a token clears the persisted session; the
	// error handler then redirects the visitor to login.
	client.OnSessionInvalid(func(ctx context.Context, sid string) {
		if err := store.Delete(ctx, sid); err != nil {
			log.Error().Err(err).Msg("failed to clear invalidated session")
		}
		metrics.SessionsInvalidatedTotal.WithLabelValues("unauthorized").Inc()
	})

	accountsAPI := backend.NewAccountsAPI(client)
	startupsAPI := backend.NewStartupsAPI(client)
	investorsAPI := backend.NewInvestorsAPI(client)
	watchlistAPI := backend.NewWatchlistAPI(client)
	messagesAPI := backend.NewMessagesAPI(client)
	investmentsAPI := backend.NewInvestmentsAPI(client)
	uploadsAPI := backend.NewUploadsAPI(client)

	// --- Services ---
	sessions := service.NewSessionService(accountsAPI, store, log)
	watchlist := service.NewWatchlistService(watchlistAPI, investorsAPI, log)
	browse := service.NewBrowseService(startupsAPI, watchlist, log)
	messages := service.NewMessageService(messagesAPI, log)
	startupProfiles := service.NewStartupProfileService(startupsAPI, sessions, log)
	investorProfiles := service.NewInvestorProfileService(investorsAPI, investmentsAPI, sessions, log)
	documents := service.NewDocumentService(uploadsAPI, startupsAPI, log)
	dashboards := service.NewDashboardService(startupsAPI, investorsAPI, watchlistAPI, messagesAPI, investmentsAPI, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(sessions, cfg.Session.CookieName, cfg.Session.TTL)
	browseHandler := handler.NewBrowseHandler(browse)
	startupHandler := handler.NewStartupHandler(dashboards, startupProfiles, documents, log)
	investorHandler := handler.NewInvestorHandler(dashboards, investorProfiles, investmentsAPI)
	watchlistHandler := handler.NewWatchlistHandler(watchlist)
	messageHandler := handler.NewMessageHandler(messages)

	// --- Session restore on every request ---
	e.Use(middleware.Session(sessions, cfg.Session.CookieName))

	requireStartup := middleware.RequireRole(domain.RoleStartup)
	requireInvestor := middleware.RequireRole(domain.RoleInvestor)

	// --- Auth routes ---
	guest := e.Group("", middleware.GuestOnly())
	guest.POST("/login", authHandler.Login)
	guest.POST("/signup", authHandler.Signup)
	e.POST("/logout", authHandler.Logout)
	e.GET("/me", authHandler.Me)

	// --- Startup routes ---
	startup := e.Group("/startup", requireStartup)
	startup.GET("/dashboard", startupHandler.Dashboard)
	startup.GET("/profile", startupHandler.Profile)
	startup.PUT("/profile", startupHandler.SaveProfile)
	startup.PUT("/future-plans", startupHandler.SavePlans)
	startup.POST("/pitch-ideas", startupHandler.AddPitchIdea)
	startup.GET("/documents", startupHandler.ListDocuments)
	startup.POST("/documents", startupHandler.UploadDocument)
	startup.DELETE("/documents/:docId", startupHandler.RemoveDocument)

	// --- Investor routes ---
	investor := e.Group("/investor", requireInvestor)
	investor.GET("/dashboard", investorHandler.Dashboard)
	investor.GET("/profile", investorHandler.Profile)
	investor.PUT("/profile", investorHandler.SaveProfile)
	investor.GET("/startups", browseHandler.List)
	investor.GET("/startups/:id", browseHandler.Detail)
	investor.POST("/startups/:id/invest", investorHandler.Invest)
	investor.POST("/startups/:id/contact", messageHandler.Contact)
	investor.GET("/startups/:id/conversation", messageHandler.Conversation)
	investor.GET("/startups/:id/watch", watchlistHandler.Status)
	investor.POST("/startups/:id/watch", watchlistHandler.Toggle)
	investor.GET("/watchlist", watchlistHandler.List)
	investor.DELETE("/watchlist/:entryId", watchlistHandler.Remove)

	// --- Inbox, both roles ---
	inbox := e.Group("/messages", middleware.RequireAuth())
	inbox.GET("", messageHandler.Inbox)
	inbox.PATCH("/:id/read", messageHandler.MarkRead)
	inbox.DELETE("/:id", messageHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(rdb, client)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	e.RouteNotFound("/*", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	})

	return e
}
