package router

import (
	"context"
	"net/http"
	"time"

	"rice-shop/internal/auth"
	"rice-shop/internal/handler"
	"rice-shop/internal/middleware"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Config carries everything the router needs to assemble the HTTP surface.
type Config struct {
	Products    *handler.ProductHandler
	Orders      *handler.OrderHandler
	Admins      *handler.AdminHandler
	Analytics   *handler.AnalyticsHandler
	Preferences *handler.PreferenceHandler
	Uploads     *handler.UploadHandler

	Tokens *auth.TokenManager
	DB     *pgxpool.Pool

	// UploadDir and UploadPublicPath enable static serving of locally
	// stored images. UploadDir empty disables it (S3-backed storage).
	UploadDir        string
	UploadPublicPath string

	Logger zerolog.Logger
}

// New creates a new HTTP router with all routes and middleware configured.
func New(cfg Config) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		w.Header().Set("Content-Type", "application/json")
		if err := cfg.DB.Ping(ctx); err != nil {
			cfg.Logger.Error().Err(err).Msg("health check database ping failed")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status": "unhealthy", "database": "down"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy", "database": "up"}`))
	})

	mux.Handle("GET /metrics", promhttp.Handler())

	// Public storefront routes
	mux.HandleFunc("GET /api/products", cfg.Products.GetAll)
	mux.HandleFunc("GET /api/products/{id}", cfg.Products.GetByID)
	mux.HandleFunc("POST /api/orders", cfg.Orders.Create)
	mux.HandleFunc("POST /api/orders/confirm", cfg.Orders.Confirm)
	mux.HandleFunc("POST /api/orders/resend-otp", cfg.Orders.ResendOtp)
	mux.HandleFunc("POST /api/preferences/language", cfg.Preferences.SetLanguage)
	mux.HandleFunc("GET /api/preferences/language/{email}", cfg.Preferences.GetLanguage)
	mux.HandleFunc("POST /api/admin/login", cfg.Admins.Login)

	// Admin routes behind bearer token auth
	protected := middleware.AdminAuth(cfg.Tokens, cfg.Logger)
	adminRoutes := map[string]http.HandlerFunc{
		"POST /api/products":                  cfg.Products.Create,
		"PUT /api/products/{id}":              cfg.Products.Update,
		"DELETE /api/products/{id}":           cfg.Products.Delete,
		"GET /api/orders":                     cfg.Orders.List,
		"GET /api/orders/{id}":                cfg.Orders.GetByID,
		"PUT /api/orders/{id}/status":         cfg.Orders.UpdateStatus,
		"POST /api/admin/change-password":     cfg.Admins.ChangePassword,
		"GET /api/admin/users":                cfg.Admins.ListUsers,
		"POST /api/admin/users":               cfg.Admins.CreateUser,
		"DELETE /api/admin/users/{id}":        cfg.Admins.DeleteUser,
		"PUT /api/admin/users/{id}/username":  cfg.Admins.UpdateUsername,
		"PUT /api/admin/users/{id}/password":  cfg.Admins.ResetPassword,
		"GET /api/analytics":                  cfg.Analytics.Summary,
		"GET /api/analytics/monthly":          cfg.Analytics.Monthly,
		"POST /api/upload":                    cfg.Uploads.Upload,
	}
	for pattern, h := range adminRoutes {
		mux.Handle(pattern, protected(h))
	}

	// Locally stored product images
	if cfg.UploadDir != "" {
		prefix := cfg.UploadPublicPath + "/"
		mux.Handle("GET "+prefix, http.StripPrefix(prefix, http.FileServer(http.Dir(cfg.UploadDir))))
	}

	// Apply middleware in order: Recovery -> Logging -> Metrics -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Metrics(h)
	h = middleware.Logging(cfg.Logger)(h)
	h = middleware.Recovery(cfg.Logger)(h)

	return h
}
