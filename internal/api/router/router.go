package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Mearaf/codebridge-website/internal/booking"
	"github.com/Mearaf/codebridge-website/internal/chat"
	"github.com/Mearaf/codebridge-website/internal/content"
	"github.com/Mearaf/codebridge-website/internal/forms"
	httpmiddleware "github.com/Mearaf/codebridge-website/internal/http/middleware"
	"github.com/Mearaf/codebridge-website/pkg/logging"
)

// Config holds router configuration. Nil handlers leave their routes
// unmounted, so a partially configured server still starts.
type Config struct {
	Logger         *logging.Logger
	ChatHandler    *chat.Handler
	BookingHandler *booking.Handler
	FormsHandler   *forms.Handler
	ContentHandler *content.Handler
	MetricsHandler http.Handler

	CORSAllowedOrigins []string

	// Per-IP limit on the public form endpoints. Zero disables limiting.
	FormRatePerSecond float64
	FormRateBurst     int
}

// New creates a new Chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		if cfg.ChatHandler != nil {
			api.Post("/chat", cfg.ChatHandler.HandleChat)
			api.Route("/chat/live", func(live chi.Router) {
				live.Get("/sessions", cfg.ChatHandler.HandleListSessions)
				live.Route("/{sessionID}", func(session chi.Router) {
					session.Get("/", cfg.ChatHandler.HandleGetSession)
					session.Post("/message", cfg.ChatHandler.HandleSessionMessage)
					session.Post("/close", cfg.ChatHandler.HandleCloseSession)
					session.Get("/ws", cfg.ChatHandler.HandleWebSocket)
				})
			})
		}

		if cfg.BookingHandler != nil {
			api.Route("/calendar", func(cal chi.Router) {
				cal.Get("/availability", cfg.BookingHandler.HandleAvailability)
				cal.Post("/book", cfg.BookingHandler.HandleBook)
				cal.Get("/bookings", cfg.BookingHandler.HandleListUpcoming)
			})
		}

		if cfg.FormsHandler != nil {
			api.Group(func(public chi.Router) {
				if cfg.FormRatePerSecond > 0 && cfg.FormRateBurst > 0 {
					public.Use(httpmiddleware.RateLimit(cfg.FormRatePerSecond, cfg.FormRateBurst))
				}
				public.Post("/contact", cfg.FormsHandler.HandleContact)
				public.Post("/email-signup", cfg.FormsHandler.HandleEmailSignup)
				public.Post("/client-intake", cfg.FormsHandler.HandleClientIntake)
			})
			api.Get("/contacts", cfg.FormsHandler.HandleListContacts)
			api.Get("/email-signups", cfg.FormsHandler.HandleListSignups)
			api.Get("/client-intakes", cfg.FormsHandler.HandleListIntakes)
		}

		if cfg.ContentHandler != nil {
			api.Get("/testimonials", cfg.ContentHandler.HandleListTestimonials)
			api.Get("/testimonials/featured", cfg.ContentHandler.HandleFeaturedTestimonials)
			api.Post("/testimonials", cfg.ContentHandler.HandleCreateTestimonial)
			api.Get("/articles", cfg.ContentHandler.HandleListArticles)
			api.Get("/articles/featured", cfg.ContentHandler.HandleFeaturedArticles)
			api.Get("/articles/{slug}", cfg.ContentHandler.HandleGetArticle)
			api.Post("/articles", cfg.ContentHandler.HandleCreateArticle)
		}
	})

	return r
}
