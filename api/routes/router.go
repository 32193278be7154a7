package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/labellecuisine/ordering-backend/api/controllers"
	"github.com/labellecuisine/ordering-backend/api/middleware"
	cartsvc "github.com/labellecuisine/ordering-backend/internal/cart"
	"github.com/labellecuisine/ordering-backend/internal/catalog"
	checkoutsvc "github.com/labellecuisine/ordering-backend/internal/checkout"
	contactsvc "github.com/labellecuisine/ordering-backend/internal/contact"
	"github.com/labellecuisine/ordering-backend/pkg/config"
	"github.com/labellecuisine/ordering-backend/pkg/logger"
	"github.com/labellecuisine/ordering-backend/pkg/metrics"
	"github.com/labellecuisine/ordering-backend/pkg/redis"
)

// Deps carries everything the router wires together.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          controllers.Pinger
	Redis       *redis.Client
	HTTPMetrics *metrics.HTTPMetrics
	Catalog     catalog.Service
	Cart        cartsvc.Service
	Checkout    checkoutsvc.Service
	Contact     contactsvc.Service
}

// NewRouter assembles the HTTP surface: the two public submission
// endpoints, the menu and cart API, health probes and metrics.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(d.Logger),
		middleware.RequestID(d.Logger),
		middleware.Logging(d.Logger),
		middleware.Metrics(d.HTTPMetrics),
		middleware.CORS(d.Config.CORS.AllowedOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(d.Config))
		r.Get("/ready", controllers.HealthReady(d.Config, d.Logger, readinessDeps(d)))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/menu", func(r chi.Router) {
			r.Get("/", controllers.MenuList(d.Catalog, d.Logger))
			r.Get("/items/{id}", controllers.MenuItem(d.Catalog, d.Logger))
			r.Get("/{category}", controllers.MenuCategory(d.Catalog, d.Logger))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.CartSession(d.Logger))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartGet(d.Cart, d.Logger))
				r.Delete("/", controllers.CartClear(d.Cart, d.Logger))
				r.Post("/items", controllers.CartAddItem(d.Cart, d.Catalog, d.Logger))
				r.Patch("/items/{id}", controllers.CartUpdateQuantity(d.Cart, d.Logger))
				r.Delete("/items/{id}", controllers.CartRemoveItem(d.Cart, d.Logger))
			})

			r.Get("/checkout/pickup-slots", controllers.PickupSlots(d.Checkout, d.Logger))

			r.Group(func(r chi.Router) {
				if d.Redis != nil {
					r.Use(middleware.Idempotency(d.Redis, d.Config.Idempotency.SubmissionTTL, d.Logger))
				}
				r.Post("/order", controllers.OrderSubmit(d.Checkout, d.Logger))
				r.Post("/contact", controllers.ContactSubmit(d.Contact, d.Logger))
			})
		})
	})

	return r
}

func readinessDeps(d Deps) map[string]controllers.Pinger {
	deps := map[string]controllers.Pinger{}
	if d.DB != nil {
		deps["postgres"] = d.DB
	}
	if d.Redis != nil {
		deps["redis"] = d.Redis
	}
	return deps
}
