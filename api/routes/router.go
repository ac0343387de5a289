package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	"github.com/tahir-sigmadevelopers/multanimango/api/controllers"
	"github.com/tahir-sigmadevelopers/multanimango/api/middleware"
	authsvc "github.com/tahir-sigmadevelopers/multanimango/internal/auth"
	"github.com/tahir-sigmadevelopers/multanimango/internal/cart"
	"github.com/tahir-sigmadevelopers/multanimango/internal/catalog"
	checkoutsvc "github.com/tahir-sigmadevelopers/multanimango/internal/checkout"
	"github.com/tahir-sigmadevelopers/multanimango/internal/contacts"
	"github.com/tahir-sigmadevelopers/multanimango/internal/dashboard"
	"github.com/tahir-sigmadevelopers/multanimango/internal/orders"
	"github.com/tahir-sigmadevelopers/multanimango/internal/products"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/auth/session"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/config"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/logger"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/metrics"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/redis"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Config       *config.Config
	Logger       *logger.Logger
	Redis        *redis.Client
	UpstreamPing controllers.Pinger
	HTTPMetrics  *metrics.HTTPMetrics
	PromGatherer prometheus.Gatherer

	Sessions     session.Checker
	CartRegistry *cart.Registry
	ShippingFee  decimal.Decimal

	Catalog   *catalog.Service
	Checkout  *checkoutsvc.Service
	Contacts  *contacts.Service
	Orders    *orders.Service
	Products  *products.Service
	Auth      *authsvc.Service
	Dashboard *dashboard.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(),
	)

	var redisPing controllers.Pinger
	if deps.Redis != nil {
		redisPing = deps.Redis
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, redisPing, deps.UpstreamPing))
	})

	if deps.PromGatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.PromGatherer, promhttp.HandlerOpts{}))
	}

	loginLimiter := func(next http.Handler) http.Handler { return next }
	if deps.Redis != nil {
		loginPolicy := middleware.NewAuthRateLimitPolicy(
			"login",
			cfg.AuthRateLimit.LoginWindow,
			cfg.AuthRateLimit.LoginIPLimit,
			cfg.AuthRateLimit.LoginEmailLimit,
		)
		loginLimiter = middleware.AuthRateLimit(loginPolicy, deps.Redis, logg)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", controllers.ProductList(deps.Catalog, logg))
		r.Get("/products/{productId}", controllers.ProductDetail(deps.Catalog, logg))

		r.Post("/contact", controllers.ContactSubmit(deps.Contacts, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.CartSession(cfg.Cart.SessionTTL, cfg.App.IsProd(), logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartFetch(deps.CartRegistry, deps.ShippingFee, logg))
				r.Delete("/", controllers.CartClear(deps.CartRegistry, deps.ShippingFee, logg))
				r.Post("/items", controllers.CartAddItem(deps.CartRegistry, deps.Catalog, deps.ShippingFee, logg))
				r.Patch("/items/{productId}", controllers.CartUpdateItem(deps.CartRegistry, deps.ShippingFee, logg))
				r.Delete("/items/{productId}", controllers.CartRemoveItem(deps.CartRegistry, deps.ShippingFee, logg))
			})

			r.Post("/checkout", controllers.Checkout(deps.Checkout, deps.CartRegistry, logg))
		})

		r.Route("/auth", func(r chi.Router) {
			r.With(loginLimiter).
				Post("/login", controllers.AuthLogin(deps.Auth, logg))
			r.With(middleware.Auth(cfg.JWT, deps.Sessions, logg)).
				Post("/logout", controllers.AuthLogout(deps.Auth, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.Sessions, logg))

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.AdminOrderList(deps.Orders, logg))
			r.Put("/{orderId}/status", controllers.AdminOrderUpdateStatus(deps.Orders, logg))
			r.Delete("/{orderId}", controllers.AdminOrderDelete(deps.Orders, logg))
		})

		r.Route("/contacts", func(r chi.Router) {
			r.Get("/", controllers.AdminContactList(deps.Contacts, logg))
			r.Delete("/{contactId}", controllers.AdminContactDelete(deps.Contacts, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Post("/", controllers.AdminProductCreate(deps.Products, logg))
			r.Delete("/{productId}", controllers.AdminProductDelete(deps.Products, logg))
		})

		r.Get("/dashboard", controllers.AdminDashboard(deps.Dashboard, logg))
	})

	return r
}
