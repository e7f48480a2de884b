package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/aaravmahajanofficial/plantshop/docs"
	"github.com/aaravmahajanofficial/plantshop/internal/api/handlers"
	"github.com/aaravmahajanofficial/plantshop/internal/api/middleware"
	"github.com/aaravmahajanofficial/plantshop/internal/cache"
	"github.com/aaravmahajanofficial/plantshop/internal/client"
	"github.com/aaravmahajanofficial/plantshop/internal/config"
	"github.com/aaravmahajanofficial/plantshop/internal/events"
	"github.com/aaravmahajanofficial/plantshop/internal/health"
	"github.com/aaravmahajanofficial/plantshop/internal/metrics"
	"github.com/aaravmahajanofficial/plantshop/internal/models"
	repository "github.com/aaravmahajanofficial/plantshop/internal/repositories"
	service "github.com/aaravmahajanofficial/plantshop/internal/services"
	"github.com/aaravmahajanofficial/plantshop/internal/tracing"
	"github.com/aaravmahajanofficial/plantshop/pkg/sendgrid"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

//	@title						Plantshop API
//	@version					1.0
//	@description				Storefront for a plant shop: catalog, per-device sessions, carts and checkout.
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the userToken.

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	shutdownTracing, err := tracing.Setup(context.Background(), cfg.OTel, cfg.Env)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Redis connection closed")
		}
	}()

	backend := client.New(cfg.Backend)
	var products service.ProductAPI = backend
	if cfg.Cache.ProductTTL > 0 {
		products = service.WithProductCache(backend, cache.NewRedisCache[models.Product](redisClient, cache.ProductKeyPrefix, cfg.Cache.ProductTTL))
	}
	tokens := service.NewTokenIssuer([]byte(cfg.Security.JWTKey))

	deviceStorage := repository.NewRedisStorageFactory(redisClient)

	devices := service.NewDevices(service.DevicesConfig{
		Storage:     deviceStorage,
		Users:       backend,
		Carts:       backend,
		Products:    products,
		Limiter:     repository.NewRateLimitRepo(redisClient, cfg.RateConfig),
		Tokens:      tokens,
		JoinWorkers: cfg.Backend.JoinWorkers,
		MaxDevices:  cfg.Devices.MaxDevices,
		IdleTTL:     cfg.Devices.IdleTTL,
	})

	notifiers := []service.OrderNotifier{metrics.OrderRecorder{}}

	if cfg.RabbitMQ.URL != "" {
		publisher, err := events.Dial(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue)
		if err != nil {
			slog.Error("❌ Error connecting to rabbitmq", slog.String("error", err.Error()))
			os.Exit(1)
		}

		defer func() {
			if err := publisher.Close(); err != nil {
				slog.Error("⚠️ Error closing rabbitmq connection", slog.String("error", err.Error()))
			}
		}()

		notifiers = append(notifiers, publisher)
	}

	if cfg.SendGrid.APIKey != "" {
		emailService := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
		notifiers = append(notifiers, sendgrid.NewOrderMailer(emailService))
	}

	catalogService := service.NewCatalogService(products)
	checkoutService := service.NewCheckoutService(backend, cfg.Checkout, notifiers...)
	searchService := service.NewSearchService(catalogService)
	contentService := service.NewContentService(backend)

	sessionHandler := handlers.NewSessionHandler(devices)
	profileHandler := handlers.NewProfileHandler(devices, service.NewAvatarStore(deviceStorage))
	productHandler := handlers.NewProductHandler(catalogService)
	cartHandler := handlers.NewCartHandler(devices)
	checkoutHandler := handlers.NewCheckoutHandler(devices, checkoutService)
	searchHandler := handlers.NewSearchHandler(devices, searchService)
	contentHandler := handlers.NewContentHandler(contentService)
	authMiddleware := middleware.NewAuthMiddleware(devices)

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{Backend: backend})
	if err != nil {
		slog.Error("❌ Error building health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("backend", cfg.Backend.BaseURL))

	// Setup router
	routerMux := http.NewServeMux()

	// Device-scoped, no sign-in required
	routerMux.HandleFunc("POST /api/v1/session/sign-in", middleware.Device(sessionHandler.SignIn()))
	routerMux.HandleFunc("POST /api/v1/session/sign-up", middleware.Device(sessionHandler.SignUp()))
	routerMux.HandleFunc("POST /api/v1/session/restore", middleware.Device(sessionHandler.Restore()))
	routerMux.HandleFunc("GET /api/v1/session/redirect", middleware.Device(sessionHandler.Redirect()))
	routerMux.HandleFunc("GET /api/v1/search/history", middleware.Device(searchHandler.History()))
	routerMux.HandleFunc("POST /api/v1/search/history", middleware.Device(searchHandler.SaveQuery()))
	routerMux.HandleFunc("DELETE /api/v1/search/history/{name}", middleware.Device(searchHandler.RemoveQuery()))

	// Public
	routerMux.HandleFunc("GET /api/v1/products", productHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/search", searchHandler.Search())
	routerMux.HandleFunc("GET /api/v1/notifications", contentHandler.ListNotifications())
	routerMux.HandleFunc("GET /api/v1/plant-care-guides/{id}", contentHandler.GetPlantCareGuide())
	routerMux.HandleFunc("GET /api/v1/faqs", contentHandler.ListFAQs())

	// Signed in
	routerMux.HandleFunc("POST /api/v1/session/sign-out", authMiddleware.Authenticate(sessionHandler.SignOut()))
	routerMux.HandleFunc("GET /api/v1/profile", authMiddleware.Authenticate(profileHandler.GetProfile()))
	routerMux.HandleFunc("PUT /api/v1/profile", authMiddleware.Authenticate(profileHandler.UpdateProfile()))
	routerMux.HandleFunc("PUT /api/v1/profile/avatar", authMiddleware.Authenticate(profileHandler.SaveAvatar()))
	routerMux.HandleFunc("DELETE /api/v1/profile/avatar", authMiddleware.Authenticate(profileHandler.RemoveAvatar()))
	routerMux.HandleFunc("POST /api/v1/products", authMiddleware.Authenticate(productHandler.CreateProduct()))
	routerMux.HandleFunc("GET /api/v1/cart", authMiddleware.Authenticate(cartHandler.GetCart()))
	routerMux.HandleFunc("POST /api/v1/cart/refresh", authMiddleware.Authenticate(cartHandler.RefreshCart()))
	routerMux.HandleFunc("POST /api/v1/cart/items", authMiddleware.Authenticate(cartHandler.AddItem()))
	routerMux.HandleFunc("PUT /api/v1/cart/items/{productId}", authMiddleware.Authenticate(cartHandler.UpdateQuantity()))
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{productId}", authMiddleware.Authenticate(cartHandler.RemoveItem()))
	routerMux.HandleFunc("DELETE /api/v1/cart", authMiddleware.Authenticate(cartHandler.ClearCart()))
	routerMux.HandleFunc("GET /api/v1/checkout/quote", authMiddleware.Authenticate(checkoutHandler.Quote()))
	routerMux.HandleFunc("POST /api/v1/checkout", authMiddleware.Authenticate(checkoutHandler.PlaceOrder()))
	routerMux.HandleFunc("GET /api/v1/transactions", authMiddleware.Authenticate(checkoutHandler.ListTransactions()))
	routerMux.HandleFunc("PATCH /api/v1/transactions/{id}/status", authMiddleware.Authenticate(checkoutHandler.UpdateTransactionStatus()))

	// Operations
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Middleware chaining
	// metrics sits directly on the mux so it sees the matched pattern.
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "plantshop")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}

}
