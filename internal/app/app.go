// Package app wires configuration, storage, events and the HTTP router
// together and owns the server lifecycle.
package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"petbhai-backend/internal/cartstore"
	"petbhai-backend/internal/config"
	"petbhai-backend/internal/events"
	"petbhai-backend/internal/handler"
	"petbhai-backend/internal/middleware"
	"petbhai-backend/internal/repository"
	"petbhai-backend/internal/repository/memory"
	"petbhai-backend/internal/repository/mongodb"
	"petbhai-backend/internal/seed"
	"petbhai-backend/internal/service"
)

type App struct {
	cfg    *config.Config
	logger *zap.Logger

	closers []func()
}

func New(cfg *config.Config, logger *zap.Logger) *App {
	return &App{cfg: cfg, logger: logger}
}

func (a *App) Run() error {
	defer a.closeAll()

	products, orders, err := a.initStores()
	if err != nil {
		return err
	}

	carts := a.initCartStore()
	publisher := a.initPublisher()

	users := memory.NewUserRepository()
	posts := memory.NewPostRepository()
	vets := memory.NewVetRepository(seed.Vets())
	animals := memory.NewAnimalRepository(seed.Animals())
	brands := memory.NewBrandRepository(seed.Brands())
	articles := memory.NewArticleRepository(seed.Articles())

	catalogSvc := service.NewCatalogService(products, brands)
	orderSvc := service.NewOrderService(orders, products, carts, publisher, a.logger)

	router := a.buildRouter(
		handler.NewAuthHandler(users, []byte(a.cfg.JWTSecret)),
		handler.NewProductHandler(catalogSvc),
		handler.NewContentHandler(vets, animals, brands, articles),
		handler.NewCartHandler(carts, products, a.logger),
		handler.NewOrderHandler(orderSvc),
		handler.NewPostHandler(posts),
	)

	server := &http.Server{
		Addr:    ":" + a.cfg.Port,
		Handler: router,
	}
	return a.runWithGracefulShutdown(server)
}

// initStores picks MongoDB when configured and falls back to seeded
// in-memory stores, the documented demo mode where data resets on
// restart.
func (a *App) initStores() (repository.ProductRepository, repository.OrderRepository, error) {
	if a.cfg.MongoURI == "" {
		a.logger.Info("MONGO_URI not set, using in-memory stores")
		products := memory.NewProductRepository()
		seedProducts(products, a.logger)
		return products, memory.NewOrderRepository(), nil
	}

	a.logger.Info("connecting to MongoDB", zap.String("db", a.cfg.MongoDB))
	client, err := mongodb.Connect(a.cfg.MongoURI)
	if err != nil {
		return nil, nil, fmt.Errorf("mongodb: %w", err)
	}
	a.closers = append(a.closers, func() {
		if err := mongodb.Disconnect(client); err != nil {
			a.logger.Warn("mongodb disconnect failed", zap.Error(err))
		}
	})

	products, err := mongodb.NewProductRepository(client, a.cfg.MongoDB)
	if err != nil {
		return nil, nil, err
	}
	orders, err := mongodb.NewOrderRepository(client, a.cfg.MongoDB)
	if err != nil {
		return nil, nil, err
	}

	// first boot against an empty database gets the bundled catalog
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	existing, err := products.List(ctx)
	if err == nil && len(existing) == 0 {
		seedProducts(products, a.logger)
	}

	return products, orders, nil
}

func seedProducts(products repository.ProductRepository, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, p := range seed.Products() {
		product := p
		if err := products.Insert(ctx, &product); err != nil {
			logger.Warn("failed to seed product",
				zap.Int("product_id", p.ID), zap.Error(err))
		}
	}
}

func (a *App) initCartStore() cartstore.Store {
	if a.cfg.RedisAddr == "" {
		a.logger.Info("REDIS_ADDR not set, carts held in memory")
		return cartstore.NewMemoryStore()
	}

	store, err := cartstore.NewRedisStore(a.cfg.RedisAddr, a.logger)
	if err != nil {
		// carts must keep working; fall back rather than refuse to boot
		a.logger.Warn("redis unavailable, carts held in memory", zap.Error(err))
		return cartstore.NewMemoryStore()
	}
	a.logger.Info("carts persisted to redis", zap.String("addr", a.cfg.RedisAddr))
	a.closers = append(a.closers, func() {
		if err := store.Close(); err != nil {
			a.logger.Warn("redis close failed", zap.Error(err))
		}
	})
	return store
}

func (a *App) initPublisher() events.Publisher {
	if a.cfg.NATSURL == "" {
		a.logger.Info("NATS_URL not set, event publishing disabled")
		return events.NoopPublisher{}
	}

	publisher, err := events.NewNatsPublisher(a.cfg.NATSURL, a.logger)
	if err != nil {
		a.logger.Warn("NATS unavailable, continuing without events", zap.Error(err))
		return events.NoopPublisher{}
	}
	a.closers = append(a.closers, publisher.Close)
	return publisher
}

func (a *App) buildRouter(
	auth *handler.AuthHandler,
	products *handler.ProductHandler,
	content *handler.ContentHandler,
	carts *handler.CartHandler,
	orders *handler.OrderHandler,
	posts *handler.PostHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(a.logger))
	router.Use(middleware.RateLimit(a.cfg.RateLimitRPS, a.cfg.RateBurst))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{a.cfg.AllowOrigins},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "petbhai-backend"})
	})

	api := router.Group("/api")
	{
		api.POST("/auth/signup", auth.Signup)
		api.POST("/auth/login", auth.Login)

		api.GET("/products", products.List)
		api.GET("/products/:id", products.Get)
		api.POST("/products/:id/reviews", products.AddReview)

		api.GET("/vets", content.ListVets)
		api.GET("/vets/:id", content.GetVet)
		api.GET("/animals", content.ListAnimals)
		api.GET("/animals/:id", content.GetAnimal)
		api.GET("/brands", content.ListBrands)
		api.GET("/brands/:id", content.GetBrand)
		api.GET("/articles", content.ListArticles)
		api.GET("/articles/:id", content.GetArticle)

		api.GET("/posts", posts.List)
		api.GET("/posts/:id", posts.Get)
	}

	authed := router.Group("/api", middleware.Auth([]byte(a.cfg.JWTSecret)))
	{
		authed.GET("/user/profile", auth.Profile)

		authed.GET("/cart", carts.Get)
		authed.POST("/cart", carts.Add)
		authed.PUT("/cart/:productId", carts.Update)
		authed.DELETE("/cart/:productId", carts.Remove)
		authed.POST("/cart/clear", carts.Clear)

		authed.POST("/orders", orders.Create)
		authed.GET("/orders", orders.List)
		// lives outside /orders because :id would shadow a static
		// segment in the route tree
		authed.GET("/stats/orders", orders.Stats)
		authed.GET("/orders/:id", orders.Get)
		authed.POST("/orders/:id/cancel", orders.Cancel)
		authed.GET("/orders/:id/track", orders.Track)

		authed.POST("/posts", posts.Create)
		authed.POST("/posts/:id/comments", posts.AddComment)
		authed.POST("/posts/:id/comments/:commentId/replies", posts.AddReply)
		authed.POST("/posts/:id/like", posts.ToggleLike)
	}

	admin := router.Group("/api", middleware.Auth([]byte(a.cfg.JWTSecret)), middleware.RequireAdmin())
	{
		admin.POST("/products", products.Create)
		admin.PATCH("/orders/:id/status", orders.UpdateStatus)
	}

	return router
}

func (a *App) runWithGracefulShutdown(server *http.Server) error {
	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("starting HTTP server", zap.String("port", a.cfg.Port))
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		a.logger.Info("shutdown signal received", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			a.logger.Warn("graceful shutdown timed out, forcing close", zap.Error(err))
			if err := server.Close(); err != nil {
				return fmt.Errorf("server close: %w", err)
			}
		}
		a.logger.Info("server stopped")
		return nil
	}
}

func (a *App) closeAll() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}
