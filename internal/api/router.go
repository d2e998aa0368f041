package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bookhive/bookstore-api/internal/api/handler"
	"github.com/bookhive/bookstore-api/internal/api/middleware"
	"github.com/bookhive/bookstore-api/internal/core/domain"
	"github.com/bookhive/bookstore-api/internal/core/service"
	"github.com/bookhive/bookstore-api/internal/infrastructure/config"
	bookmongo "github.com/bookhive/bookstore-api/internal/infrastructure/db/mongo"
	bookredis "github.com/bookhive/bookstore-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil, in which case logout is stateless and tokens stay valid
// until they expire.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("bookstore"))

	// --- Dependencies ---
	userRepo := bookmongo.NewUserRepository(db)
	bookRepo := bookmongo.NewBookRepository(db)

	var denylist *bookredis.TokenDenylist
	if rdb != nil {
		denylist = bookredis.NewTokenDenylist(rdb)
	}

	authService := service.NewAuthService(userRepo, denylistOrNil(denylist), cfg.JWTSecret, cfg.JWTTTL, log)
	userService := service.NewUserService(userRepo, log)
	bookService := service.NewBookService(bookRepo, userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	bookHandler := handler.NewBookHandler(bookService)

	authGuard := middleware.Auth(cfg.JWTSecret, userRepo, checkerOrNil(denylist))
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)

	// --- Book routes ---
	books := e.Group("/api/books")
	books.GET("", bookHandler.List)
	books.GET("/:id", bookHandler.Get)
	books.POST("", bookHandler.Create, authGuard)
	books.PUT("/:id", bookHandler.Update, authGuard)
	books.DELETE("/:id", bookHandler.Delete, authGuard)
	books.POST("/:id/buy", bookHandler.Buy, authGuard)

	// --- User routes ---
	users := e.Group("/api/users", authGuard)
	users.GET("/me", userHandler.Me)
	users.GET("", userHandler.List, adminOnly)
	users.GET("/:id", userHandler.Get, adminOnly)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete, adminOnly)

	// --- Health probes, metrics, docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// denylistOrNil keeps a nil *TokenDenylist from turning into a non-nil
// interface value inside the auth service.
func denylistOrNil(d *bookredis.TokenDenylist) service.TokenDenylist {
	if d == nil {
		return nil
	}
	return d
}

func checkerOrNil(d *bookredis.TokenDenylist) middleware.DenylistChecker {
	if d == nil {
		return nil
	}
	return d
}
