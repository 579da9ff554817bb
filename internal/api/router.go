package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campusops/student-api/internal/api/handler"
	"github.com/campusops/student-api/internal/api/middleware"
	"github.com/campusops/student-api/internal/api/session"
	"github.com/campusops/student-api/internal/core/service"
	mongodb "github.com/campusops/student-api/internal/infrastructure/db/mongo"
	redisdb "github.com/campusops/student-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Access control is attached per route: only the /students group carries the
// admin guard and only /secret carries the user guard, so registration order
// cannot change what is protected.
func NewRouter(db *mongo.Database, rdb *redis.Client, sessionSecret string, sessionTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("studentapi"))

	// --- Dependencies ---
	studentRepo := mongodb.NewStudentRepository(db)
	studentService := service.NewStudentService(studentRepo)
	studentHandler := handler.NewStudentHandler(studentService)

	userRepo := mongodb.NewUserRepository(db)
	authService := service.NewAuthService(userRepo)
	authHandler := handler.NewAuthHandler(authService)

	sessionStore := redisdb.NewSessionStore(rdb, sessionTTL)
	sessionManager := session.NewManager(sessionStore, sessionSecret, sessionTTL)
	sessionHandler := handler.NewSessionHandler(int(sessionTTL.Seconds()))

	e.Use(sessionManager.Middleware())

	// --- Root ---
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Hello, Student Management API with sessions and cookies is running!")
	})

	// --- Student CRUD (admin only) ---
	students := e.Group("/students", middleware.RequireAdmin())
	students.GET("", studentHandler.List)
	students.GET("/:id", studentHandler.Get)
	students.POST("", studentHandler.Create)
	students.PUT("/:id", studentHandler.Update)
	students.DELETE("/:id", studentHandler.Delete)

	// --- Auth routes ---
	e.GET("/register", authHandler.RegisterForm)
	e.POST("/register", authHandler.Register)
	e.GET("/login", authHandler.LoginForm)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)
	e.GET("/secret", authHandler.Secret, middleware.RequireUser())

	// --- Session/cookie demo routes ---
	e.GET("/set-session-cookie", sessionHandler.Set)
	e.GET("/get-session-cookie", sessionHandler.Get)
	e.GET("/destroy-session-cookie", sessionHandler.Destroy)
	e.GET("/view-count", sessionHandler.ViewCount)

	// --- Health probes and metrics (no session required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
