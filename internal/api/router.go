package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/edukatsiya/education-platform/internal/api/handler"
	"github.com/edukatsiya/education-platform/internal/api/middleware"
	"github.com/edukatsiya/education-platform/internal/core/domain"
	"github.com/edukatsiya/education-platform/internal/core/service"
	mongodb "github.com/edukatsiya/education-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/edukatsiya/education-platform/internal/infrastructure/db/redis"
	"github.com/edukatsiya/education-platform/internal/infrastructure/storage"
	"github.com/edukatsiya/education-platform/internal/pkg/token"
)

// Deps carries the shared infrastructure the router wires handlers onto.
type Deps struct {
	Mongo     *mongo.Database
	Redis     *redis.Client
	Issuer    *token.Issuer
	UploadDir string
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("edu"))

	// --- Dependencies ---
	authRepo := mongodb.NewAuthRepository(d.Mongo)
	courseRepo := mongodb.NewCourseRepository(d.Mongo)
	teacherRepo := mongodb.NewTeacherRepository(d.Mongo)
	reviewRepo := mongodb.NewReviewRepository(d.Mongo)
	advantageRepo := mongodb.NewAdvantageRepository(d.Mongo)
	studentReviewRepo := mongodb.NewStudentReviewRepository(d.Mongo)

	limiter := redisdb.NewLoginLimiter(d.Redis)
	uploadStore := storage.NewDiskStore(d.UploadDir)

	authService := service.NewAuthService(authRepo, d.Issuer, limiter, d.Log)
	courseService := service.NewCourseService(courseRepo, teacherRepo, d.Log)
	teacherService := service.NewTeacherService(teacherRepo, d.Log)
	reviewService := service.NewReviewService(reviewRepo, courseRepo, d.Log)
	advantageService := service.NewAdvantageService(advantageRepo, d.Log)
	studentReviewService := service.NewStudentReviewService(studentReviewRepo, d.Log)
	uploadService := service.NewUploadService(uploadStore, d.Log)

	authHandler := handler.NewAuthHandler(authService)
	courseHandler := handler.NewCourseHandler(courseService)
	teacherHandler := handler.NewTeacherHandler(teacherService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	advantageHandler := handler.NewAdvantageHandler(advantageService)
	studentReviewHandler := handler.NewStudentReviewHandler(studentReviewService)
	uploadHandler := handler.NewUploadHandler(uploadService)

	auth := middleware.Auth(d.Issuer)
	adminOnly := []echo.MiddlewareFunc{auth, middleware.RequireRole(domain.RoleAdmin)}

	api := e.Group("/api")

	// --- Auth ---
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/admin/login", authHandler.AdminLogin)
	api.GET("/auth/users", authHandler.ListUsers, adminOnly...)

	// --- Courses ---
	api.GET("/courses", courseHandler.List)
	api.GET("/courses/:id", courseHandler.Get)
	api.POST("/courses", courseHandler.Create, adminOnly...)
	api.PUT("/courses/:id", courseHandler.Update, adminOnly...)
	api.DELETE("/courses/:id", courseHandler.Delete, adminOnly...)

	// --- Teachers ---
	api.GET("/teachers", teacherHandler.List)
	api.GET("/teachers/:id", teacherHandler.Get)
	api.POST("/teachers", teacherHandler.Create, adminOnly...)
	api.PUT("/teachers/:id", teacherHandler.Update, adminOnly...)
	api.DELETE("/teachers/:id", teacherHandler.Delete, adminOnly...)

	// --- Reviews (owned resource) ---
	api.GET("/reviews", reviewHandler.List)
	api.POST("/reviews", reviewHandler.Create, auth)
	api.PUT("/reviews/:id", reviewHandler.Update, auth)
	api.DELETE("/reviews/:id", reviewHandler.Delete, auth)

	// --- Advantages ---
	api.GET("/advantages", advantageHandler.List)
	api.POST("/advantages", advantageHandler.Create, adminOnly...)
	api.PUT("/advantages/:id", advantageHandler.Update, adminOnly...)
	api.DELETE("/advantages/:id", advantageHandler.Delete, adminOnly...)

	// --- Student reviews ---
	api.GET("/student-reviews", studentReviewHandler.List)
	api.POST("/student-reviews", studentReviewHandler.Create, adminOnly...)

	// --- Uploads ---
	api.GET("/uploads", uploadHandler.List)
	api.POST("/uploads", uploadHandler.Upload, auth)
	e.Static("/uploads", d.UploadDir)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Mongo, d.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/docs/*", echoSwagger.WrapHandler)

	return e
}
