package main

import (
	"net/http"

	_ "github.com/thspin/proyecto-1/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/thspin/proyecto-1/internal/auth"
	"github.com/thspin/proyecto-1/internal/cache"
	"github.com/thspin/proyecto-1/internal/config"
	"github.com/thspin/proyecto-1/internal/db"
	"github.com/thspin/proyecto-1/internal/handler"
	"github.com/thspin/proyecto-1/internal/logger"
	"github.com/thspin/proyecto-1/internal/model"
	"github.com/thspin/proyecto-1/internal/repository"
	"github.com/thspin/proyecto-1/internal/router"
	"github.com/thspin/proyecto-1/internal/service"
)

// @title Proyecto-1 API
// @version 1.0
// @description Personal finance bookkeeping API with JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Log.Sync()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logger.Log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Transaction{},
		&model.CreditCard{},
		&model.OtherCredit{},
		&model.Rental{},
		&model.Service{},
	); err != nil {
		logger.Log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	transactionRepo := repository.NewTransactionRepository(gormDB)
	creditCardRepo := repository.NewCreditCardRepository(gormDB)
	otherCreditRepo := repository.NewOtherCreditRepository(gormDB)
	rentalRepo := repository.NewRentalRepository(gormDB)
	serviceRepo := repository.NewServiceRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.AccessTokenTTL)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo, cacheClient)
	categoryService := service.NewCategoryService(categoryRepo)
	transactionService := service.NewTransactionService(transactionRepo, categoryRepo)
	creditCardService := service.NewCreditCardService(creditCardRepo)
	otherCreditService := service.NewOtherCreditService(otherCreditRepo)
	rentalService := service.NewRentalService(rentalRepo)
	serviceService := service.NewServiceService(serviceRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	transactionHandler := handler.NewTransactionHandler(transactionService)
	creditCardHandler := handler.NewCreditCardHandler(creditCardService)
	otherCreditHandler := handler.NewOtherCreditHandler(otherCreditService)
	rentalHandler := handler.NewRentalHandler(rentalService)
	serviceHandler := handler.NewServiceHandler(serviceService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		userService,
		authHandler,
		userHandler,
		categoryHandler,
		transactionHandler,
		creditCardHandler,
		otherCreditHandler,
		rentalHandler,
		serviceHandler,
	)

	if cfg.SwaggerHost != "" {
		logger.Log.Infof("swagger documentation available at: http://%s/swagger/index.html", cfg.SwaggerHost)
	} else {
		logger.Log.Infof("swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Log.Fatalf("server start: %v", err)
	}
}
