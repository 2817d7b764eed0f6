package config

import (
	"os"
	"time"

	"Smart-Fridge-Manager/internal/api/handlers"
	"Smart-Fridge-Manager/internal/api/routes"
	"Smart-Fridge-Manager/internal/middleware"
	"Smart-Fridge-Manager/internal/utils"
	"Smart-Fridge-Manager/internal/utils/storage"
	"Smart-Fridge-Manager/pkg/detection"
	"Smart-Fridge-Manager/pkg/fridge"
	"Smart-Fridge-Manager/pkg/jwt"
	"Smart-Fridge-Manager/pkg/mailer"
	"Smart-Fridge-Manager/pkg/notification"
	"Smart-Fridge-Manager/pkg/recipe"
	"Smart-Fridge-Manager/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, *notification.Scheduler, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   utils.Timezone(),
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	smtpMailer, err := mailer.NewSMTPMailer()
	if err != nil {
		return nil, nil, err
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	fridgeRepository := fridge.NewFridgeRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)
	detectionRepository := detection.NewDetectionRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	fridgeService := fridge.NewFridgeService(fridgeRepository, s3)
	notificationService := notification.NewNotificationService(
		notificationRepository,
		fridgeRepository,
		smtpMailer,
	)
	detectionService := detection.NewDetectionService(detectionRepository, fridgeRepository, s3)
	recipeService := recipe.NewRecipeService(recipeRepository, fridgeRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	fridgeHandler := handlers.NewFridgeHandler(fridgeService, validator)
	detectionHandler := handlers.NewDetectionHandler(detectionService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	scheduler := notification.NewScheduler(notificationService)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		FridgeHandler:       fridgeHandler,
		DetectionHandler:    detectionHandler,
		RecipeHandler:       recipeHandler,
		NotificationHandler: notificationHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, scheduler, nil
}
