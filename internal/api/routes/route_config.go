package routes

import (
	"time"

	"Smart-Fridge-Manager/internal/api/handlers"
	"Smart-Fridge-Manager/internal/middleware"
	"Smart-Fridge-Manager/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	FridgeHandler       handlers.FridgeHandler
	DetectionHandler    handlers.DetectionHandler
	RecipeHandler       handlers.RecipeHandler
	NotificationHandler handlers.NotificationHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.FridgeItems()
	c.Detections()
	c.Recipes()
	c.Notifications()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateProfile)
		user.Patch("/notification-settings", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateNotificationSettings)
	}
}

func (c *Config) FridgeItems() {
	fridgeItems := c.App.Group("/api/v1/fridge-items", c.Middleware.AuthMiddleware(c.JWTService))
	fridgeItems.Get("/stats", c.FridgeHandler.GetFridgeStats)
	fridgeItems.Get("/expiring", c.FridgeHandler.GetExpiringItems)

	// Basic CRUD operations
	fridgeItems.Post("", c.FridgeHandler.AddFridgeItem)
	fridgeItems.Get("", c.FridgeHandler.GetFridgeItems)
	fridgeItems.Get("/:id", c.FridgeHandler.GetFridgeItemDetails)
	fridgeItems.Put("/:id", c.FridgeHandler.UpdateFridgeItem)
	fridgeItems.Delete("/:id", c.FridgeHandler.DeleteFridgeItem)

	// Special operations
	fridgeItems.Post("/:id/consume", c.FridgeHandler.MarkAsConsumed)
	fridgeItems.Post("/image", c.FridgeHandler.UploadItemImage)
}

func (c *Config) Detections() {
	detections := c.App.Group("/api/v1/detections", c.Middleware.AuthMiddleware(c.JWTService))
	detections.Post("", c.DetectionHandler.DetectIngredients)
	detections.Get("/pending", c.DetectionHandler.GetPendingDetections)
	detections.Post("/confirm", c.DetectionHandler.ConfirmDetection)
	detections.Get("/food-info", c.DetectionHandler.GetFoodInfo)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))
	recipes.Post("/suggestions", c.RecipeHandler.GetSuggestions)
	recipes.Post("/saved", c.RecipeHandler.SaveSuggestion)
	recipes.Get("/saved", c.RecipeHandler.GetSavedSuggestions)
	recipes.Delete("/saved/:id", c.RecipeHandler.DeleteSuggestion)
}

func (c *Config) Notifications() {
	// Manual trigger for the daily expiration check; the duplicate-send
	// guard keeps repeated triggers from double-mailing users.
	c.App.Post("/api/v1/notifications/trigger", c.Middleware.AuthMiddleware(c.JWTService), c.NotificationHandler.TriggerNotifications)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
	c.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "timestamp": time.Now().Format(time.RFC3339)})
	})
}
