package main

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"mailsim/config"
	"mailsim/feed"
	"mailsim/handlers/api"
	"mailsim/middleware"
	"mailsim/storage"
	"mailsim/utils"
)

func main() {
	godotenv.Load()

	cfg, err := config.LoadConfig("config.toml")
	if err != nil {
		utils.Log.Error("Failed to load config: %v", err)
		return
	}

	if err := utils.InitI18n(); err != nil {
		utils.Log.Error("Failed to initialize i18n: %v", err)
	}

	store, err := storage.NewStore(cfg.Generator.OutDir)
	if err != nil {
		utils.Log.Error("Failed to open data directory: %v", err)
		return
	}

	loader := feed.NewLoader(store,
		feed.WithPageSize(cfg.Feed.PageSize),
		feed.WithZone(utils.LoadLocation(cfg.Mailbox.Timezone)),
	)
	if len(loader.Months()) == 0 {
		utils.Log.Warn("No months in manifest; run the generator first (cmd/mailgen)")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if appErr, ok := err.(*utils.AppError); ok {
				code = appErr.Code
			} else if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			if code >= 500 {
				utils.Log.Error("Request failed: %v", err)
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(middleware.LocaleMiddleware())

	feedHandler := api.NewFeedHandler(cfg, loader)
	apiGroup := app.Group("/api", middleware.RateLimiter(120, time.Minute))
	apiGroup.Get("/months", feedHandler.Months)
	apiGroup.Get("/months/latest", feedHandler.Latest)
	apiGroup.Get("/months/:year/:month", feedHandler.Month)
	apiGroup.Get("/inbox", feedHandler.Inbox)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	utils.Log.Info("Listening on %s", addr)
	if err := app.Listen(addr); err != nil {
		utils.Log.Error("Server stopped: %v", err)
	}
}
