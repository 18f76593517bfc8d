package middleware

import (
	"mailsim/utils"

	"github.com/gofiber/fiber/v2"
)

// LocaleMiddleware resolves the request language and stores a localizer in
// the request context for handlers to render section titles with.
func LocaleMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lang := c.Query("lang")
		if lang == "" {
			lang = c.Get("Accept-Language")
		}
		if lang == "" {
			lang = "en"
		}

		c.Locals("lang", lang)
		c.Locals("localizer", utils.GetLocalizer(lang))
		return c.Next()
	}
}
