package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/porchfest-map/internal/usecase"
)

const sessionLocalKey = "session_id"

// Session выдает браузеру cookie с id сессии, если его нет или он не uuid
func Session(cookieName string, maxAge time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Cookies(cookieName)
		if !usecase.ValidSessionID(id) {
			id = usecase.NewSessionID()
			c.Cookie(&fiber.Cookie{
				Name:     cookieName,
				Value:    id,
				Path:     "/",
				MaxAge:   int(maxAge.Seconds()),
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}

		c.Locals(sessionLocalKey, id)
		return c.Next()
	}
}

// SessionID - id сессии текущего запроса ("" вне Session middleware)
func SessionID(c *fiber.Ctx) string {
	id, _ := c.Locals(sessionLocalKey).(string)
	return id
}
