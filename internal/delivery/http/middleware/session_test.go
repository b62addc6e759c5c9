package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSessionApp() *fiber.App {
	app := fiber.New()
	app.Use(Recovery(zap.NewNop()))
	app.Use(Logger(zap.NewNop()))
	app.Use(Session("sid", time.Hour))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(SessionID(c))
	})
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("boom")
	})
	return app
}

func TestSession(t *testing.T) {
	app := newSessionApp()

	tests := []struct {
		name      string
		cookie    string
		expectNew bool
	}{
		{"no cookie", "", true},
		{"garbage cookie", "not-a-uuid", true},
		{"valid cookie", uuid.NewString(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "sid", Value: tt.cookie})
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			if tt.expectNew {
				require.Len(t, resp.Cookies(), 1)
				issued := resp.Cookies()[0]
				assert.Equal(t, "sid", issued.Name)
				assert.True(t, issued.HttpOnly)
				assert.Equal(t, issued.Value, string(body))
				_, err := uuid.Parse(string(body))
				assert.NoError(t, err)
			} else {
				assert.Empty(t, resp.Cookies())
				assert.Equal(t, tt.cookie, string(body))
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	app := newSessionApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
