package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("loud"))
}

func TestLogger_ContextFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{ServiceName: "kokko", Output: &buf})

	ctx := l.WithRequestID(context.Background(), "req-1")
	l.Error(ctx, "boom", errors.New("db down"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kokko", entry["service"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "db down", entry["error"])
	assert.Equal(t, "error", entry["level"])
}

func TestLogger_Fatal(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{ServiceName: "kokko", Output: &buf})
	code := -1
	l.exit = func(c int) { code = c }

	l.Fatal(context.Background(), "failed to ping postgres", errors.New("connection refused"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, 1, code)
	assert.Equal(t, "fatal", entry["level"])
	assert.Equal(t, "kokko", entry["service"])
	assert.Equal(t, "connection refused", entry["error"])
	assert.Equal(t, "failed to ping postgres", entry["message"])
}

func TestLogger_Middleware(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{ServiceName: "kokko", Output: &buf})

	app := fiber.New()
	app.Use(l.Middleware())
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(fiber.HeaderXRequestID, "abc")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "abc", resp.Header.Get(fiber.HeaderXRequestID))
	out := buf.String()
	assert.True(t, strings.Contains(out, `"path":"/ping"`), out)
	assert.True(t, strings.Contains(out, `"request_id":"abc"`), out)
}
