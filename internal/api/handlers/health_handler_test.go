package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"tritech-assistant/internal/dto"
	"tritech-assistant/internal/knowledge"
	"tritech-assistant/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubEntrySource struct {
	entries []models.KnowledgeEntry
	err     error
}

func (s *stubEntrySource) ListEntries(ctx context.Context) ([]models.KnowledgeEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.entries, nil
}

func TestHealth(t *testing.T) {
	source := &stubEntrySource{entries: []models.KnowledgeEntry{
		{ID: uuid.New(), Question: "q", Answer: "a"},
	}}
	dynamic := knowledge.NewDynamicProvider(source, zap.NewNop())
	require.NoError(t, dynamic.Reload(context.Background()))

	handler := NewHealthHandler(&stubGateway{configured: true}, dynamic)
	app := fiber.New()
	app.Get("/health", handler.Health)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var parsed dto.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))

	assert.Equal(t, "healthy", parsed.Status)
	assert.Equal(t, "configured", parsed.Services.AIGateway)
	assert.Equal(t, 1, parsed.Services.KnowledgeEntries)
	assert.NotEmpty(t, parsed.Timestamp)
}

func TestHealth_UnconfiguredGateway(t *testing.T) {
	dynamic := knowledge.NewDynamicProvider(&stubEntrySource{}, zap.NewNop())

	handler := NewHealthHandler(&stubGateway{}, dynamic)
	app := fiber.New()
	app.Get("/health", handler.Health)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed dto.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))

	assert.Equal(t, "not_configured", parsed.Services.AIGateway)
	assert.Zero(t, parsed.Services.KnowledgeEntries)
}

func TestReload(t *testing.T) {
	source := &stubEntrySource{}
	dynamic := knowledge.NewDynamicProvider(source, zap.NewNop())

	handler := NewAdminHandler(dynamic, zap.NewNop())
	app := fiber.New()
	app.Post("/admin/reload", handler.Reload)

	source.entries = []models.KnowledgeEntry{
		{ID: uuid.New(), Question: "q1", Answer: "a1"},
		{ID: uuid.New(), Question: "q2", Answer: "a2"},
	}

	resp, err := app.Test(httptest.NewRequest("POST", "/admin/reload", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var parsed dto.ReloadResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	assert.Equal(t, "reloaded", parsed.Status)
	assert.Equal(t, 2, parsed.Entries)
}

func TestReload_SourceFailure(t *testing.T) {
	source := &stubEntrySource{err: errors.New("connection refused")}
	dynamic := knowledge.NewDynamicProvider(source, zap.NewNop())

	handler := NewAdminHandler(dynamic, zap.NewNop())
	app := fiber.New()
	app.Post("/admin/reload", handler.Reload)

	resp, err := app.Test(httptest.NewRequest("POST", "/admin/reload", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
