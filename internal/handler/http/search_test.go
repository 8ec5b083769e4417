package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindtime/api/internal/adapter"
	"github.com/grindtime/api/internal/logger"
	"github.com/grindtime/api/internal/service"
	"github.com/grindtime/api/models"
)

// ─────────────────────────────────────────────
// Mock searchers
// ─────────────────────────────────────────────

type mockFoodSearcher struct {
	searchFoodsFn func(ctx context.Context, query string, limit int) ([]models.Food, error)
}

func (m *mockFoodSearcher) SearchFoods(ctx context.Context, query string, limit int) ([]models.Food, error) {
	return m.searchFoodsFn(ctx, query, limit)
}

type mockVideoSearcher struct {
	searchVideosFn func(ctx context.Context, query string, limit int) ([]models.Video, error)
}

func (m *mockVideoSearcher) SearchVideos(ctx context.Context, query string, limit int) ([]models.Video, error) {
	return m.searchVideosFn(ctx, query, limit)
}

func newSearchHandler(t *testing.T, food adapter.FoodSearcher, video adapter.VideoSearcher) *Handler {
	t.Helper()
	svcs := &service.Services{AuthService: &mockAuthService{}}
	return NewHandler(svcs, food, video, logger.Nop())
}

// ─────────────────────────────────────────────
// searchFood
// ─────────────────────────────────────────────

func TestSearchFood_Success(t *testing.T) {
	food := &mockFoodSearcher{
		searchFoodsFn: func(_ context.Context, query string, limit int) ([]models.Food, error) {
			assert.Equal(t, "chicken breast", query)
			assert.Equal(t, 5, limit)
			return []models.Food{{FdcID: 171477, Description: "Chicken, broiler, breast"}}, nil
		},
	}

	h := newSearchHandler(t, food, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/food/search?q=chicken+breast&limit=5", nil)
	rec := httptest.NewRecorder()

	h.searchFood(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	foods := decodeBody[[]models.Food](t, rec)
	require.Len(t, foods, 1)
	assert.Equal(t, int64(171477), foods[0].FdcID)
}

func TestSearchFood_MissingQuery(t *testing.T) {
	food := &mockFoodSearcher{
		searchFoodsFn: func(_ context.Context, _ string, _ int) ([]models.Food, error) {
			t.Fatal("searcher must not be reached without a query")
			return nil, nil
		},
	}

	h := newSearchHandler(t, food, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/food/search", nil)
	rec := httptest.NewRecorder()

	h.searchFood(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchFood_NotConfigured(t *testing.T) {
	food := &mockFoodSearcher{
		searchFoodsFn: func(_ context.Context, _ string, _ int) ([]models.Food, error) {
			return nil, adapter.ErrSearchUnavailable
		},
	}

	h := newSearchHandler(t, food, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/food/search?q=oats", nil)
	rec := httptest.NewRecorder()

	h.searchFood(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSearchFood_UpstreamFailure(t *testing.T) {
	food := &mockFoodSearcher{
		searchFoodsFn: func(_ context.Context, _ string, _ int) ([]models.Food, error) {
			return nil, adapter.ErrUpstreamFailed
		},
	}

	h := newSearchHandler(t, food, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/food/search?q=oats", nil)
	rec := httptest.NewRecorder()

	h.searchFood(rec, req)

	require.Equal(t, http.StatusBadGateway, rec.Code)
}

// ─────────────────────────────────────────────
// searchVideos
// ─────────────────────────────────────────────

func TestSearchVideos_Success(t *testing.T) {
	video := &mockVideoSearcher{
		searchVideosFn: func(_ context.Context, query string, limit int) ([]models.Video, error) {
			assert.Equal(t, "squat form", query)
			return []models.Video{{
				VideoID:  "abc123",
				Title:    "Perfect Squat Form",
				WatchURL: "https://www.youtube.com/watch?v=abc123",
			}}, nil
		},
	}

	h := newSearchHandler(t, nil, video)
	req := httptest.NewRequest(http.MethodGet, "/api/videos/search?q=squat+form", nil)
	rec := httptest.NewRecorder()

	h.searchVideos(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	videos := decodeBody[[]models.Video](t, rec)
	require.Len(t, videos, 1)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", videos[0].WatchURL)
}

func TestSearchVideos_MissingQuery(t *testing.T) {
	h := newSearchHandler(t, nil, &mockVideoSearcher{})
	req := httptest.NewRequest(http.MethodGet, "/api/videos/search", nil)
	rec := httptest.NewRecorder()

	h.searchVideos(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
