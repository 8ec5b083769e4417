// Package adapter contains outbound integrations with third-party APIs.
// Each adapter is a thin resty-backed proxy: credentials stay server-side,
// responses are reduced to the fields the frontend consumes, and no caching
// or quota logic is layered on top.
package adapter

import (
	"context"

	"github.com/grindtime/api/models"
)

// FoodSearcher finds foods with nutrition data by free-text query.
type FoodSearcher interface {
	SearchFoods(ctx context.Context, query string, limit int) ([]models.Food, error)
}

// VideoSearcher finds workout videos by free-text query.
type VideoSearcher interface {
	SearchVideos(ctx context.Context, query string, limit int) ([]models.Video, error)
}
