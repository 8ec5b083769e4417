package adapter

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/grindtime/api/internal/config"
	"github.com/grindtime/api/internal/logger"
	"github.com/grindtime/api/models"
)

const defaultUSDABaseURL = "https://api.nal.usda.gov/fdc/v1"

// usdaFoodSearcher proxies the USDA FoodData Central foods/search endpoint.
type usdaFoodSearcher struct {
	client *resty.Client
	apiKey string
	logger *logger.Logger
}

// fdcSearchResponse mirrors the subset of the FoodData Central search
// response consumed by this adapter.
type fdcSearchResponse struct {
	Foods []struct {
		FdcID         int64  `json:"fdcId"`
		Description   string `json:"description"`
		DataType      string `json:"dataType"`
		FoodNutrients []struct {
			NutrientName string  `json:"nutrientName"`
			Value        float64 `json:"value"`
			UnitName     string  `json:"unitName"`
		} `json:"foodNutrients"`
	} `json:"foods"`
}

// nutrientsOfInterest limits the nutrient list to what the calorie tracker
// displays: energy and the three macros.
var nutrientsOfInterest = map[string]struct{}{
	"Energy":                      {},
	"Energy, kcal":                {},
	"Protein":                     {},
	"Carbohydrate, by difference": {},
	"Total lipid (fat)":           {},
}

// NewUSDAFoodSearcher constructs a FoodSearcher for the FoodData Central API.
// An empty API key yields a searcher whose calls fail with
// ErrSearchUnavailable.
func NewUSDAFoodSearcher(cfg config.Search, log *logger.Logger) FoodSearcher {
	baseURL := cfg.USDABaseURL
	if baseURL == "" {
		baseURL = defaultUSDABaseURL
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &usdaFoodSearcher{client: cli, apiKey: cfg.USDAAPIKey, logger: log}
}

// SearchFoods runs a free-text food search and reduces each hit to its
// description and the nutrients of interest.
func (u *usdaFoodSearcher) SearchFoods(ctx context.Context, query string, limit int) ([]models.Food, error) {
	log := logger.FromContext(ctx)

	if u.apiKey == "" {
		return nil, ErrSearchUnavailable
	}
	if limit <= 0 {
		limit = 5
	}

	var result fdcSearchResponse
	resp, err := u.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"api_key":  u.apiKey,
			"query":    query,
			"pageSize": strconv.Itoa(limit),
		}).
		SetResult(&result).
		Get("/foods/search")
	if err != nil {
		log.Err(err).Str("query", query).Msg("food search request failed")
		return nil, fmt.Errorf("food search request: %w", err)
	}
	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Str("query", query).Msg("food search upstream error")
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamFailed, resp.StatusCode())
	}

	foods := make([]models.Food, 0, len(result.Foods))
	for _, f := range result.Foods {
		food := models.Food{
			FdcID:       f.FdcID,
			Description: f.Description,
			DataType:    f.DataType,
		}
		for _, n := range f.FoodNutrients {
			if _, ok := nutrientsOfInterest[n.NutrientName]; !ok {
				continue
			}
			food.Nutrients = append(food.Nutrients, models.FoodNutrient{
				Name:   n.NutrientName,
				Amount: n.Value,
				Unit:   n.UnitName,
			})
		}
		foods = append(foods, food)
	}

	return foods, nil
}
