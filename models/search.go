package models

// Food is one nutrition search hit from the FoodData Central API, reduced to
// the fields the frontend needs to log a meal.
type Food struct {
	FdcID       int64          `json:"fdc_id"`
	Description string         `json:"description"`
	DataType    string         `json:"data_type,omitempty"`
	Nutrients   []FoodNutrient `json:"nutrients,omitempty"`
}

// FoodNutrient is a single nutrient amount attached to a search hit.
type FoodNutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// Video is one workout-video search hit from the YouTube Data API.
// WatchURL is assembled server-side from the video ID so the frontend can
// embed or link the video directly.
type Video struct {
	VideoID      string `json:"video_id"`
	Title        string `json:"title"`
	ChannelTitle string `json:"channel_title"`
	PublishedAt  string `json:"published_at"`
	WatchURL     string `json:"watch_url"`
}
