package response_models

type PhotoAnalysis struct {
	City        string `json:"city"`
	Landmark    string `json:"landmark"`
	Description string `json:"description"`
}

type LandmarkImageResponse struct {
	City     string `json:"city"`
	Landmark string `json:"landmark"`
	ImageURL string `json:"image_url"`
	// Curated is false when the URL came from the city-image fallback path
	// instead of the curated store.
	Curated bool `json:"curated"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
