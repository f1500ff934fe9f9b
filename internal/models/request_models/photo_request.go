package request_models

type CreatePhotoRequest struct {
	City        string `json:"city" binding:"required"`
	Landmark    string `json:"landmark" binding:"required"`
	ImageURL    string `json:"image_url" binding:"required"`
	Source      string `json:"source"`
	Description string `json:"description"`
}

type AnalyzePhotoRequest struct {
	ImageURL string `json:"image_url" binding:"required"`
}

type CuratorLoginRequest struct {
	Password string `json:"password" binding:"required"`
}
