package dto

type ChatRequest struct {
	Message string `json:"message" example:"bca ki fees kitni hai"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

type SetLanguageRequest struct {
	Language string `json:"language" example:"English"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type FeedbackRequest struct {
	Type    string `json:"type" example:"suggestion"`
	Message string `json:"message" example:"Please add more buses"`
	Rating  any    `json:"rating" swaggertype:"integer" example:"4"`
}
