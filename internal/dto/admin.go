package dto

import "saicollege/internal/models"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int64  `json:"expires_in"`
	Redirect  string `json:"redirect"`
}

type ResetPasswordRequest struct {
	SecretCode  string `json:"secret_code"`
	NewPassword string `json:"new_password"`
}

type SessionResponse struct {
	LoggedIn bool `json:"loggedin"`
}

type CollegeDataResponse struct {
	Success bool                  `json:"success"`
	Data    *models.KnowledgeBase `json:"data"`
}

// UpdateStatusRequest targets one feedback entry or unresolved query by
// its position in the admin list. Index may be sent as a number or string.
type UpdateStatusRequest struct {
	Type   string `json:"type" enums:"feedback,query"`
	Status string `json:"status"`
	Index  any    `json:"index" swaggertype:"integer"`
}

type FilenameRequest struct {
	Filename string `json:"filename"`
}

type FeedbackListResponse struct {
	Feedback []models.Feedback `json:"feedback"`
}

type QueryListResponse struct {
	Queries []models.UnresolvedQuery `json:"queries"`
}

type SyllabusListResponse struct {
	Files []models.SyllabusFile `json:"files"`
}
