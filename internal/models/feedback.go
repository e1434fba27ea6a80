package models

type Feedback struct {
	ID      int64  `json:"id"`
	Date    string `json:"date"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Rating  any    `json:"rating"`
	Status  string `json:"status"`
}

const FeedbackStatusNew = "new"
