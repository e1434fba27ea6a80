package repository

import (
	"context"
	"time"

	"saicollege/internal/models"
)

// ChatLogRepository appends every answered chat message to chat_logs.csv.
type ChatLogRepository struct {
	log *CSVLog
}

func NewChatLogRepository(path string) *ChatLogRepository {
	return &ChatLogRepository{
		log: NewCSVLog(path, "timestamp", "user_message", "bot_response", "user_agent"),
	}
}

func (r *ChatLogRepository) Append(ctx context.Context, at time.Time, message, response, userAgent string) error {
	return r.log.Append([]string{at.Format(models.TimestampLayout), message, response, userAgent})
}

// ActivityLogRepository records admin actions such as login attempts.
type ActivityLogRepository struct {
	log *CSVLog
}

func NewActivityLogRepository(path string) *ActivityLogRepository {
	return &ActivityLogRepository{
		log: NewCSVLog(path, "timestamp", "ip_address", "action", "status"),
	}
}

func (r *ActivityLogRepository) Append(ctx context.Context, at time.Time, ip, action, status string) error {
	return r.log.Append([]string{at.Format(models.TimestampLayout), ip, action, status})
}
