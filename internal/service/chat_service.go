package service

import (
	"context"
	"time"

	"saicollege/internal/chatbot"
	"saicollege/internal/metrics"
	"saicollege/internal/repository"

	"go.uber.org/zap"
)

// chat_logs.csv keeps only the head of each reply
const loggedReplyLength = 100

type ChatService struct {
	resolver  *chatbot.Resolver
	knowledge *KnowledgeService
	chatLog   *repository.ChatLogRepository
	metrics   *metrics.Chat
	now       func() time.Time
	logger    *zap.Logger
}

func NewChatService(
	resolver *chatbot.Resolver,
	knowledge *KnowledgeService,
	chatLog *repository.ChatLogRepository,
	m *metrics.Chat,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		resolver:  resolver,
		knowledge: knowledge,
		chatLog:   chatLog,
		metrics:   m,
		now:       time.Now,
		logger:    logger,
	}
}

// Ask answers one chat message against the current knowledge base snapshot.
// Logging failures are recorded but never change the reply.
func (s *ChatService) Ask(ctx context.Context, message string, lang chatbot.Language, userAgent string) chatbot.Resolution {
	res := s.resolver.Resolve(ctx, message, lang, s.knowledge.Snapshot())

	if s.metrics != nil {
		s.metrics.ObserveReply(res.Rule, res.Unresolved)
	}

	if s.chatLog != nil {
		if userAgent == "" {
			userAgent = "Unknown"
		}
		err := s.chatLog.Append(ctx, s.now(), sanitizeUTF8(message), truncateRunes(res.Text, loggedReplyLength), userAgent)
		if err != nil {
			s.logger.Warn("Failed to append chat log", zap.Error(err))
			if s.metrics != nil {
				s.metrics.ObserveLogError()
			}
		}
	}

	s.logger.Debug("Chat message answered",
		zap.String("rule", res.Rule),
		zap.Bool("unresolved", res.Unresolved),
	)
	return res
}
