package chatbot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"saicollege/internal/models"

	"go.uber.org/zap"
)

// UnresolvedRecorder stores queries no rule could answer.
type UnresolvedRecorder interface {
	Record(ctx context.Context, at time.Time, query string) error
}

// Resolution is the outcome of resolving one chat message.
type Resolution struct {
	Text       string
	Rule       string
	Suggestion string
	Unresolved bool
}

const (
	RuleFallback = "fallback"
	RuleError    = "error"
)

type Resolver struct {
	corrector *Corrector
	rules     []Rule
	recorder  UnresolvedRecorder
	logger    *zap.Logger
	now       func() time.Time
}

type Option func(*Resolver)

// WithRules replaces the default rule cascade.
func WithRules(rules []Rule) Option {
	return func(r *Resolver) { r.rules = rules }
}

func WithClock(now func() time.Time) Option {
	return func(r *Resolver) { r.now = now }
}

func NewResolver(recorder UnresolvedRecorder, logger *zap.Logger, opts ...Option) *Resolver {
	r := &Resolver{
		corrector: NewCorrector(Vocabulary),
		rules:     DefaultRules(),
		recorder:  recorder,
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reply resolves raw and returns only the reply text.
func (r *Resolver) Reply(ctx context.Context, raw string, lang Language, kb *models.KnowledgeBase) string {
	return r.Resolve(ctx, raw, lang, kb).Text
}

// Resolve maps a free-text message to a reply. It never fails: a panic in
// any rule is converted into the generic apology.
func (r *Resolver) Resolve(ctx context.Context, raw string, lang Language, kb *models.KnowledgeBase) (res Resolution) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("Chat resolution failed",
				zap.String("query", raw),
				zap.String("panic", fmt.Sprint(p)),
			)
			res = Resolution{Text: ReplyInternalError, Rule: RuleError}
		}
	}()

	raw = strings.ToValidUTF8(raw, "")
	if kb == nil {
		kb = &models.KnowledgeBase{}
	}

	text := strings.ToLower(strings.TrimSpace(raw))
	corrected, suggestion := r.corrector.CorrectKeeping(text, courseWords(kb))
	if suggestion != "" {
		text = corrected
	}

	q := Normalize(text)
	q.Suggestion = suggestion
	q.Lang = lang
	if q.Lang == "" {
		q.Lang = DefaultLanguage
	}

	for _, rule := range r.rules {
		if !rule.Match(q, kb) {
			continue
		}
		reply, ok := rule.Respond(q, kb)
		if !ok {
			continue
		}
		return Resolution{Text: reply, Rule: rule.Name, Suggestion: suggestion}
	}

	r.record(ctx, raw)

	res = Resolution{Rule: RuleFallback, Suggestion: suggestion, Unresolved: true}
	if suggestion != "" {
		res.Text = replySuggestion(suggestion)
	} else {
		res.Text = ReplyHelp
	}
	return res
}

func (r *Resolver) record(ctx context.Context, raw string) {
	if r.recorder == nil {
		return
	}
	if err := r.recorder.Record(ctx, r.now(), raw); err != nil {
		r.logger.Warn("Failed to record unresolved query", zap.String("query", raw), zap.Error(err))
	}
}
