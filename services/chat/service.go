// File: services/chat/service.go
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"innocurve/models"
	"innocurve/utils"

	"go.uber.org/zap"
)

const answerCachePrefix = "chat:answer:"

// HandleMessage resolves a chat message: reservation intent gate first, then
// the knowledge lookup, then the generative fallback. The message must be
// non-empty after trimming; the handler validates that before calling in.
func (s *DefaultChatService) HandleMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	lang := req.Language
	if !models.IsSupportedLanguage(lang) {
		lang = models.DefaultLanguage
	}
	message := strings.TrimSpace(req.Message)
	locale := LocaleFor(lang)

	// Reservation intent gate. Stateless and single-turn: the affirmative
	// token always opens the form, whatever came before.
	if message == locale.Affirmative {
		return &models.ChatResponse{
			Response:            locale.ReservationFormHint,
			ShowReservationForm: true,
		}, nil
	}
	for _, keyword := range locale.ReservationKeywords {
		if strings.Contains(message, keyword) {
			return &models.ChatResponse{
				Response:            locale.ConfirmReservation,
				ShowReservationForm: false,
			}, nil
		}
	}

	if answer, ok := s.cachedAnswer(ctx, lang, message); ok {
		return &models.ChatResponse{Response: answer}, nil
	}

	answer, err := s.lookupAnswer(ctx, message, lang)
	if err == nil {
		s.cacheAnswer(ctx, lang, message, answer)
		return &models.ChatResponse{Response: answer}, nil
	}
	if !errors.Is(err, ErrNoMatch) {
		return nil, err
	}

	return s.generateAnswer(ctx, message, lang)
}

// generateAnswer runs the generative fallback with the persona prompt. The
// knowledge dump is grounding context; failing to load it only degrades the
// prompt.
func (s *DefaultChatService) generateAnswer(ctx context.Context, message, lang string) (*models.ChatResponse, error) {
	logger := utils.GetLogger()

	entries, err := s.Repo.GetAll(ctx)
	if err != nil {
		logger.Warn("failed to load knowledge dump for prompt", zap.Error(err))
		entries = nil
	}
	system := buildSystemPrompt(lang, s.Now(), entries)

	completion, err := s.Generator.Generate(ctx, system, message)
	if err != nil {
		logger.Error("generative fallback failed",
			zap.String("language", lang), zap.Error(err))
		return nil, err
	}
	if strings.TrimSpace(completion) == "" {
		completion = LocaleFor(lang).Apology
	}
	return &models.ChatResponse{Response: completion}, nil
}

// cachedAnswer returns a previously resolved knowledge answer. The cache is
// best-effort; any failure is treated as a miss.
func (s *DefaultChatService) cachedAnswer(ctx context.Context, lang, message string) (string, bool) {
	if s.Cache == nil {
		return "", false
	}
	answer, err := s.Cache.Get(ctx, answerCacheKey(lang, message)).Result()
	if err != nil || answer == "" {
		return "", false
	}
	return answer, true
}

func (s *DefaultChatService) cacheAnswer(ctx context.Context, lang, message, answer string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Set(ctx, answerCacheKey(lang, message), answer, s.CacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache chat answer", zap.Error(err))
	}
}

func answerCacheKey(lang, message string) string {
	return fmt.Sprintf("%s%s:%s", answerCachePrefix, lang, message)
}
