// File: services/chat/interface.go
package chat

import (
	"context"
	"time"

	"innocurve/database/repository/knowledge"
	"innocurve/models"

	"github.com/go-redis/redis/v8"
)

// ChatService resolves a visitor message to a reply.
type ChatService interface {
	HandleMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
}

// Generator produces a free-form completion from a system instruction and a
// user message.
type Generator interface {
	Generate(ctx context.Context, system, message string) (string, error)
}

// DefaultChatService answers from the knowledge store when it can and falls
// back to the generative model otherwise.
type DefaultChatService struct {
	Repo      knowledgeRepo.KnowledgeRepository
	Generator Generator

	// Cache is optional; a nil client disables answer caching.
	Cache    *redis.Client
	CacheTTL time.Duration

	// Now is the clock used for the persona prompt; defaults to time.Now.
	Now func() time.Time
}

// NewDefaultChatService wires the lookup, fallback, and cache collaborators.
func NewDefaultChatService(repo knowledgeRepo.KnowledgeRepository, gen Generator, cache *redis.Client) *DefaultChatService {
	return &DefaultChatService{
		Repo:      repo,
		Generator: gen,
		Cache:     cache,
		CacheTTL:  10 * time.Minute,
		Now:       time.Now,
	}
}
