// File: services/chat/gemini.go
package chat

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const chatModelName = "models/gemini-1.5-pro"

// Sampling knobs for the fallback completion.
const (
	chatTemperature     = 0.7
	chatTopP            = 0.9
	chatMaxOutputTokens = 1000
)

// GeminiClient implements Generator on top of the Gemini API.
type GeminiClient struct {
	client *genai.Client
}

func NewGeminiClient(apiKey string) *GeminiClient {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}
	return &GeminiClient{client: client}
}

func (g *GeminiClient) Close() error {
	return g.client.Close()
}

// Generate requests a single completion. An empty string with a nil error
// means the model produced no usable text; the caller substitutes the fixed
// apology.
func (g *GeminiClient) Generate(ctx context.Context, system, message string) (string, error) {
	model := g.client.GenerativeModel(chatModelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(system)},
	}

	temp := float32(chatTemperature)
	topP := float32(chatTopP)
	maxTokens := int32(chatMaxOutputTokens)
	model.GenerationConfig = genai.GenerationConfig{
		Temperature:     &temp,
		TopP:            &topP,
		MaxOutputTokens: &maxTokens,
	}

	resp, err := model.GenerateContent(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}
