package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiGenerator implements TextGenerator using Google's Gemini API.
type GeminiGenerator struct {
	client  *genai.Client
	modelID string
}

// NewGeminiGenerator creates a Gemini-backed generator.
func NewGeminiGenerator(ctx context.Context, apiKey, modelID string) (*GeminiGenerator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("chat: gemini api key is required")
	}
	if strings.TrimSpace(modelID) == "" {
		modelID = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("chat: failed to create gemini client: %w", err)
	}

	return &GeminiGenerator{client: client, modelID: modelID}, nil
}

// Generate sends the persona instruction, recent history, and the new
// message to Gemini and returns the completion text.
func (g *GeminiGenerator) Generate(ctx context.Context, system string, history []Message, userMessage string) (string, error) {
	model := g.client.GenerativeModel(g.modelID)
	model.SetTemperature(0.7)
	model.SetMaxOutputTokens(150)

	if strings.TrimSpace(system) != "" {
		model.SystemInstruction = genai.NewUserContent(genai.Text(system))
	}

	cs := model.StartChat()
	for _, msg := range history {
		content := strings.TrimSpace(msg.Text)
		if content == "" {
			continue
		}
		role := "user"
		if msg.IsBot {
			role = "model"
		}
		cs.History = append(cs.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(content)},
		})
	}

	resp, err := cs.SendMessage(ctx, genai.Text(userMessage))
	if err != nil {
		return "", fmt.Errorf("chat: gemini completion failed: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", errors.New("chat: gemini returned no candidates")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("chat: gemini returned empty content")
	}

	var out strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out.WriteString(string(text))
		}
	}
	return strings.TrimSpace(out.String()), nil
}

// Close releases the underlying client.
func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}
