package services

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

type GeminiGenerator struct {
	model       string
	temperature float32
	apiKeyEnv   string
}

func NewGeminiGenerator(model string, temperature float32, apiKeyEnv string) *GeminiGenerator {
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiGenerator{model: model, temperature: temperature, apiKeyEnv: apiKeyEnv}
}

func (g *GeminiGenerator) Name() string { return "Gemini" }

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	apiKey, err := apiKeyFromEnv(g.apiKeyEnv)
	if err != nil {
		return "", err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("failed to initialize Gemini client: %w", err)
	}

	resp, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr(g.temperature),
	})
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", wrapProviderStatus(apiErr.Code, err)
		}
		return "", err
	}
	return resp.Text(), nil
}
