package services

import (
	"context"
	"errors"
	"math"

	"github.com/sashabaranov/go-openai"
)

type OpenAIGenerator struct {
	model       string
	temperature float32
	apiKeyEnv   string
	baseURL     string
}

func NewOpenAIGenerator(model string, temperature float32, apiKeyEnv, baseURL string) *OpenAIGenerator {
	return &OpenAIGenerator{
		model:       model,
		temperature: temperature,
		apiKeyEnv:   apiKeyEnv,
		baseURL:     baseURL,
	}
}

func (g *OpenAIGenerator) Name() string { return "OpenAI" }

func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	apiKey, err := apiKeyFromEnv(g.apiKeyEnv)
	if err != nil {
		return "", err
	}

	clientConfig := openai.DefaultConfig(apiKey)
	if g.baseURL != "" {
		clientConfig.BaseURL = g.baseURL
	}
	client := openai.NewClientWithConfig(clientConfig)

	// A zero temperature is omitted from the request body; the smallest
	// positive value keeps it on the wire.
	temperature := g.temperature
	if temperature == 0 {
		temperature = math.SmallestNonzeroFloat32
	}

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", classifyOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no completion returned")
	}
	return resp.Choices[0].Message.Content, nil
}

func classifyOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return wrapProviderStatus(apiErr.HTTPStatusCode, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return wrapProviderStatus(reqErr.HTTPStatusCode, err)
	}
	return err
}
