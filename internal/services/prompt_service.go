package services

import (
	"context"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"tripforge/internal/config"
	"tripforge/pkg/utils"
)

// ParsedTrip is what free-text extraction yields.
type ParsedTrip struct {
	Destination string   `json:"destination"`
	Budget      float64  `json:"budget"`
	Preferences []string `json:"preferences"`
}

type PromptServiceInterface interface {
	ParseTripRequest(ctx context.Context, text string) (ParsedTrip, error)
	HandleChat(message string) string
}

type chatCompletionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type PromptService struct {
	client chatCompletionClient
	logger *zap.Logger
}

func NewPromptService(cfg *config.Config, logger *zap.Logger) PromptServiceInterface {
	var client chatCompletionClient
	if cfg.Keys.OpenAI != "" {
		client = openai.NewClient(cfg.Keys.OpenAI)
	}
	return &PromptService{client: client, logger: logger}
}

const extractionPrompt = `Extract the travel destination, the numeric budget in dollars, and any
preferences (cheap, luxury, food, museums) from the user request below.
Respond with JSON only, shaped exactly like:
{"destination": "Tampa", "budget": 500, "preferences": ["museums"]}
Use "" and 0 for anything missing.

Request: `

func (p *PromptService) ParseTripRequest(ctx context.Context, text string) (ParsedTrip, error) {
	if p.client != nil {
		parsed, err := p.extractWithAI(ctx, text)
		if err == nil && parsed.Destination != "" && parsed.Budget > 0 {
			return parsed, nil
		}
		if err != nil {
			p.logger.Warn("AI extraction failed, falling back to patterns", zap.Error(err))
		}
	}

	parsed := extractWithPatterns(text)
	if parsed.Destination == "" || parsed.Budget <= 0 {
		return ParsedTrip{}, utils.ErrPromptUnparseable
	}
	return parsed, nil
}

func (p *PromptService) extractWithAI(ctx context.Context, text string) (ParsedTrip, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: extractionPrompt + text},
		},
		Temperature: 0,
	})
	if err != nil {
		return ParsedTrip{}, err
	}
	if len(resp.Choices) == 0 {
		return ParsedTrip{}, utils.ErrPromptUnparseable
	}

	raw := strings.TrimSpace(resp.Choices[0].Message.Content)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var parsed ParsedTrip
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &parsed); err != nil {
		return ParsedTrip{}, err
	}
	return parsed, nil
}

var (
	destinationPattern = regexp.MustCompile(`\b(?:to|in|visit|around)\s+([A-Z][A-Za-z]+(?:\s+[A-Z][A-Za-z]+)*)`)
	budgetPattern      = regexp.MustCompile(`\$\s*(\d+(?:\.\d+)?)`)
	budgetWordPattern  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:dollars|usd|bucks)`)
)

var preferenceKeywords = []string{"cheap", "luxury", "food", "museums"}

func extractWithPatterns(text string) ParsedTrip {
	var parsed ParsedTrip

	if m := destinationPattern.FindStringSubmatch(text); len(m) > 1 {
		parsed.Destination = strings.TrimSpace(m[1])
	}

	if m := budgetPattern.FindStringSubmatch(text); len(m) > 1 {
		parsed.Budget, _ = strconv.ParseFloat(m[1], 64)
	} else if m := budgetWordPattern.FindStringSubmatch(strings.ToLower(text)); len(m) > 1 {
		parsed.Budget, _ = strconv.ParseFloat(m[1], 64)
	}

	lower := strings.ToLower(text)
	for _, kw := range preferenceKeywords {
		if strings.Contains(lower, kw) {
			parsed.Preferences = append(parsed.Preferences, kw)
		}
	}
	return parsed
}

func (p *PromptService) HandleChat(message string) string {
	if strings.Contains(strings.ToLower(message), "add museum") {
		return "Adding a museum to your itinerary. Please specify the day."
	}
	return "I can help with your itinerary! What would you like to do?"
}
