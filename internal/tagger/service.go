package tagger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Attributes are the presentation attributes the tagger derives for one
// image.
type Attributes struct {
	ItemType string `json:"item_type"`
	Color    string `json:"color"`
	Style    string `json:"style"`
	Pattern  string `json:"pattern"`
}

// Service tags clothing images with presentation attributes.
type Service struct{}

// NewService creates a new tagging service.
func NewService() *Service {
	return &Service{}
}

// TagImage derives attributes for one image with the given provider. An
// empty provider or model falls back to environment defaults.
func (s *Service) TagImage(ctx context.Context, imagePath, provider, model string) (Attributes, error) {
	if provider == "" {
		provider = os.Getenv("TAGGER_PROVIDER")
		if provider == "" {
			provider = "ollama"
		}
	}
	if model == "" {
		model = s.defaultModel(provider)
	}

	p, err := s.provider(provider)
	if err != nil {
		return Attributes{}, err
	}

	response, err := p.DescribeImage(ctx, Config{
		Model:       model,
		Temperature: 0.1,
		Prompt:      buildTagPrompt(),
		ImagePath:   imagePath,
	})
	if err != nil {
		return Attributes{}, fmt.Errorf("failed to describe image: %w", err)
	}

	attrs, err := parseAttributes(response)
	if err != nil {
		return Attributes{}, fmt.Errorf("failed to parse tagger response: %w", err)
	}

	slog.Debug("Tagged image", "image", imagePath, "provider", provider, "model", model,
		"item_type", attrs.ItemType, "color", attrs.Color)

	return attrs, nil
}

func (s *Service) provider(name string) (Provider, error) {
	switch name {
	case "gemini":
		return NewGemini(), nil
	case "openai":
		return NewOpenAI(), nil
	case "ollama":
		return NewOllama(), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", name)
	}
}

func (s *Service) defaultModel(provider string) string {
	switch provider {
	case "gemini":
		if model := os.Getenv("GEMINI_MODEL"); model != "" {
			return model
		}
		return "gemini-2.0-flash"
	case "openai":
		if model := os.Getenv("OPENAI_MODEL"); model != "" {
			return model
		}
		return "gpt-4o"
	case "ollama":
		if model := os.Getenv("OLLAMA_MODEL"); model != "" {
			return model
		}
		return "llava:13b"
	default:
		return ""
	}
}

func buildTagPrompt() string {
	return `You are a fashion stylist describing a single clothing item in a photo.

Classify the item and respond with ONLY a JSON object in this exact format:

{
  "item_type": "tops | bottoms | dresses | outerwear | shoes | accessories",
  "color": "the single dominant color, lowercase (red, green, blue, orange, yellow, purple, pink, black, white, gray)",
  "style": "one word, e.g. casual, formal, sporty, vintage",
  "pattern": "one word, e.g. solid, striped, floral, plaid"
}

Pick the closest match for each field. Do not add any other text.`
}

// parseAttributes extracts attributes from the model response. The expected
// format is a JSON object, optionally wrapped in markdown code fences; as a
// fallback it accepts a pipe-separated "item_type|color|style|pattern" line.
func parseAttributes(response string) (Attributes, error) {
	cleaned := strings.TrimSpace(response)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var attrs Attributes
	if err := json.Unmarshal([]byte(cleaned), &attrs); err == nil {
		return normalize(attrs), nil
	}

	parts := strings.Split(cleaned, "|")
	if len(parts) == 4 {
		return normalize(Attributes{
			ItemType: parts[0],
			Color:    parts[1],
			Style:    parts[2],
			Pattern:  parts[3],
		}), nil
	}

	return Attributes{}, fmt.Errorf("unrecognized response format: %q", response)
}

func normalize(attrs Attributes) Attributes {
	return Attributes{
		ItemType: strings.ToLower(strings.TrimSpace(attrs.ItemType)),
		Color:    strings.ToLower(strings.TrimSpace(attrs.Color)),
		Style:    strings.ToLower(strings.TrimSpace(attrs.Style)),
		Pattern:  strings.ToLower(strings.TrimSpace(attrs.Pattern)),
	}
}
