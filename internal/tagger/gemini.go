package tagger

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Gemini is a provider for Google Gemini.
type Gemini struct{}

// NewGemini returns a new Gemini provider.
func NewGemini() *Gemini {
	return &Gemini{}
}

// DescribeImage sends the image and prompt to Gemini and returns the raw
// model response.
func (g *Gemini) DescribeImage(ctx context.Context, config Config) (string, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	imageData, err := os.ReadFile(config.ImagePath)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create new gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(config.Model)
	model.SetTemperature(float32(config.Temperature))

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(config.ImagePath)), ".")
	if format == "jpg" {
		format = "jpeg"
	}

	resp, err := model.GenerateContent(ctx, genai.ImageData(format, imageData), genai.Text(config.Prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates returned from Gemini")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("empty content returned from Gemini")
	}

	if txt, ok := candidate.Content.Parts[0].(genai.Text); ok {
		return string(txt), nil
	}

	return "", fmt.Errorf("unexpected response format from Gemini")
}
