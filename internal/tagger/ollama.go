package tagger

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

// Ollama is a provider for locally-hosted vision models via the Ollama API.
type Ollama struct{}

// NewOllama returns a new Ollama provider.
func NewOllama() *Ollama {
	return &Ollama{}
}

// DescribeImage sends the image and prompt to a local Ollama instance and
// returns the raw model response.
func (o *Ollama) DescribeImage(ctx context.Context, config Config) (string, error) {
	host := os.Getenv("OLLAMA_URL")
	if host == "" {
		host = os.Getenv("OLLAMA_HOST")
	}
	if host == "" {
		host = "http://localhost:11434"
	}

	imageData, err := os.ReadFile(config.ImagePath)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	base64Image := base64.StdEncoding.EncodeToString(imageData)

	requestBody, err := json.Marshal(map[string]interface{}{
		"model":  config.Model,
		"prompt": config.Prompt,
		"images": []string{base64Image},
		"stream": false,
		"options": map[string]interface{}{
			"temperature": config.Temperature,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", host+"/api/generate", bytes.NewBuffer(requestBody))
	if err != nil {
		return "", fmt.Errorf("failed to create new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("received non-200 status code: %d - %s", resp.StatusCode, string(body))
	}

	var response struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response body: %w", err)
	}

	return response.Response, nil
}
