package models

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ---------------------------- Google Gemini ----------------------------------

// GeminiClient implements Client on top of the official Gemini SDK.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClient opens a Gemini session for the given model. An empty apiKey
// falls back to GOOGLE_API_KEY / GEMINI_API_KEY. Non-empty properties are
// applied as generation config before the first call.
func NewGeminiClient(ctx context.Context, model, apiKey string, properties map[string]any) (*GeminiClient, error) {
	apiKey = resolveAPIKey(apiKey)
	if apiKey == "" {
		return nil, errors.New("missing GOOGLE_API_KEY or GEMINI_API_KEY")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini init: %w", err)
	}
	m := client.GenerativeModel(model)
	if len(properties) > 0 {
		applyGenerationConfig(&m.GenerationConfig, properties)
	}
	return &GeminiClient{client: client, model: m}, nil
}

func resolveAPIKey(apiKey string) string {
	if apiKey != "" {
		return apiKey
	}
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("GEMINI_API_KEY")
}

// Send submits the message parts and returns the concatenated text of the
// first candidate.
func (g *GeminiClient) Send(ctx context.Context, parts []MessagePart) (string, error) {
	converted, err := toGenaiParts(parts)
	if err != nil {
		return "", err
	}
	resp, err := g.model.GenerateContent(ctx, converted...)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("gemini: empty response")
	}
	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}
	return text.String(), nil
}

// CountTokens reports the token total the message parts would consume.
func (g *GeminiClient) CountTokens(ctx context.Context, parts []MessagePart) (int32, error) {
	converted, err := toGenaiParts(parts)
	if err != nil {
		return 0, err
	}
	resp, err := g.model.CountTokens(ctx, converted...)
	if err != nil {
		return 0, fmt.Errorf("gemini count tokens: %w", err)
	}
	return resp.TotalTokens, nil
}

// Close releases the underlying connection.
func (g *GeminiClient) Close() error {
	return g.client.Close()
}

// toGenaiParts maps connector message parts onto SDK parts. Inline data is
// carried base64-encoded up to this boundary and decoded here.
func toGenaiParts(parts []MessagePart) ([]genai.Part, error) {
	out := make([]genai.Part, 0, len(parts))
	for _, p := range parts {
		if p.InlineData != nil {
			data, err := base64.StdEncoding.DecodeString(p.InlineData.Data)
			if err != nil {
				return nil, fmt.Errorf("decode inline data: %w", err)
			}
			out = append(out, genai.Blob{MIMEType: p.InlineData.MimeType, Data: data})
			continue
		}
		out = append(out, genai.Text(p.Text))
	}
	return out, nil
}

// applyGenerationConfig maps the open properties map onto the SDK generation
// config. Unknown keys and values of the wrong shape are ignored.
func applyGenerationConfig(cfg *genai.GenerationConfig, properties map[string]any) {
	for key, value := range properties {
		switch key {
		case "temperature":
			if v, ok := asFloat32(value); ok {
				cfg.SetTemperature(v)
			}
		case "topP":
			if v, ok := asFloat32(value); ok {
				cfg.SetTopP(v)
			}
		case "topK":
			if v, ok := asInt32(value); ok {
				cfg.SetTopK(v)
			}
		case "maxOutputTokens":
			if v, ok := asInt32(value); ok {
				cfg.SetMaxOutputTokens(v)
			}
		case "candidateCount":
			if v, ok := asInt32(value); ok {
				cfg.SetCandidateCount(v)
			}
		case "stopSequences":
			if v, ok := asStrings(value); ok {
				cfg.StopSequences = v
			}
		}
	}
}

func asFloat32(v any) (float32, bool) {
	switch n := v.(type) {
	case float32:
		return n, true
	case float64:
		return float32(n), true
	case int:
		return float32(n), true
	case int64:
		return float32(n), true
	}
	return 0, false
}

func asInt32(v any) (int32, bool) {
	switch n := v.(type) {
	case int:
		return int32(n), true
	case int32:
		return n, true
	case int64:
		return int32(n), true
	case float64:
		return int32(n), true
	}
	return 0, false
}

func asStrings(v any) ([]string, bool) {
	switch s := v.(type) {
	case []string:
		return s, true
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			str, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, str)
		}
		return out, true
	}
	return nil, false
}
