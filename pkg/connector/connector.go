package connector

import (
	"context"
	"log"
	"strings"

	"github.com/PromptMixerDev/prompt-mixer-gemini-connector/pkg/models"
)

// apiKeySetting is the settings key carrying the model credential.
const apiKeySetting = "API_KEY"

// ClientFactory builds the model client used for one batch run.
type ClientFactory func(ctx context.Context, model, apiKey string, properties map[string]any) (models.Client, error)

// Connector turns batches of prompts into model completions, attaching any
// files the prompt text references.
type Connector struct {
	factory ClientFactory
	loader  *Loader
}

// Options configure a new Connector. Zero values select the Gemini client and
// a default loader.
type Options struct {
	ClientFactory ClientFactory
	Loader        *Loader
}

// New creates a Connector with the provided options.
func New(opts Options) *Connector {
	factory := opts.ClientFactory
	if factory == nil {
		factory = func(ctx context.Context, model, apiKey string, properties map[string]any) (models.Client, error) {
			return models.NewGeminiClient(ctx, model, apiKey, properties)
		}
	}
	loader := opts.Loader
	if loader == nil {
		loader = NewLoader()
	}
	return &Connector{factory: factory, loader: loader}
}

// Run executes one batch. Prompts are processed strictly in order, one at a
// time; a failed model call turns into an ErrorCompletion for that prompt
// only, so Completions always has one element per prompt. A failure before
// the loop, such as client construction, collapses the whole batch into a
// single ErrorCompletion.
func (c *Connector) Run(ctx context.Context, model string, prompts []string, properties map[string]any, settings map[string]string) Response {
	client, err := c.factory(ctx, model, strings.TrimSpace(settings[apiKeySetting]), properties)
	if err != nil {
		log.Printf("error: connector setup failed: %v", err)
		return Response{
			Completions: []Completion{ErrorCompletion{Error: err.Error()}},
			ModelType:   model,
		}
	}
	defer func() {
		if cerr := client.Close(); cerr != nil {
			log.Printf("warn: closing model client: %v", cerr)
		}
	}()

	completions := make([]Completion, 0, len(prompts))
	for _, prompt := range prompts {
		parts := c.loader.BuildMessageParts(ctx, prompt)
		content, err := client.Send(ctx, parts)
		if err != nil {
			completions = append(completions, ErrorCompletion{Error: err.Error()})
			continue
		}
		tokens, err := client.CountTokens(ctx, parts)
		if err != nil {
			completions = append(completions, ErrorCompletion{Error: err.Error()})
			continue
		}
		completions = append(completions, ModelCompletion{Content: content, TokenUsage: tokens})
	}
	return Response{Completions: completions, ModelType: model}
}
