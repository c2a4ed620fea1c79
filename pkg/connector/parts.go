package connector

import (
	"context"

	"github.com/PromptMixerDev/prompt-mixer-gemini-connector/pkg/models"
)

// BuildMessageParts assembles the outgoing message for one prompt: the prompt
// text always comes first, followed by one inline attachment per resolvable
// reference in first-encounter order. References that fail to load are
// dropped without trace.
func (l *Loader) BuildMessageParts(ctx context.Context, prompt string) []models.MessagePart {
	parts := []models.MessagePart{{Text: prompt}}
	refs := extractReferences(prompt)
	if len(refs) == 0 {
		return parts
	}
	for _, ref := range refs {
		if part := l.Load(ctx, ref); part != nil {
			parts = append(parts, *part)
		}
	}
	return parts
}
