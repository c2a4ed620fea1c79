package models

import "context"

// MessagePart is one element of an outgoing message: plain prompt text or an
// inline attachment. Exactly one of the two fields is set.
type MessagePart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

// InlineData carries base64-encoded file bytes together with their media type.
type InlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

// Client is a generative-model session: it sends message parts and counts the
// tokens they would consume.
type Client interface {
	Send(ctx context.Context, parts []MessagePart) (string, error)
	CountTokens(ctx context.Context, parts []MessagePart) (int32, error)
	Close() error
}
