package domain

import "context"

// ChatMessage is one turn of a completion conversation. ImageDataURL, when
// set on a user message, attaches an inline base64 image to the turn.
type ChatMessage struct {
	Role         string
	Text         string
	ImageDataURL string
}

// Completer calls an AI completion service and returns the model's reply for
// the given conversation.
type Completer interface {
	Complete(ctx context.Context, messages []ChatMessage) (string, error)
}
