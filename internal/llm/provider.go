package llm

import "context"

// Provider is the narrow seam between grading logic and a hosted model.
// Generate sends one instruction plus conversation and returns the model's
// reply text. Nothing is retried or cached at this layer.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system-level instruction.
	System string

	// Messages is the conversation. Grading is single-turn, so this holds
	// exactly one user message in practice.
	Messages []Message

	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0. Zero leaves the
	// provider default in place.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Response holds the model's output.
type Response struct {
	// Text is the raw reply, exactly as the model produced it.
	Text string

	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// UserTurn is a convenience for the common single user message request.
func UserTurn(content string) []Message {
	return []Message{{Role: RoleUser, Content: content}}
}
