package llmprovider

import (
	"context"
	"strings"

	"snowboarding-assistant/pkg/gemini"
	"snowboarding-assistant/pkg/groq"
)

// GroqAdapter adapts pkg/groq to llmprovider.Provider interface
type GroqAdapter struct {
	client groq.IGroq
	name   string
}

// NewGroqAdapter creates a new Groq adapter. name labels the provider in logs,
// since any OpenAI-compatible endpoint can sit behind the client.
func NewGroqAdapter(client groq.IGroq, name string) *GroqAdapter {
	if name == "" {
		name = "groq"
	}
	return &GroqAdapter{client: client, name: name}
}

// GenerateContent implements Provider interface
func (a *GroqAdapter) GenerateContent(ctx context.Context, req *GenerateRequest) (*Response, error) {
	msgs := make([]groq.Message, len(req.Messages))
	for i, m := range req.Messages {
		msgs[i] = groq.Message{Role: m.Role, Content: m.Content}
	}
	temp := req.Temperature

	resp, err := a.client.ChatCompletion(ctx, &groq.ChatRequest{
		Model:       req.Model,
		Messages:    msgs,
		Temperature: &temp,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	out := &Response{
		ProviderName: a.name,
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if out.ModelName == "" {
		out.ModelName = a.client.Model()
	}
	if len(resp.Choices) > 0 {
		out.Content = resp.Choices[0].Message.Content
	}
	return out, nil
}

// Name returns provider name
func (a *GroqAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *GroqAdapter) Model() string {
	return a.client.Model()
}

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface.
// System messages are merged into the system instruction; assistant turns use the "model" role.
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *GenerateRequest) (*Response, error) {
	temp := req.Temperature
	greq := &gemini.GenerateRequest{
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     &temp,
			MaxOutputTokens: req.MaxTokens,
		},
	}

	var system []string
	for _, m := range req.Messages {
		switch m.Role {
		case RoleSystem:
			system = append(system, m.Content)
		case RoleAssistant:
			greq.Contents = append(greq.Contents, gemini.Content{Role: gemini.RoleModel, Parts: []gemini.Part{{Text: m.Content}}})
		default:
			greq.Contents = append(greq.Contents, gemini.Content{Role: gemini.RoleUser, Parts: []gemini.Part{{Text: m.Content}}})
		}
	}
	if len(system) > 0 {
		greq.SystemInstruction = &gemini.Content{Parts: []gemini.Part{{Text: strings.Join(system, "\n\n")}}}
	}

	resp, err := a.client.GenerateContent(ctx, greq)
	if err != nil {
		return nil, err
	}

	usage := &Usage{}
	if resp.UsageMetadata != nil {
		usage.InputTokens = resp.UsageMetadata.PromptTokenCount
		usage.OutputTokens = resp.UsageMetadata.CandidatesTokenCount
		usage.TotalTokens = resp.UsageMetadata.TotalTokenCount
	}

	return &Response{
		Content:      resp.Text(),
		ProviderName: "gemini",
		ModelName:    a.client.Model(),
		Usage:        usage,
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}
