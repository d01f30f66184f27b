package groq

import "time"

const (
	// DefaultBaseURL is the OpenAI-compatible Groq endpoint
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultModel is the default model to use
	DefaultModel = "llama3-8b-8192"

	// DefaultTimeout bounds a single completion call
	DefaultTimeout = 60 * time.Second

	chatCompletionsPath = "/chat/completions"
)
