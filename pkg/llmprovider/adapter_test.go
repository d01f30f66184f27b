package llmprovider

import (
	"context"
	"testing"

	"snowboarding-assistant/pkg/gemini"
	"snowboarding-assistant/pkg/groq"
)

type fakeGroq struct {
	got *groq.ChatRequest
}

func (f *fakeGroq) ChatCompletion(ctx context.Context, req *groq.ChatRequest) (*groq.ChatResponse, error) {
	f.got = req
	return &groq.ChatResponse{
		Choices: []groq.Choice{{Message: groq.Message{Role: "assistant", Content: "Alta is skiers only."}}},
		Usage:   groq.Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
	}, nil
}

func (f *fakeGroq) Model() string { return "llama3-8b-8192" }

type fakeGemini struct {
	got *gemini.GenerateRequest
}

func (f *fakeGemini) GenerateContent(ctx context.Context, req *gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	f.got = req
	return &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{{Content: gemini.Content{Parts: []gemini.Part{{Text: "Go east."}}}}},
	}, nil
}

func (f *fakeGemini) Model() string { return "gemini-2.5-flash" }

func TestGroqAdapter(t *testing.T) {
	client := &fakeGroq{}
	a := NewGroqAdapter(client, "")

	resp, err := a.GenerateContent(context.Background(), &GenerateRequest{
		Messages:    []Message{{Role: RoleSystem, Content: "sys"}, {Role: RoleUser, Content: "hi"}},
		Temperature: 0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "Alta is skiers only." || resp.ModelName != "llama3-8b-8192" {
		t.Errorf("unexpected response %+v", resp)
	}
	if a.Name() != "groq" {
		t.Errorf("expected default name groq, got %s", a.Name())
	}
	if client.got.Temperature == nil || *client.got.Temperature != 0 {
		t.Error("zero temperature must still be sent")
	}
	if len(client.got.Messages) != 2 || client.got.Messages[0].Role != RoleSystem {
		t.Errorf("messages not passed through: %+v", client.got.Messages)
	}
}

func TestGeminiAdapter_MapsRoles(t *testing.T) {
	client := &fakeGemini{}
	a := NewGeminiAdapter(client)

	resp, err := a.GenerateContent(context.Background(), &GenerateRequest{
		Messages: []Message{
			{Role: RoleSystem, Content: "base"},
			{Role: RoleUser, Content: "q1"},
			{Role: RoleAssistant, Content: "a1"},
			{Role: RoleSystem, Content: "search results"},
			{Role: RoleUser, Content: "q2"},
		},
		Temperature: 0.7,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "Go east." {
		t.Errorf("unexpected content %q", resp.Content)
	}

	got := client.got
	if got.SystemInstruction == nil || got.SystemInstruction.Parts[0].Text != "base\n\nsearch results" {
		t.Errorf("system messages not merged: %+v", got.SystemInstruction)
	}
	wantRoles := []string{gemini.RoleUser, gemini.RoleModel, gemini.RoleUser}
	if len(got.Contents) != len(wantRoles) {
		t.Fatalf("expected %d contents, got %d", len(wantRoles), len(got.Contents))
	}
	for i, r := range wantRoles {
		if got.Contents[i].Role != r {
			t.Errorf("content %d: expected role %s, got %s", i, r, got.Contents[i].Role)
		}
	}
}
