package llmprovider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tmc/langchaingo/llms"

	"calendar-assistant/pkg/deepseek"
	"calendar-assistant/pkg/gemini"
)

func eventsSchema() *Schema {
	return &Schema{
		Type: SchemaArray,
		Items: &Schema{
			Type: SchemaObject,
			Properties: map[string]*Schema{
				"title":     {Type: SchemaString},
				"startDate": {Type: SchemaString},
			},
			Required: []string{"title", "startDate"},
		},
	}
}

func TestGeminiAdapter_GenerateContent(t *testing.T) {
	var got gemini.GenerateRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "good" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"[]"}]}}],
			"usageMetadata":{"promptTokenCount":3,"candidatesTokenCount":1,"totalTokenCount":4}}`))
	}))
	defer ts.Close()

	client, _ := gemini.New(gemini.Config{APIKey: "good", Model: "m", APIURL: ts.URL})
	adapter := NewGeminiAdapter(client)

	req := &Request{
		SystemInstruction: &Message{Role: RoleSystem, Parts: []Part{{Text: "be precise"}}},
		Messages:          []Message{TextMessage(RoleUser, "meeting tomorrow")},
		Temperature:       0.2,
		ResponseSchema:    eventsSchema(),
	}

	resp, err := adapter.GenerateContent(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text() != "[]" || resp.ProviderName != "gemini" || resp.Usage.TotalTokens != 4 {
		t.Errorf("unexpected response: %+v", resp)
	}

	gc := got.GenerationConfig
	if gc == nil || gc.ResponseMimeType != gemini.MimeTypeJSON {
		t.Fatalf("expected JSON mime type, got %+v", gc)
	}
	if gc.ResponseSchema.Type != gemini.TypeArray || gc.ResponseSchema.Items.Type != gemini.TypeObject {
		t.Errorf("schema types not upper-cased: %+v", gc.ResponseSchema)
	}
	if gc.ResponseSchema.Items.Properties["title"].Type != gemini.TypeString {
		t.Errorf("property schema not converted")
	}
	if got.SystemInstruction == nil || got.SystemInstruction.Parts[0].Text != "be precise" {
		t.Errorf("system instruction not forwarded")
	}

	bad, _ := gemini.New(gemini.Config{APIKey: "bad", Model: "m", APIURL: ts.URL})
	_, err = NewGeminiAdapter(bad).GenerateContent(context.Background(), req)
	if !errors.Is(err, ErrProviderUnauthorized) {
		t.Errorf("expected ErrProviderUnauthorized, got %v", err)
	}
}

func TestDeepSeekAdapter_GenerateContent(t *testing.T) {
	var got deepseek.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"model":"deepseek-chat","choices":[{"message":{"role":"assistant",
			"content":"{\"items\":[{\"title\":\"Lunch\",\"startDate\":\"2025-07-01\"}]}"}}],
			"usage":{"prompt_tokens":1,"completion_tokens":2,"total_tokens":3}}`))
	}))
	defer ts.Close()

	client, _ := deepseek.New(deepseek.Config{APIKey: "k", BaseURL: ts.URL})
	adapter := NewDeepSeekAdapter(client)

	resp, err := adapter.GenerateContent(context.Background(), &Request{
		SystemInstruction: &Message{Parts: []Part{{Text: "sys"}}},
		Messages:          []Message{TextMessage(RoleUser, "lunch")},
		ResponseSchema:    eventsSchema(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Text() != `[{"title":"Lunch","startDate":"2025-07-01"}]` {
		t.Errorf("envelope not removed: %s", resp.Text())
	}
	if got.ResponseFormat == nil || got.ResponseFormat.Type != deepseek.ResponseFormatJSON {
		t.Errorf("JSON mode not requested")
	}
	if len(got.Messages) != 2 || got.Messages[0].Role != RoleSystem {
		t.Fatalf("system message missing: %+v", got.Messages)
	}
	if !strings.HasPrefix(got.Messages[0].Content, "sys") || !strings.Contains(got.Messages[0].Content, `"startDate"`) {
		t.Errorf("schema instruction missing from system message: %s", got.Messages[0].Content)
	}
}

// fakeModel is a langchaingo model returning a canned reply.
type fakeModel struct {
	reply    string
	err      error
	messages []llms.MessageContent
	opts     llms.CallOptions
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.messages = messages
	for _, opt := range options {
		opt(&f.opts)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{
		Content:        f.reply,
		GenerationInfo: map[string]any{"PromptTokens": 7, "CompletionTokens": 2, "TotalTokens": 9},
	}}}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

func TestLangChainAdapter_GenerateContent(t *testing.T) {
	model := &fakeModel{reply: `{"items": []}`}
	adapter := NewLangChainAdapter(ProviderOllama, "llama3", model)

	resp, err := adapter.GenerateContent(context.Background(), &Request{
		SystemInstruction: &Message{Parts: []Part{{Text: "sys"}}},
		Messages:          []Message{TextMessage(RoleUser, "hello")},
		Temperature:       0.1,
		ResponseSchema:    eventsSchema(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Text() != "[]" {
		t.Errorf("Text() = %q, want []", resp.Text())
	}
	if resp.ProviderName != ProviderOllama || resp.ModelName != "llama3" || resp.Usage.TotalTokens != 9 {
		t.Errorf("unexpected response metadata: %+v", resp)
	}
	if !model.opts.JSONMode {
		t.Errorf("JSON mode not requested")
	}
	if model.opts.Model != "llama3" {
		t.Errorf("model option = %q", model.opts.Model)
	}
	if len(model.messages) != 2 || model.messages[0].Role != llms.ChatMessageTypeSystem || model.messages[1].Role != llms.ChatMessageTypeHuman {
		t.Errorf("unexpected message roles: %+v", model.messages)
	}
}

func TestLangChainAdapter_Errors(t *testing.T) {
	adapter := NewLangChainAdapter(ProviderOpenAI, "gpt", &fakeModel{err: context.DeadlineExceeded})
	_, err := adapter.GenerateContent(context.Background(), helloRequest())
	if !errors.Is(err, ErrProviderTimeout) {
		t.Errorf("expected ErrProviderTimeout, got %v", err)
	}
}

func TestUnwrapJSONMode(t *testing.T) {
	tests := []struct {
		name   string
		schema *Schema
		in     string
		want   string
	}{
		{name: "No schema", schema: nil, in: `{"items":[]}`, want: `{"items":[]}`},
		{name: "Envelope removed", schema: eventsSchema(), in: ` {"items":[1,2]} `, want: `[1,2]`},
		{name: "Bare array kept", schema: eventsSchema(), in: `[1]`, want: `[1]`},
		{name: "Other object kept", schema: eventsSchema(), in: `{"events":[1]}`, want: `{"events":[1]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := unwrapJSONMode(tt.schema, tt.in); got != tt.want {
				t.Errorf("unwrapJSONMode() = %q, want %q", got, tt.want)
			}
		})
	}
}
