package llmprovider

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
)

// LangChainAdapter adapts any langchaingo model (ollama, openai) to Provider.
type LangChainAdapter struct {
	llm   llms.Model
	name  string
	model string
}

// NewLangChainAdapter wraps llm under the given provider name.
func NewLangChainAdapter(name, model string, llm llms.Model) *LangChainAdapter {
	return &LangChainAdapter{llm: llm, name: name, model: model}
}

// GenerateContent implements Provider interface
func (a *LangChainAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]llms.MessageContent, 0, len(req.Messages)+1)

	var system string
	if req.SystemInstruction != nil {
		system = req.SystemInstruction.Text()
	}
	if system = withJSONModeInstruction(system, req.ResponseSchema); system != "" {
		messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, system))
	}

	for _, m := range req.Messages {
		switch m.Role {
		case RoleAssistant:
			messages = append(messages, llms.TextParts(llms.ChatMessageTypeAI, m.Text()))
		case RoleSystem:
			messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, m.Text()))
		default:
			messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, m.Text()))
		}
	}

	opts := make([]llms.CallOption, 0, 4)
	if a.model != "" {
		opts = append(opts, llms.WithModel(a.model))
	}
	if req.Temperature > 0 {
		opts = append(opts, llms.WithTemperature(req.Temperature))
	}
	if req.MaxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(req.MaxTokens))
	}
	if req.ResponseSchema != nil {
		opts = append(opts, llms.WithJSONMode())
	}

	resp, err := a.llm.GenerateContent(ctx, messages, opts...)
	if err != nil {
		return nil, classifyTransport(err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%s: empty response from model", a.name)
	}

	choice := resp.Choices[0]
	return &Response{
		Content:      TextMessage(RoleAssistant, unwrapJSONMode(req.ResponseSchema, choice.Content)),
		ProviderName: a.name,
		ModelName:    a.model,
		Usage: &Usage{
			InputTokens:  intFromInfo(choice.GenerationInfo, "PromptTokens"),
			OutputTokens: intFromInfo(choice.GenerationInfo, "CompletionTokens"),
			TotalTokens:  intFromInfo(choice.GenerationInfo, "TotalTokens"),
		},
	}, nil
}

// Name returns the provider name
func (a *LangChainAdapter) Name() string {
	return a.name
}

// Model returns the model name
func (a *LangChainAdapter) Model() string {
	return a.model
}

func intFromInfo(info map[string]any, key string) int {
	switch v := info[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
