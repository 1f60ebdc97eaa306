package main

import (
	"context"
	"errors"

	"github.com/tmc/langchaingo/llms"
)

var errUpstream = errors.New("model unavailable")

// fakeLLM satisfies llms.Model so the orchestrator can be exercised without
// network access. It records prompts, honors a configured streaming func,
// and replies with a canned response or error.
type fakeLLM struct {
	response string
	err      error
	prompts  []string
	calls    int
}

func (f *fakeLLM) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.calls++

	for _, mc := range messages {
		for _, part := range mc.Parts {
			if text, ok := part.(llms.TextContent); ok {
				f.prompts = append(f.prompts, text.Text)
			}
		}
	}

	if f.err != nil {
		return nil, f.err
	}

	opts := llms.CallOptions{}
	for _, opt := range options {
		opt(&opts)
	}
	if opts.StreamingFunc != nil {
		if err := opts.StreamingFunc(ctx, []byte(f.response)); err != nil {
			return nil, err
		}
	}

	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.response}},
	}, nil
}

func (f *fakeLLM) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeLLM) lastPrompt() string {
	if len(f.prompts) == 0 {
		return ""
	}
	return f.prompts[len(f.prompts)-1]
}
