package main

import (
	"context"
	"fmt"
	"time"

	"github.com/tmc/langchaingo/llms"

	"github.com/tiffting/veganbnb/analysis"
	"github.com/tiffting/veganbnb/classify"
	"github.com/tiffting/veganbnb/listings"
	"github.com/tiffting/veganbnb/models"
)

// Handler orchestrates the request/response cycle around the injected model
// clients. Both LLMs are only required to satisfy llms.Model, so tests run
// against fakes without network access.
type Handler struct {
	chatLLM     llms.Model
	analysisLLM llms.Model
	store       *listings.Store
	temperature float64
	now         func() time.Time
}

func NewHandler(chatLLM, analysisLLM llms.Model, store *listings.Store, temperature float64) *Handler {
	return &Handler{
		chatLLM:     chatLLM,
		analysisLLM: analysisLLM,
		store:       store,
		temperature: temperature,
		now:         time.Now,
	}
}

// Analyze runs the prompt -> model -> validate pipeline for one
// (category, review-set) pair. The model is called exactly once; failures
// are surfaced, never retried.
func (h *Handler) Analyze(ctx context.Context, category models.Category, reviews []string) (*models.SafetyScore, error) {
	prompt, err := analysis.BuildAnalysisPrompt(category, reviews)
	if err != nil {
		return nil, err
	}

	raw, err := llms.GenerateFromSinglePrompt(
		ctx,
		h.analysisLLM,
		prompt,
		llms.WithJSONMode(),
		llms.WithTemperature(h.temperature),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate analysis: %w", err)
	}

	score, err := analysis.ParseAnalysis(category, raw)
	if err != nil {
		return nil, err
	}

	return score, nil
}

// Chat handles one conversational turn: render context, prompt the model
// once, annotate the reply with classifier metadata. The reply text is
// returned as-is; only the separate analysis path parses model output
// structurally.
func (h *Handler) Chat(ctx context.Context, message string, history []models.ChatMessage) (*ChatResponse, error) {
	return h.chat(ctx, message, history, nil)
}

// ChatStream is Chat with the model's chunks relayed through streamFn as
// they arrive. The final aggregated response is still returned.
func (h *Handler) ChatStream(ctx context.Context, message string, history []models.ChatMessage, streamFn func(chunk []byte) error) (*ChatResponse, error) {
	return h.chat(ctx, message, history, streamFn)
}

func (h *Handler) chat(ctx context.Context, message string, history []models.ChatMessage, streamFn func(chunk []byte) error) (*ChatResponse, error) {
	travelContext := BuildTravelContext(h.store)
	prompt := buildChatPrompt(message, history, travelContext, h.now())

	opts := []llms.CallOption{llms.WithTemperature(h.temperature)}
	if streamFn != nil {
		opts = append(opts, llms.WithStreamingFunc(func(ctx context.Context, chunk []byte) error {
			return streamFn(chunk)
		}))
	}

	text, err := llms.GenerateFromSinglePrompt(ctx, h.chatLLM, prompt, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to generate chat response: %w", err)
	}

	return &ChatResponse{
		Response:  text,
		Timestamp: h.now().UTC(),
		Metadata:  h.buildMetadata(message, text),
	}, nil
}

// buildMetadata annotates a completed turn. City and topic tags come from
// the user's message (what they asked for); listing references come from the
// assistant's reply (what was actually recommended).
func (h *Handler) buildMetadata(userMessage, reply string) *models.MessageMetadata {
	city := classify.DetectCityMention(userMessage)

	meta := &models.MessageMetadata{
		ListingReferences: h.store.ExtractReferences(reply),
		Categories:        classify.InferCategories(userMessage),
		HasDataForCity:    city.HasData,
	}
	if city.City != "" {
		meta.CityMention = &city.City
	}
	return meta
}

// QuickActions never fails: whatever the input, the worst case is an empty
// suggestion list.
func (h *Handler) QuickActions(lastAssistantText string) []string {
	suggestions := classify.QuickActions(lastAssistantText)
	if suggestions == nil {
		return []string{}
	}
	if len(suggestions) > classify.MaxQuickActions {
		suggestions = suggestions[:classify.MaxQuickActions]
	}
	return suggestions
}
