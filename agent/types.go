package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/tiffting/veganbnb/models"
)

type AnalyzeRequest struct {
	Category string   `json:"category"`
	Reviews  []string `json:"reviews"`
}

func (r *AnalyzeRequest) Validate() error {
	if _, err := models.ParseCategory(r.Category); err != nil {
		return err
	}
	if len(r.Reviews) == 0 {
		return fmt.Errorf("reviews must be a non-empty array")
	}
	return nil
}

type ChatRequest struct {
	Message     string               `json:"message"`
	ChatHistory []models.ChatMessage `json:"chatHistory"`
}

func (r *ChatRequest) Validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return fmt.Errorf("message is required")
	}
	return nil
}

type QuickActionsRequest struct {
	LastMessage *struct {
		Content *string `json:"content"`
	} `json:"lastMessage"`
	ConversationHistory []models.ChatMessage `json:"conversationHistory"`
}

func (r *QuickActionsRequest) Validate() error {
	if r.LastMessage == nil || r.LastMessage.Content == nil {
		return fmt.Errorf("last message is required")
	}
	return nil
}

type ChatResponse struct {
	Response  string                  `json:"response"`
	Timestamp time.Time               `json:"timestamp"`
	Metadata  *models.MessageMetadata `json:"metadata"`
}

type QuickActionsResponse struct {
	Suggestions []string  `json:"suggestions"`
	Timestamp   time.Time `json:"timestamp"`
	Error       bool      `json:"error,omitempty"`
}

type StreamMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}
