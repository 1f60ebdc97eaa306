package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/tiffting/veganbnb/analysis"
	"github.com/tiffting/veganbnb/config"
	"github.com/tiffting/veganbnb/listings"
	"github.com/tiffting/veganbnb/models"
)

type Agent struct {
	config   *config.Config
	handler  *Handler
	upgrader websocket.Upgrader
}

func main() {
	cfg := config.LoadConfig()
	ctx := context.Background()

	chatLLM, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.Gemini.APIKey),
		googleai.WithDefaultModel(cfg.Gemini.ChatModel),
	)
	if err != nil {
		log.Fatal(err)
	}

	analysisLLM, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.Gemini.APIKey),
		googleai.WithDefaultModel(cfg.Gemini.AnalysisModel),
	)
	if err != nil {
		log.Fatal(err)
	}

	store := listings.NewStore()
	handler := NewHandler(chatLLM, analysisLLM, store, cfg.Gemini.Temperature)

	agent := &Agent{
		config:   cfg,
		handler:  handler,
		upgrader: websocket.Upgrader{},
	}

	if err := agent.Run(); err != nil {
		log.Fatalf("failed to run the agent: %v", err)
	}
}

func (a *Agent) Run() error {
	return a.Router().Run(a.config.Server.Address())
}

func (a *Agent) Router() *gin.Engine {
	r := gin.Default()

	r.StaticFile("/", "web/index.html")

	r.GET("/listings", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, a.handler.store.All())
	})

	r.GET("/listings/:id", func(ctx *gin.Context) {
		listing, ok := a.handler.store.ByID(ctx.Param("id"))
		if !ok {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
			return
		}
		ctx.JSON(http.StatusOK, listing)
	})

	r.POST("/analyze", func(ctx *gin.Context) {
		var req AnalyzeRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := req.Validate(); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		category, _ := models.ParseCategory(req.Category)
		score, err := a.handler.Analyze(ctx, category, req.Reviews)
		if err != nil {
			// Malformed model output and upstream failures both map to 500,
			// but stay distinguishable in logs.
			if errors.Is(err, analysis.ErrMalformedResponse) {
				slog.Error("model returned malformed analysis", "category", category, "error", err)
			} else {
				slog.Error("analysis failed", "category", category, "error", err)
			}
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to analyze reviews"})
			return
		}

		ctx.JSON(http.StatusOK, score)
	})

	r.POST("/chat", func(ctx *gin.Context) {
		var req ChatRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := req.Validate(); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		resp, err := a.handler.Chat(ctx, req.Message, req.ChatHistory)
		if err != nil {
			slog.Error("chat turn failed", "error", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process chat message"})
			return
		}

		ctx.JSON(http.StatusOK, resp)
	})

	r.POST("/quick-actions", func(ctx *gin.Context) {
		var req QuickActionsRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			// Quick actions are a non-essential enhancement: anything short
			// of a missing message degrades to an empty suggestion list
			// rather than blocking the chat flow.
			slog.Error("quick actions request unreadable", "error", err)
			ctx.JSON(http.StatusOK, QuickActionsResponse{
				Suggestions: []string{},
				Timestamp:   time.Now().UTC(),
				Error:       true,
			})
			return
		}
		if err := req.Validate(); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx.JSON(http.StatusOK, QuickActionsResponse{
			Suggestions: a.handler.QuickActions(*req.LastMessage.Content),
			Timestamp:   time.Now().UTC(),
		})
	})

	r.GET("/chat/stream", a.chatStream)

	return r
}

// chatStream upgrades to a websocket and relays model chunks as they
// arrive, closing with a "done" frame carrying the turn metadata.
func (a *Agent) chatStream(ctx *gin.Context) {
	message, _ := ctx.GetQuery("message")

	c, err := a.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}
	defer c.Close()

	if strings.TrimSpace(message) == "" {
		if err := c.WriteJSON(StreamMessage{Type: "error", Data: "message is required"}); err != nil {
			slog.Error("failed to write to ws connection", "error", err)
		}
		return
	}

	resp, err := a.handler.ChatStream(ctx.Request.Context(), message, nil, func(chunk []byte) error {
		return c.WriteJSON(StreamMessage{Type: "chunk", Data: string(chunk)})
	})
	if err != nil {
		slog.Error("streamed chat turn failed", "error", err)
		if err := c.WriteJSON(StreamMessage{Type: "error", Data: "failed to process chat message"}); err != nil {
			slog.Error("failed to write to ws connection", "error", err)
		}
		return
	}

	if err := c.WriteJSON(StreamMessage{Type: "done", Data: resp.Metadata}); err != nil {
		slog.Error("failed to write to ws connection", "error", err)
	}
}
