// Command rescore re-runs the safety analysis over every bundled fixture
// listing and prints the fresh scores as JSON, so fixture scores can be
// compared against current model output.
package main

import (
	"context"
	"encoding/json"
	"log"
	"log/slog"
	"os"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"golang.org/x/sync/errgroup"

	"github.com/tiffting/veganbnb/analysis"
	"github.com/tiffting/veganbnb/config"
	"github.com/tiffting/veganbnb/listings"
	"github.com/tiffting/veganbnb/models"
)

func main() {
	cfg := config.LoadConfig()
	ctx := context.Background()

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.Gemini.APIKey),
		googleai.WithDefaultModel(cfg.Gemini.AnalysisModel),
	)
	if err != nil {
		log.Fatal(err)
	}

	store := listings.NewStore()
	items := store.All()

	workers := cfg.Rescore.Workers
	if workers < 1 {
		workers = 2
	}
	slog.Info("rescoring listings", "count", len(items), "workers", workers)

	scores := make([]*models.SafetyScore, len(items))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, listing := range items {
		g.Go(func() error {
			prompt, err := analysis.BuildAnalysisPrompt(listing.Category, listing.Reviews)
			if err != nil {
				return err
			}

			raw, err := llms.GenerateFromSinglePrompt(ctx, llm, prompt,
				llms.WithJSONMode(),
				llms.WithTemperature(cfg.Gemini.Temperature),
			)
			if err != nil {
				slog.Error("generation failed", "id", listing.ID, "err", err)
				return nil
			}

			score, err := analysis.ParseAnalysis(listing.Category, raw)
			if err != nil {
				slog.Error("invalid analysis", "id", listing.ID, "err", err)
				return nil
			}

			scores[i] = score
			slog.Info("rescored listing", "id", listing.ID, "score", score.Score, "previous", listing.OverallScore())
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	out := make(map[string]*models.SafetyScore, len(items))
	for i, listing := range items {
		if scores[i] == nil {
			continue
		}
		if scores[i].Score < cfg.Rescore.MinScore {
			slog.Warn("score below threshold", "id", listing.ID, "score", scores[i].Score, "threshold", cfg.Rescore.MinScore)
		}
		out[listing.ID] = scores[i]
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatal(err)
	}

	slog.Info("rescore complete", "analyzed", len(out), "total", len(items))
}
