package main

import (
	"context"
	"fmt"

	"github.com/0xsashank/magicresume/internal/config"
	"github.com/0xsashank/magicresume/internal/corpus"
	"github.com/0xsashank/magicresume/internal/embedding"
	"github.com/0xsashank/magicresume/internal/llm"
	"github.com/0xsashank/magicresume/internal/tailor"
)

// closerFunc releases everything an orchestrator holds open.
type closerFunc func()

// buildOrchestrator wires the embedding client, generation client, and
// exemplar store selected by configuration. The seed corpus is used when
// neither a database nor a corpus file is configured.
func buildOrchestrator(ctx context.Context, cfg *config.Config) (*tailor.Orchestrator, closerFunc, error) {
	if cfg.APIKey == "" {
		return nil, nil, &llm.ConfigurationError{Message: "credential not found"}
	}

	embedder, err := embedding.NewGeminiEmbedder(ctx, cfg.APIKey, cfg.EmbeddingModel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	llmCfg := llm.DefaultConfig()
	if cfg.SummaryModel != "" {
		llmCfg = llmCfg.WithModel(llm.TierSummary, cfg.SummaryModel)
	}
	if cfg.DraftModel != "" {
		llmCfg = llmCfg.WithModel(llm.TierDraft, cfg.DraftModel)
	}

	client, err := llm.NewGeminiClient(ctx, llmCfg, cfg.APIKey)
	if err != nil {
		_ = embedder.Close()
		return nil, nil, err
	}

	var store corpus.Store
	var closeStore func()
	switch {
	case cfg.DatabaseURL != "":
		pg, err := corpus.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			_ = embedder.Close()
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to open exemplar store: %w", err)
		}
		store = pg
		closeStore = pg.Close
	case cfg.CorpusPath != "":
		fileStore, err := corpus.LoadFile(cfg.CorpusPath)
		if err != nil {
			_ = embedder.Close()
			_ = client.Close()
			return nil, nil, err
		}
		store = fileStore
	default:
		store = corpus.SeedStore()
	}

	orchestrator := tailor.New(embedder, client, store, &tailor.Options{
		CallTimeout: cfg.CallTimeout(),
		Verbose:     cfg.Verbose,
	})

	closer := func() {
		_ = embedder.Close()
		_ = client.Close()
		if closeStore != nil {
			closeStore()
		}
	}
	return orchestrator, closer, nil
}
