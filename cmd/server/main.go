package main

import (
	"fmt"
	"log"

	"doclens/internal/classify"
	"doclens/internal/config"
	"doclens/internal/handler"
	"doclens/internal/llm"
	_ "doclens/internal/llm/anthropic"
	_ "doclens/internal/llm/google"
	_ "doclens/internal/llm/openai"
	"doclens/internal/port"
	"doclens/internal/router"
	"doclens/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Build the LLM extractor chain
	var extractor port.LLMExtractor
	if cfg.LLM.Enabled {
		extractor, err = buildExtractorChain(&cfg.LLM)
		if err != nil {
			return fmt.Errorf("failed to build LLM extractor: %w", err)
		}
	}
	if extractor == nil {
		log.Printf("main: no LLM provider configured, running with local extractors only")
	}

	// Initialize classifier
	var opts []classify.Option
	if cfg.Analysis.Diagnostics {
		opts = append(opts, classify.WithDiagnostics(classify.LogDiagnostics{}))
	}
	classifier := classify.NewClassifier(opts...)

	// Initialize services
	analysisSvc, err := service.NewAnalysisService(classifier, extractor, cfg.Analysis)
	if err != nil {
		return fmt.Errorf("failed to initialize analysis service: %w", err)
	}

	// Initialize handlers
	analysisH := handler.NewAnalysisHandler(analysisSvc)
	healthH := handler.NewHealthHandler(extractor != nil)

	// Setup router
	r := router.Setup(analysisH, healthH, cfg.CORS.AllowedOrigins)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// buildExtractorChain wires the configured provider slots into a fallback
// chain. Slots with no API key are skipped.
func buildExtractorChain(cfg *config.LLMConfig) (port.LLMExtractor, error) {
	var extractors []port.LLMExtractor
	var names []string
	for _, slot := range cfg.Chain() {
		if slot.APIKey == "" {
			log.Printf("main: skipping LLM provider %s (no API key)", slot.Provider)
			continue
		}
		extractor, err := llm.NewExtractor(slot)
		if err != nil {
			return nil, err
		}
		extractors = append(extractors, extractor)
		names = append(names, slot.Provider)
	}
	switch len(extractors) {
	case 0:
		return nil, nil
	case 1:
		return extractors[0], nil
	default:
		return llm.NewFallbackExtractor(extractors, names), nil
	}
}
