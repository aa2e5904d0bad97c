package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"doclens/internal/classify"
	"doclens/internal/config"
	"doclens/internal/domain"
	"doclens/internal/extract"
	"doclens/internal/port"
)

const (
	defaultLLMTimeout = 20 * time.Second
	defaultCacheSize  = 256

	// Confidence assigned to a caller-supplied person name before fusion.
	hintNameConfidence = 0.8
)

// AnalyzeInput is the DTO for a single analysis request: OCR text plus any
// fields and hints the caller already has.
type AnalyzeInput struct {
	Text   string
	Fields []domain.Field
	Hint   domain.Hint
}

// AnalysisService runs the classification and extraction pipeline: rule
// classification, parallel local and LLM extraction, then confidence fusion.
type AnalysisService struct {
	classifier      *classify.Classifier
	llm             port.LLMExtractor // nil when no provider is configured
	llmTimeout      time.Duration
	defaultCategory domain.DocumentCategory
	cache           *lru.Cache[string, *domain.AnalysisResult]
}

// NewAnalysisService builds the pipeline from config. llm may be nil, in
// which case extraction runs with local extractors only.
func NewAnalysisService(classifier *classify.Classifier, llm port.LLMExtractor, cfg config.AnalysisConfig) (*AnalysisService, error) {
	timeout := time.Duration(cfg.LLMTimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = defaultLLMTimeout
	}
	size := cfg.CacheSize
	if size <= 0 {
		size = defaultCacheSize
	}
	cache, err := lru.New[string, *domain.AnalysisResult](size)
	if err != nil {
		return nil, err
	}
	defaultCategory := domain.DocumentCategory(cfg.DefaultCategory)
	if !defaultCategory.IsValid() {
		defaultCategory = domain.CategoryGeneric
	}
	return &AnalysisService{
		classifier:      classifier,
		llm:             llm,
		llmTimeout:      timeout,
		defaultCategory: defaultCategory,
		cache:           cache,
	}, nil
}

// Classify runs rule classification only.
func (s *AnalysisService) Classify(ctx context.Context, input AnalyzeInput) (domain.DocumentCategory, float64, domain.Signals, error) {
	if strings.TrimSpace(input.Text) == "" {
		return "", 0, domain.Signals{}, domain.ErrEmptyText
	}
	fields := withHintName(input.Fields, input.Hint)
	category, confidence, signals := s.classifier.Classify(input.Text, fields, input.Hint.SuggestedCategory, s.defaultCategory)
	return category, confidence, signals, nil
}

// Extract runs the extraction pipeline for an already-known category and
// returns the fused field set. An invalid category falls back to generic.
func (s *AnalysisService) Extract(ctx context.Context, text string, category domain.DocumentCategory, hint domain.Hint) ([]domain.Field, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyText
	}
	if !category.IsValid() {
		category = domain.CategoryGeneric
	}
	raw := s.collectFields(ctx, text, category)
	raw = withHintName(raw, hint)
	return extract.Fuse(raw, category), nil
}

// Analyze runs the full pipeline: classify, extract, fuse. Results are
// cached by text and hint so repeated analysis of the same document is free.
func (s *AnalysisService) Analyze(ctx context.Context, input AnalyzeInput) (*domain.AnalysisResult, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, domain.ErrEmptyText
	}

	key := cacheKey(input)
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	fields := withHintName(input.Fields, input.Hint)
	category, confidence, signals := s.classifier.Classify(input.Text, fields, input.Hint.SuggestedCategory, s.defaultCategory)

	raw := s.collectFields(ctx, input.Text, category)
	raw = append(raw, fields...)
	fused := extract.Fuse(raw, category)

	result := &domain.AnalysisResult{
		ID:         uuid.New(),
		RawText:    input.Text,
		Category:   category,
		Confidence: confidence,
		Signals:    signals,
		Fields:     fused,
	}
	s.cache.Add(key, result)
	return result, nil
}

// CardDetails extracts payment-card details from raw text.
func (s *AnalysisService) CardDetails(text string) (domain.CardDetails, error) {
	if strings.TrimSpace(text) == "" {
		return domain.CardDetails{}, domain.ErrEmptyText
	}
	return extract.ExtractCardDetails(text), nil
}

// collectFields runs local extractors and the LLM extractor in parallel and
// returns the combined raw field set. LLM failure degrades to local-only.
func (s *AnalysisService) collectFields(ctx context.Context, text string, category domain.DocumentCategory) []domain.Field {
	var local, llmFields []domain.Field

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		local = extract.ExtractGeneric(text)
		local = append(local, extract.ExtractForCategory(text, category)...)
		return nil
	})
	if s.llm != nil {
		g.Go(func() error {
			llmCtx, cancel := context.WithTimeout(gctx, s.llmTimeout)
			defer cancel()
			fields, err := s.llm.Extract(llmCtx, text, category)
			if err != nil {
				log.Printf("service.AnalysisService: llm extraction failed, continuing with local fields: %v", err)
				return nil
			}
			llmFields = fields
			return nil
		})
	}
	_ = g.Wait()

	return append(local, llmFields...)
}

// withHintName folds a caller-supplied person name into the raw field set so
// fusion can weigh it against extracted names.
func withHintName(fields []domain.Field, hint domain.Hint) []domain.Field {
	if strings.TrimSpace(hint.PersonName) == "" {
		return fields
	}
	out := make([]domain.Field, 0, len(fields)+1)
	out = append(out, fields...)
	out = append(out, domain.NewField("name", strings.TrimSpace(hint.PersonName), hintNameConfidence, domain.SourceNLEntity))
	return out
}

func cacheKey(input AnalyzeInput) string {
	h := sha256.New()
	h.Write([]byte(input.Text))
	h.Write([]byte{0})
	h.Write([]byte(input.Hint.SuggestedCategory))
	h.Write([]byte{0})
	h.Write([]byte(input.Hint.PersonName))
	for _, f := range input.Fields {
		h.Write([]byte{0})
		h.Write([]byte(f.Key))
		h.Write([]byte{1})
		h.Write([]byte(f.Value))
	}
	return hex.EncodeToString(h.Sum(nil))
}
