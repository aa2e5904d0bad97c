package port

import (
	"context"

	"doclens/internal/domain"
)

// LLMExtractor abstracts the external language-model collaborator that
// enriches pattern-based extraction. Implementations select a prompt for
// the resolved category, call the provider, and flatten the JSON response
// into Field records. A failed call is reported as an error; the pipeline
// treats it as zero LLM-derived fields, never as a fatal condition.
type LLMExtractor interface {
	Extract(ctx context.Context, text string, category domain.DocumentCategory) ([]domain.Field, error)
}
