package ports

import (
	"context"

	"github.com/avaldez-labs/moodtunes/internal/core/domain"
)

// ToneClassifier detects the dominant emotion in free text.
//
// Empty or whitespace-only text, or an unconfigured backend, yields the
// neutral result without a network call.
type ToneClassifier interface {
	AnalyzeTone(ctx context.Context, text string) (domain.ToneResult, error)
}
