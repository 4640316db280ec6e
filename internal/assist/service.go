// Package assist implements the three AI-assisted search intents behind
// the dandata panels. For each query it builds the prompt, performs one
// gateway round trip and normalizes the reply into a Result the caller
// can always display.
package assist

import (
	"context"
	"time"

	"dandata/internal/gateway"
	"dandata/internal/query"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Generator is the slice of the gateway client the service needs. Tests
// substitute a fake.
type Generator interface {
	Generate(ctx context.Context, prompt string) (*gateway.Response, error)
}

// Service runs the builder -> gateway -> normalizer pipeline. It holds
// no per-query state; concurrent queries are independent.
type Service struct {
	client Generator
	logger *zap.Logger
}

// NewService creates the service around an injected gateway client. A
// nil logger is replaced with a no-op logger.
func NewService(client Generator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, logger: logger}
}

// ExplainRegistry answers a question about one registry. registryCode
// must be non-empty; the panels reject empty questions before calling.
func (s *Service) ExplainRegistry(ctx context.Context, registryCode, question string) Result {
	return s.run(ctx, IntentExplain, query.ExplainPrompt(registryCode, question))
}

// FindRelatedPapers searches top economics outlets for papers using the
// named registry. Callers substitute query.GenericRegistryLabel for an
// empty registry name before calling. topic is optional.
func (s *Service) FindRelatedPapers(ctx context.Context, registryName, topic string) Result {
	return s.run(ctx, IntentPapers, query.PaperSearchPrompt(registryName, topic))
}

// SearchVariables looks up DST variable documentation for q, which must
// be non-empty.
func (s *Service) SearchVariables(ctx context.Context, q string) Result {
	return s.run(ctx, IntentVariables, query.VariableSearchPrompt(q))
}

func (s *Service) run(ctx context.Context, intent Intent, prompt string) Result {
	requestID := uuid.NewString()
	start := time.Now()

	resp, err := s.client.Generate(ctx, prompt)
	if err != nil {
		s.logger.Warn("query failed",
			zap.String("request_id", requestID),
			zap.Stringer("intent", intent),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return Normalize(intent, nil, err)
	}

	res := Normalize(intent, resp, nil)
	s.logger.Debug("query completed",
		zap.String("request_id", requestID),
		zap.Stringer("intent", intent),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("text_len", len(res.Text)),
		zap.Int("sources", len(res.Sources)))
	return res
}
