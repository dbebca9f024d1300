package shrink

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// maxGenerateAttempts bounds the unique-origin retry loop. With 62^8 possible
// codes a collision is already rare; hitting the bound means the keyspace is
// close to saturated.
const maxGenerateAttempts = 100

// Service implements the shortening operations on top of a Repository.
type Service struct {
	repo     Repository
	generate OriginGenerator
	logger   *zap.Logger
}

// NewService creates a new shortening service.
func NewService(repo Repository, generate OriginGenerator, logger *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		generate: generate,
		logger:   logger,
	}
}

// GenerateUniqueOrigin mints an origin that is not currently bound in the
// store. The uniqueness probe and a later CreateMapping are not transactional:
// two concurrent callers can both see the same origin as free, and the later
// write wins.
func (s *Service) GenerateUniqueOrigin(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		origin := s.generate()

		exists, err := s.OriginExists(ctx, origin)
		if err != nil {
			return "", err
		}

		if !exists {
			return origin, nil
		}

		s.logger.Debug("origin collision, retrying", zap.String("origin", origin))
	}

	return "", ErrGenerationExhausted
}

// OriginExists reports whether origin is bound to a record. An expired record
// reads as free, which is the intended external behavior.
func (s *Service) OriginExists(ctx context.Context, origin string) (bool, error) {
	fields, err := s.repo.Fetch(ctx, origin)
	if err != nil {
		return false, err
	}

	return len(fields) > 0, nil
}

// CreateMapping binds an origin to a target URL. The origin is taken as the
// literal key: callers supplying a custom origin overwrite whatever record is
// already there. When an expiry is requested and setting it fails after the
// record write succeeded, the error wraps ErrExpiryNotSet so the partial
// write is distinguishable from a failed one.
func (s *Service) CreateMapping(ctx context.Context, mapping Mapping) error {
	if err := s.repo.Put(ctx, mapping.Origin, mapping.Target, mapping.StatusCode); err != nil {
		return fmt.Errorf("store mapping: %w", err)
	}

	if mapping.ExpireAt != nil {
		if err := s.repo.ExpireAt(ctx, mapping.Origin, *mapping.ExpireAt); err != nil {
			return fmt.Errorf("%w: %w", ErrExpiryNotSet, err)
		}
	}

	return nil
}

// Resolve looks up origin and decides the redirect to issue. A record with a
// missing target, missing status, or unparsable status yields ErrNotFound;
// only a store failure is returned as-is.
func (s *Service) Resolve(ctx context.Context, origin string) (*Redirect, error) {
	fields, err := s.repo.Fetch(ctx, origin)
	if err != nil {
		return nil, err
	}

	redirect, ok := redirectFromFields(fields)
	if !ok {
		return nil, ErrNotFound
	}

	s.logger.Debug("resolved origin",
		zap.String("origin", origin),
		zap.String("target", redirect.Target),
		zap.Int("status", redirect.Status),
	)

	return redirect, nil
}
