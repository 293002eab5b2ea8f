// Package service exposes the top-level resolution entry point: identifier in,
// normalized company record out.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/OpenDiscoveryBiz/dk-provider/internal/company/identifier"
	"github.com/OpenDiscoveryBiz/dk-provider/internal/company/models"
	"github.com/OpenDiscoveryBiz/dk-provider/internal/company/translate"
	"github.com/OpenDiscoveryBiz/dk-provider/internal/erst"
	dErrors "github.com/OpenDiscoveryBiz/dk-provider/pkg/domain-errors"
)

// Resolver turns a numeric local id into a raw registry record.
type Resolver interface {
	Resolve(ctx context.Context, localID uint64) (*erst.Record, error)
}

type Service struct {
	resolver Resolver
	ttl      int
	logger   *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithRecordTTL overrides the ttl seconds advertised inside every record.
func WithRecordTTL(ttl int) Option {
	return func(s *Service) {
		s.ttl = ttl
	}
}

func New(resolver Resolver, opts ...Option) (*Service, error) {
	if resolver == nil {
		return nil, fmt.Errorf("resolver is required")
	}

	svc := &Service{
		resolver: resolver,
		ttl:      3600,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Lookup resolves a raw identifier string to a normalized company record.
// Translator failures indicate the upstream record violates an assumed
// invariant; they are logged with the offending id and field so schema drift
// is diagnosable, and fail the whole resolution.
func (s *Service) Lookup(ctx context.Context, rawID string) (*models.CompanyRecord, error) {
	id, err := identifier.Parse(rawID)
	if err != nil {
		return nil, err
	}

	record, err := s.resolver.Resolve(ctx, id.LocalNumber)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			s.logger.Error("resolve company", "id", id.Country+id.LocalID, "error", err)
		}
		return nil, err
	}

	company := &models.CompanyRecord{
		Type:               models.TypeOfficial,
		ID:                 id.Country + id.LocalID,
		TTL:                s.ttl,
		VoluntaryProviders: []string{},
	}

	for _, step := range translate.Steps() {
		if err := step.Fn(company, record); err != nil {
			s.logger.Error("translate company record",
				"id", company.ID, "field", step.Field, "error", err)
			return nil, err
		}
	}

	translate.ProviderURL(company)

	return company, nil
}
