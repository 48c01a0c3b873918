package services

import (
	"context"
	"fmt"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
	portsrepo "github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/ports/repositories"
	portssvc "github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/ports/services"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/utils/billing"
)

// numberingService hands out per-kind document numbers backed by the counter
// table. Peek is advisory; Allocate advances the counter atomically.
type numberingService struct {
	BaseService
	numberingRepo portsrepo.NumberingRepositoryFacade
	styles        map[domain.DocumentKind]billing.SeriesStyle
}

// NewNumberingService creates a new numbering service. A nil styles map
// falls back to the default per-kind prefixes and widths.
func NewNumberingService(numberingRepo portsrepo.NumberingRepositoryFacade, styles map[domain.DocumentKind]billing.SeriesStyle) portssvc.NumberingSvcFacade {
	if styles == nil {
		styles = billing.DefaultSeriesStyles()
	}
	return &numberingService{
		numberingRepo: numberingRepo,
		styles:        styles,
	}
}

var _ portssvc.NumberingSvcFacade = (*numberingService)(nil)

func (s *numberingService) styleFor(kind domain.DocumentKind) (billing.SeriesStyle, error) {
	style, ok := s.styles[kind]
	if !ok {
		return billing.SeriesStyle{}, fmt.Errorf("no number series configured for kind %s", kind)
	}
	return style, nil
}

// NextNumber returns the formatted number the next document of this kind is
// expected to take, without reserving it.
func (s *numberingService) NextNumber(ctx context.Context, kind domain.DocumentKind) (string, error) {
	style, err := s.styleFor(kind)
	if err != nil {
		return "", err
	}
	next, err := s.numberingRepo.PeekNextValue(ctx, kind, style)
	if err != nil {
		s.LogError(ctx, err, "Failed to peek next document number", "kind", string(kind))
		return "", fmt.Errorf("failed to peek next number for %s: %w", kind, err)
	}
	return billing.FormatNumber(next, style), nil
}

// AllocateNumber consumes the next value in the kind's sequence and returns
// it formatted.
func (s *numberingService) AllocateNumber(ctx context.Context, kind domain.DocumentKind) (string, error) {
	style, err := s.styleFor(kind)
	if err != nil {
		return "", err
	}
	next, err := s.numberingRepo.AllocateNextValue(ctx, kind, style)
	if err != nil {
		s.LogError(ctx, err, "Failed to allocate document number", "kind", string(kind))
		return "", fmt.Errorf("failed to allocate number for %s: %w", kind, err)
	}
	number := billing.FormatNumber(next, style)
	s.LogDebug(ctx, "Allocated document number", "kind", string(kind), "number", number)
	return number, nil
}
