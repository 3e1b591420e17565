// Package suggest derives filter suggestions for a report type from the
// recent request history.
package suggest

import (
	"context"
	"fmt"
	"time"

	"github.com/nmoralesv/informe/internal/model"
	"github.com/nmoralesv/informe/internal/storage"
)

// Store is the slice of the history store the suggester reads.
type Store interface {
	CountSince(ctx context.Context, reportType model.ReportType, since time.Time) (int, error)
	TopCategories(ctx context.Context, since time.Time, limit int) ([]storage.CategoryCount, error)
}

// Suggestion is one proposed filter with the reason it is being offered.
type Suggestion struct {
	Filter string `json:"filter"`
	Kind   string `json:"kind"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

// Recent-activity thresholds: a period filter is only worth suggesting when
// the type has seen real traffic this week.
const (
	recentWindow   = 7 * 24 * time.Hour
	minRecentCount = 10
	maxCategories  = 3
)

// Suggester proposes filters based on what callers have been asking for.
type Suggester struct {
	store Store
	now   func() time.Time
}

// New creates a Suggester over the given history store.
func New(store Store) *Suggester {
	return &Suggester{store: store, now: time.Now}
}

// ForReportType returns filter suggestions for one report type: a recent
// period when the type is in active use, and the most-requested categories.
func (s *Suggester) ForReportType(ctx context.Context, reportType model.ReportType) ([]Suggestion, error) {
	since := s.now().Add(-recentWindow)

	count, err := s.store.CountSince(ctx, reportType, since)
	if err != nil {
		return nil, fmt.Errorf("failed to count recent requests: %w", err)
	}

	var suggestions []Suggestion
	if count >= minRecentCount {
		suggestions = append(suggestions, Suggestion{
			Filter: "date",
			Kind:   "period",
			Value:  "última semana",
			Reason: fmt.Sprintf("%d solicitudes de este tipo en la última semana", count),
		})
	}

	categories, err := s.store.TopCategories(ctx, since, maxCategories)
	if err != nil {
		return nil, fmt.Errorf("failed to query top categories: %w", err)
	}
	for _, cc := range categories {
		suggestions = append(suggestions, Suggestion{
			Filter: "category",
			Kind:   "value",
			Value:  cc.Category,
			Reason: fmt.Sprintf("categoría solicitada %d veces recientemente", cc.Count),
		})
	}

	return suggestions, nil
}
