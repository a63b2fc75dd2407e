package service

import (
	"context"

	"github.com/alexanderramin/fittrack/internal/domain"
)

type TrackerService interface {
	// Summarize dispatches one package and builds its summary.
	Summarize(ctx context.Context, pkg domain.Package) (*domain.InfoMessage, error)
	// SummarizeAll processes packages in order and stops at the first failure,
	// returning the summaries built before it.
	SummarizeAll(ctx context.Context, pkgs []domain.Package) ([]domain.InfoMessage, error)
}
