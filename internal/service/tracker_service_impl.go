package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/google/uuid"
)

type trackerService struct {
	observer UseCaseObserver
}

func NewTrackerService(observers ...UseCaseObserver) TrackerService {
	return &trackerService{observer: useCaseObserverOrNoop(observers)}
}

func (s *trackerService) Summarize(ctx context.Context, pkg domain.Package) (info *domain.InfoMessage, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"code":   pkg.Code,
		"values": len(pkg.Data),
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "summarize",
			RunID:     runIDFrom(ctx),
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	training, err := domain.ReadPackage(pkg.Code, pkg.Data)
	if err != nil {
		return nil, err
	}
	fields["kind"] = string(training.Kind())

	msg := training.TrainingInfo()
	return &msg, nil
}

func (s *trackerService) SummarizeAll(ctx context.Context, pkgs []domain.Package) ([]domain.InfoMessage, error) {
	ctx = WithRunID(ctx, uuid.NewString())

	summaries := make([]domain.InfoMessage, 0, len(pkgs))
	for i, pkg := range pkgs {
		info, err := s.Summarize(ctx, pkg)
		if err != nil {
			return summaries, fmt.Errorf("package %d: %w", i+1, err)
		}
		summaries = append(summaries, *info)
	}
	return summaries, nil
}
