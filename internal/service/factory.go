package service

import (
	"github.com/josephkirk/Auto-Talent-Evaluation/common/llm"
	"github.com/josephkirk/Auto-Talent-Evaluation/common/metrics"
	"github.com/josephkirk/Auto-Talent-Evaluation/internal/store"
)

type Services struct {
	stores   *store.Stores
	client   llm.Client
	renderer MarkdownRenderer
	metrics  *metrics.Recorder
}

// NewServices wires the services. stores may be nil when no database is
// configured; record operations then return ErrRecordsDisabled.
func NewServices(stores *store.Stores, client llm.Client, renderer MarkdownRenderer, recorder *metrics.Recorder) *Services {
	return &Services{
		stores:   stores,
		client:   client,
		renderer: renderer,
		metrics:  recorder,
	}
}

func (s *Services) Reports() ReportService {
	if s.stores == nil {
		return NewReportService(s.client, s.renderer, nil, nil, nil, s.metrics)
	}
	return NewReportService(
		s.client,
		s.renderer,
		s.stores.Employees(),
		s.stores.Accomplishments(),
		s.stores.Observations(),
		s.metrics,
	)
}

func (s *Services) Employees() EmployeeService {
	if s.stores == nil {
		return NewEmployeeService(nil, nil, nil, nil)
	}
	return NewEmployeeService(
		s.stores.Employees(),
		s.stores.Accomplishments(),
		s.stores.Observations(),
		s.stores.Awards(),
	)
}

func (s *Services) Awards() AwardService {
	if s.stores == nil {
		return NewAwardService(nil, nil)
	}
	return NewAwardService(s.stores.AwardTypes(), s.stores.Awards())
}
