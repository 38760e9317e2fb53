package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/josephkirk/Auto-Talent-Evaluation/common/id"
	"github.com/josephkirk/Auto-Talent-Evaluation/common/logger"
	"github.com/josephkirk/Auto-Talent-Evaluation/internal/model"
	"github.com/josephkirk/Auto-Talent-Evaluation/internal/store"
)

// Award dates are calendar days; a full timestamp is truncated to its date.
var awardDateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	time.RFC3339Nano,
}

type AwardService interface {
	ListTypes(ctx context.Context) ([]model.AwardType, error)
	CreateType(ctx context.Context, name string) (*model.AwardType, error)
	Add(ctx context.Context, employeeID, awardTypeID int64, awardDate string) (*model.Award, error)
	Update(ctx context.Context, awardID, awardTypeID int64, awardDate string) (*model.Award, error)
	Delete(ctx context.Context, awardID int64) error
}

type awardService struct {
	types  store.AwardTypeStore
	awards store.AwardStore
}

func NewAwardService(types store.AwardTypeStore, awards store.AwardStore) AwardService {
	return &awardService{types: types, awards: awards}
}

func (s *awardService) enabled() bool {
	return s.types != nil && s.awards != nil
}

func (s *awardService) ListTypes(ctx context.Context) ([]model.AwardType, error) {
	if !s.enabled() {
		return nil, ErrRecordsDisabled
	}
	types, err := s.types.List(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list award types", "error", err)
		return nil, fmt.Errorf("listing award types: %w", err)
	}
	return types, nil
}

func (s *awardService) CreateType(ctx context.Context, name string) (*model.AwardType, error) {
	if !s.enabled() {
		return nil, ErrRecordsDisabled
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidRecord("name", "must not be blank")
	}

	t := &model.AwardType{ID: id.New(), Name: name}
	if err := s.types.Create(ctx, t); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrAwardTypeExists
		}
		slog.ErrorContext(ctx, "failed to create award type", "error", err)
		return nil, fmt.Errorf("creating award type: %w", err)
	}

	slog.InfoContext(ctx, "award type created", "award_type_id", t.ID, "name", t.Name)
	return t, nil
}

func (s *awardService) Add(ctx context.Context, employeeID, awardTypeID int64, awardDate string) (*model.Award, error) {
	if !s.enabled() {
		return nil, ErrRecordsDisabled
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{EmployeeID: &employeeID})

	date, err := parseAwardDate(awardDate)
	if err != nil {
		return nil, err
	}
	if err := s.checkType(ctx, awardTypeID); err != nil {
		return nil, err
	}

	a := &model.Award{
		ID:          id.New(),
		EmployeeID:  employeeID,
		AwardTypeID: awardTypeID,
		AwardDate:   date,
	}
	if err := s.awards.Create(ctx, a); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		slog.ErrorContext(ctx, "failed to create award", "error", err)
		return nil, fmt.Errorf("creating award: %w", err)
	}

	slog.InfoContext(ctx, "award recorded", "award_id", a.ID, "award_type", a.AwardTypeName)
	return a, nil
}

func (s *awardService) Update(ctx context.Context, awardID, awardTypeID int64, awardDate string) (*model.Award, error) {
	if !s.enabled() {
		return nil, ErrRecordsDisabled
	}
	date, err := parseAwardDate(awardDate)
	if err != nil {
		return nil, err
	}
	if err := s.checkType(ctx, awardTypeID); err != nil {
		return nil, err
	}

	a := &model.Award{
		ID:          awardID,
		AwardTypeID: awardTypeID,
		AwardDate:   date,
	}
	if err := s.awards.Update(ctx, a); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAwardNotFound
		}
		slog.ErrorContext(ctx, "failed to update award", "award_id", awardID, "error", err)
		return nil, fmt.Errorf("updating award: %w", err)
	}
	return a, nil
}

func (s *awardService) Delete(ctx context.Context, awardID int64) error {
	if !s.enabled() {
		return ErrRecordsDisabled
	}
	if err := s.awards.Delete(ctx, awardID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAwardNotFound
		}
		slog.ErrorContext(ctx, "failed to delete award", "award_id", awardID, "error", err)
		return fmt.Errorf("deleting award: %w", err)
	}
	return nil
}

// checkType rejects award type ids that do not exist, so a foreign key
// failure on write can only mean a missing employee.
func (s *awardService) checkType(ctx context.Context, awardTypeID int64) error {
	if _, err := s.types.GetByID(ctx, awardTypeID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return invalidRecord("award_type_id", "unknown award type %d", awardTypeID)
		}
		return fmt.Errorf("loading award type: %w", err)
	}
	return nil
}

func parseAwardDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, invalidRecord("award_date", "must not be blank")
	}
	for _, layout := range awardDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, invalidRecord("award_date", "invalid award date format %q", s)
}
