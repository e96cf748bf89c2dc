package usecase

import (
	"context"
	"errors"
	"funeral_quote/internal/domain/entities"
	"funeral_quote/internal/domain/pricing"
	"funeral_quote/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrSessionNotFound    = errors.New("quote session not found")
	ErrInvalidSessionID   = errors.New("invalid session id")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrInvalidPlan        = errors.New("invalid plan")
	ErrInvalidTier        = errors.New("invalid attendee tier")
	ErrInvalidAttendees   = errors.New("attendee count out of range")
	ErrItemNotFound       = errors.New("catalog item not found")
	ErrItemNotEligible    = errors.New("catalog item not available for the selected plan")
	ErrItemTypeMismatch   = errors.New("operation not supported for this item type")
	ErrGradeNotEligible   = errors.New("grade not available for the selected plan")
	ErrSessionUnavailable = errors.New("session store not configured")
)

// QuoteView is a session's state with everything priced.
type QuoteView struct {
	SessionID     string
	State         *entities.SelectionState
	Plan          entities.Plan
	Plans         []entities.Plan
	Items         []pricing.ItemView
	AttendeeLabel string
	// LiveTotal is the untaxed running total shown while configuring.
	LiveTotal int64
	// Document is the taxed split used on printed quotes and invoices.
	Document pricing.TaxSplit
}

// IQuoteUseCase drives a configuration session.
type IQuoteUseCase interface {
	StartSession(ctx context.Context) (QuoteView, error)
	GetQuote(ctx context.Context, sessionID string) (QuoteView, error)
	SetCategory(ctx context.Context, sessionID string, category entities.Category) (QuoteView, error)
	SetPlan(ctx context.Context, sessionID string, planID entities.PlanID) (QuoteView, error)
	SetAttendees(ctx context.Context, sessionID string, tier entities.AttendeeTier, count string) (QuoteView, error)
	ToggleOption(ctx context.Context, sessionID string, itemID int) (QuoteView, error)
	SetGrade(ctx context.Context, sessionID string, itemID int, gradeID string) (QuoteView, error)
	SetFreeInputValue(ctx context.Context, sessionID string, itemID int, text string) (QuoteView, error)
}

type QuoteUseCase struct {
	catalog  ICatalogUseCase
	sessions interfaces.ISessionStore
	tax      pricing.TaxPolicy
	metrics  interfaces.IMetricsRecorder
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(catalog ICatalogUseCase, sessions interfaces.ISessionStore, tax pricing.TaxPolicy, metrics interfaces.IMetricsRecorder) *QuoteUseCase {
	return &QuoteUseCase{catalog: catalog, sessions: sessions, tax: tax, metrics: metrics}
}

func (u *QuoteUseCase) StartSession(ctx context.Context) (QuoteView, error) {
	if u.sessions == nil {
		return QuoteView{}, ErrSessionUnavailable
	}
	c, err := u.catalog.GetCatalog(ctx)
	if err != nil {
		return QuoteView{}, err
	}

	now := time.Now().UTC()
	s := entities.QuoteSession{
		ID:        uuid.NewString(),
		Catalog:   c,
		State:     entities.NewSelectionState(c),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.sessions.Put(ctx, s); err != nil {
		log.Errorf("[quote][usecase] session put failed session_id=%s err=%v", s.ID, err)
		return QuoteView{}, err
	}
	if u.metrics != nil {
		u.metrics.SessionStarted()
	}
	log.Infof("[quote][usecase] session started session_id=%s plan=%s", s.ID, s.State.PlanID)
	return buildQuoteView(s, u.tax), nil
}

func (u *QuoteUseCase) GetQuote(ctx context.Context, sessionID string) (QuoteView, error) {
	s, err := u.load(ctx, sessionID)
	if err != nil {
		return QuoteView{}, err
	}
	return buildQuoteView(s, u.tax), nil
}

func (u *QuoteUseCase) SetCategory(ctx context.Context, sessionID string, category entities.Category) (QuoteView, error) {
	if !category.Valid() {
		return QuoteView{}, ErrInvalidCategory
	}
	return u.mutate(ctx, sessionID, func(s *entities.QuoteSession) error {
		s.State.SetCategory(s.Catalog, category)
		return nil
	})
}

func (u *QuoteUseCase) SetPlan(ctx context.Context, sessionID string, planID entities.PlanID) (QuoteView, error) {
	return u.mutate(ctx, sessionID, func(s *entities.QuoteSession) error {
		plan, ok := s.Catalog.PlanByID(planID)
		if !ok || plan.Category != s.State.Category {
			return ErrInvalidPlan
		}
		s.State.SetPlan(s.Catalog, planID)
		return nil
	})
}

func (u *QuoteUseCase) SetAttendees(ctx context.Context, sessionID string, tier entities.AttendeeTier, count string) (QuoteView, error) {
	if !tier.Valid() {
		return QuoteView{}, ErrInvalidTier
	}
	if tier == entities.TierD {
		if n := entities.ParseInteger(count); n < 0 || n > entities.MaxAttendeeCount {
			return QuoteView{}, ErrInvalidAttendees
		}
	}
	return u.mutate(ctx, sessionID, func(s *entities.QuoteSession) error {
		s.State.SetAttendeeTier(tier)
		s.State.SetCustomAttendeeCount(count)
		return nil
	})
}

func (u *QuoteUseCase) ToggleOption(ctx context.Context, sessionID string, itemID int) (QuoteView, error) {
	return u.mutate(ctx, sessionID, func(s *entities.QuoteSession) error {
		item, err := eligibleItem(*s, itemID)
		if err != nil {
			return err
		}
		if item.Type != entities.ItemTypeCheckbox && item.Type != entities.ItemTypeTierDependent {
			return ErrItemTypeMismatch
		}
		s.State.ToggleOption(itemID)
		return nil
	})
}

func (u *QuoteUseCase) SetGrade(ctx context.Context, sessionID string, itemID int, gradeID string) (QuoteView, error) {
	gradeID = strings.TrimSpace(gradeID)
	return u.mutate(ctx, sessionID, func(s *entities.QuoteSession) error {
		item, err := eligibleItem(*s, itemID)
		if err != nil {
			return err
		}
		if !item.HasGrades() {
			return ErrItemTypeMismatch
		}
		if gradeID != "" && !pricing.IsGradeEligible(item, gradeID, s.State.PlanID) {
			return ErrGradeNotEligible
		}
		s.State.SetGrade(itemID, gradeID)
		return nil
	})
}

// SetFreeInputValue parses text leniently: anything that is not a number is 0.
func (u *QuoteUseCase) SetFreeInputValue(ctx context.Context, sessionID string, itemID int, text string) (QuoteView, error) {
	return u.mutate(ctx, sessionID, func(s *entities.QuoteSession) error {
		item, err := eligibleItem(*s, itemID)
		if err != nil {
			return err
		}
		if item.Type != entities.ItemTypeFreeInput {
			return ErrItemTypeMismatch
		}
		s.State.SetFreeInputValue(itemID, entities.ParseInteger(text))
		return nil
	})
}

func (u *QuoteUseCase) load(ctx context.Context, sessionID string) (entities.QuoteSession, error) {
	return loadSession(ctx, u.sessions, sessionID)
}

func (u *QuoteUseCase) mutate(ctx context.Context, sessionID string, apply func(s *entities.QuoteSession) error) (QuoteView, error) {
	s, err := u.load(ctx, sessionID)
	if err != nil {
		return QuoteView{}, err
	}
	if err := apply(&s); err != nil {
		return QuoteView{}, err
	}
	s.UpdatedAt = time.Now().UTC()
	if err := u.sessions.Put(ctx, s); err != nil {
		log.Errorf("[quote][usecase] session put failed session_id=%s err=%v", s.ID, err)
		return QuoteView{}, err
	}
	return buildQuoteView(s, u.tax), nil
}

func loadSession(ctx context.Context, store interfaces.ISessionStore, sessionID string) (entities.QuoteSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.QuoteSession{}, ErrInvalidSessionID
	}
	if store == nil {
		return entities.QuoteSession{}, ErrSessionUnavailable
	}
	s, err := store.Get(ctx, sessionID)
	if err != nil {
		return entities.QuoteSession{}, err
	}
	if s.ID == "" || s.State == nil {
		return entities.QuoteSession{}, ErrSessionNotFound
	}
	return s, nil
}

func eligibleItem(s entities.QuoteSession, itemID int) (entities.CatalogItem, error) {
	item, ok := s.Catalog.ItemByID(itemID)
	if !ok {
		return entities.CatalogItem{}, ErrItemNotFound
	}
	if !pricing.IsItemEligible(item, s.State.PlanID) {
		return entities.CatalogItem{}, ErrItemNotEligible
	}
	return item, nil
}

func buildQuoteView(s entities.QuoteSession, tax pricing.TaxPolicy) QuoteView {
	v := QuoteView{
		SessionID:     s.ID,
		State:         s.State,
		Plans:         s.Catalog.PlansIn(s.State.Category),
		Items:         pricing.PricedItems(s.Catalog, s.State),
		AttendeeLabel: pricing.AttendeeLabel(s.Catalog, s.State),
	}
	plan, ok := s.Catalog.PlanByID(s.State.PlanID)
	if !ok {
		// No plan to price against; show items at their live prices only.
		plan = entities.Plan{ID: s.State.PlanID}
	}
	v.Plan = plan
	v.LiveTotal = pricing.ComputeGrandTotal(plan, s.Catalog, s.State)
	v.Document = pricing.ComputeTaxSplitTotals(plan, s.Catalog, s.State, tax)
	return v
}
