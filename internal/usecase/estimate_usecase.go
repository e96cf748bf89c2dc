package usecase

import (
	"context"
	"errors"
	"funeral_quote/internal/domain/entities"
	"funeral_quote/internal/domain/pricing"
	"funeral_quote/internal/domain/printdata"
	"funeral_quote/internal/usecase/interfaces"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrEstimateNotFound    = errors.New("estimate not found")
	ErrInvalidEstimateID   = errors.New("invalid estimate id")
	ErrInvalidDocumentType = errors.New("invalid document type")
	ErrCorruptEstimate     = errors.New("estimate content cannot be decoded")
)

// SavedEstimate is the stored row plus the print payload handed to the print view.
type SavedEstimate struct {
	Estimate   entities.Estimate
	Snapshot   printdata.Snapshot
	PrintReady bool
}

// IEstimateUseCase saves configurations as estimates and re-opens them.
//
//   - SaveEstimate: price the session, persist it, hand the payload to the print view
//   - GetByID: load a stored estimate and decode its content
//   - OpenInSession: start a new session from a stored estimate

type IEstimateUseCase interface {
	SaveEstimate(ctx context.Context, sessionID string, customer entities.CustomerInfo, documentType entities.DocumentType) (SavedEstimate, error)
	GetByID(ctx context.Context, id int64) (entities.Estimate, printdata.Snapshot, error)
	OpenInSession(ctx context.Context, id int64) (QuoteView, error)
}

type EstimateUseCase struct {
	repo     interfaces.IEstimateRepository
	sessions interfaces.ISessionStore
	print    interfaces.IPrintChannel
	catalog  ICatalogUseCase
	tax      pricing.TaxPolicy
	metrics  interfaces.IMetricsRecorder
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(
	repo interfaces.IEstimateRepository,
	sessions interfaces.ISessionStore,
	printChannel interfaces.IPrintChannel,
	catalog ICatalogUseCase,
	tax pricing.TaxPolicy,
	metrics interfaces.IMetricsRecorder,
) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, sessions: sessions, print: printChannel, catalog: catalog, tax: tax, metrics: metrics}
}

func (u *EstimateUseCase) SaveEstimate(ctx context.Context, sessionID string, customer entities.CustomerInfo, documentType entities.DocumentType) (SavedEstimate, error) {
	if documentType == "" {
		documentType = entities.DocumentTypeQuote
	}
	if !documentType.Valid() {
		return SavedEstimate{}, ErrInvalidDocumentType
	}

	s, err := loadSession(ctx, u.sessions, sessionID)
	if err != nil {
		return SavedEstimate{}, err
	}
	plan, ok := s.Catalog.PlanByID(s.State.PlanID)
	if !ok {
		return SavedEstimate{}, ErrInvalidPlan
	}

	total := pricing.ComputeGrandTotal(plan, s.Catalog, s.State)
	snap := printdata.Snapshot{
		Plan:          plan,
		Items:         s.Catalog.Items,
		Selection:     s.State,
		TotalCost:     total,
		AttendeeLabel: pricing.AttendeeLabel(s.Catalog, s.State),
		CustomerInfo:  customer,
		DocumentType:  documentType,
	}
	content, err := printdata.Serialize(snap)
	if err != nil {
		return SavedEstimate{}, err
	}

	log.Infof("[estimate][usecase] save start session_id=%s plan=%s total=%d document_type=%s", s.ID, plan.ID, total, documentType)
	created, err := u.repo.Create(ctx, entities.Estimate{
		Content:      content,
		TotalPrice:   total,
		CustomerInfo: customer,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		log.Errorf("[estimate][usecase] repository create failed session_id=%s err=%v", s.ID, err)
		return SavedEstimate{}, err
	}

	id := created.ID
	snap.EstimateID = &id
	out := SavedEstimate{Estimate: created, Snapshot: snap}
	out.PrintReady = u.publish(ctx, snap)

	if u.metrics != nil {
		u.metrics.EstimateSaved(string(documentType), total)
	}
	log.Infof("[estimate][usecase] save success estimate_id=%d total=%d print_ready=%t", created.ID, total, out.PrintReady)
	return out, nil
}

// publish hands the payload to the print view. A failed hand-off does not undo
// the save; the estimate can be printed later by id.
func (u *EstimateUseCase) publish(ctx context.Context, snap printdata.Snapshot) bool {
	if u.print == nil {
		return false
	}
	raw, err := printdata.Serialize(snap)
	if err != nil {
		log.Warnf("[estimate][usecase] print payload encode failed err=%v", err)
		return false
	}
	if err := u.print.Write(ctx, raw); err != nil {
		log.Warnf("[estimate][usecase] print hand-off failed err=%v", err)
		return false
	}
	if u.metrics != nil {
		u.metrics.PrintPublished()
	}
	return true
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id int64) (entities.Estimate, printdata.Snapshot, error) {
	if id <= 0 {
		return entities.Estimate{}, printdata.Snapshot{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, printdata.Snapshot{}, err
	}
	if e.ID == 0 {
		return entities.Estimate{}, printdata.Snapshot{}, ErrEstimateNotFound
	}

	snap, err := printdata.Deserialize(e.Content)
	if err != nil {
		log.Warnf("[estimate][usecase] content decode failed estimate_id=%d err=%v", id, err)
		return entities.Estimate{}, printdata.Snapshot{}, ErrCorruptEstimate
	}
	estimateID := e.ID
	snap.EstimateID = &estimateID
	return e, snap, nil
}

// OpenInSession replaces a fresh session's state with the stored selection.
// The stored items are authoritative; plans come from the current catalog so
// the plan can still be changed, with the stored plan taking precedence.
func (u *EstimateUseCase) OpenInSession(ctx context.Context, id int64) (QuoteView, error) {
	if u.sessions == nil {
		return QuoteView{}, ErrSessionUnavailable
	}
	_, snap, err := u.GetByID(ctx, id)
	if err != nil {
		return QuoteView{}, err
	}

	var current entities.Catalog
	if u.catalog != nil {
		current, err = u.catalog.GetCatalog(ctx)
		if err != nil {
			log.Warnf("[estimate][usecase] current catalog unavailable, using stored plan only estimate_id=%d err=%v", id, err)
		}
	}

	now := time.Now().UTC()
	s := entities.QuoteSession{
		ID:        uuid.NewString(),
		Catalog:   mergeStoredCatalog(current, snap),
		State:     snap.Selection,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.sessions.Put(ctx, s); err != nil {
		return QuoteView{}, err
	}
	log.Infof("[estimate][usecase] estimate opened estimate_id=%d session_id=%s", id, s.ID)
	return buildQuoteView(s, u.tax), nil
}

func mergeStoredCatalog(current entities.Catalog, snap printdata.Snapshot) entities.Catalog {
	out := entities.Catalog{
		Items:           snap.Items,
		AttendeeOptions: current.AttendeeOptions,
	}
	replaced := false
	for _, p := range current.Plans {
		if p.ID == snap.Plan.ID {
			p = snap.Plan
			replaced = true
		}
		out.Plans = append(out.Plans, p)
	}
	if !replaced {
		out.Plans = append(out.Plans, snap.Plan)
	}
	return out
}
