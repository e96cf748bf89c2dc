package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"funeral_quote/internal/domain/entities"
	"funeral_quote/internal/domain/pricing"
	"funeral_quote/internal/domain/printdata"
	mock_interfaces "funeral_quote/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func seededSession(t *testing.T, store *memSessions) string {
	t.Helper()
	c := fixtureCatalog()
	st := entities.NewSelectionState(c)
	st.SetAttendeeTier(entities.TierC)
	st.ToggleOption(22)
	st.ToggleOption(30)
	st.SetGrade(5, "green")
	st.SetFreeInputValue(40, -100000)
	s := entities.QuoteSession{ID: "sess-1", Catalog: c, State: st, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	if err := store.Put(context.Background(), s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s.ID
}

func TestEstimateUseCase_SaveEstimate(t *testing.T) {
	customer := entities.CustomerInfo{"name": "山田 太郎"}

	t.Run("invalid document type", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, newMemSessions(), nil, nil, pricing.DefaultTaxPolicy(), nil)
		_, err := uc.SaveEstimate(context.Background(), "sess-1", customer, "receipt")
		if !errors.Is(err, ErrInvalidDocumentType) {
			t.Fatalf("expected ErrInvalidDocumentType, got %v", err)
		}
	})

	t.Run("session not found", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, newMemSessions(), nil, nil, pricing.DefaultTaxPolicy(), nil)
		_, err := uc.SaveEstimate(context.Background(), "sess-1", customer, entities.DocumentTypeQuote)
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		store := newMemSessions()
		id := seededSession(t, store)
		uc := NewEstimateUseCase(repo, store, nil, nil, pricing.DefaultTaxPolicy(), nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, errors.New("db"))

		_, err := uc.SaveEstimate(context.Background(), id, customer, entities.DocumentTypeQuote)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("save success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		channel := mock_interfaces.NewMockIPrintChannel(ctrl)
		metrics := mock_interfaces.NewMockIMetricsRecorder(ctrl)
		store := newMemSessions()
		id := seededSession(t, store)
		uc := NewEstimateUseCase(repo, store, channel, nil, pricing.DefaultTaxPolicy(), metrics)

		// 800000 plan + 800000 food + 75000 cremation + 300000 altar - 100000 discount
		const live = int64(1875000)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.ID != 0 || e.TotalPrice != live || e.CustomerInfo["name"] != "山田 太郎" {
					t.Fatalf("unexpected estimate: %+v", e)
				}
				snap, err := printdata.Deserialize(e.Content)
				if err != nil {
					t.Fatalf("content must decode: %v", err)
				}
				if snap.EstimateID != nil {
					t.Fatalf("stored content must not carry an id")
				}
				if snap.DocumentType != entities.DocumentTypeInvoice || snap.TotalCost != live {
					t.Fatalf("unexpected snapshot: %+v", snap)
				}
				if len(snap.Items) != len(fixtureCatalog().Items) {
					t.Fatalf("expected the complete catalog in content")
				}
				e.ID = 17
				return e, nil
			},
		)
		channel.EXPECT().Write(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, raw string) error {
			snap, err := printdata.Deserialize(raw)
			if err != nil {
				t.Fatalf("print payload must decode: %v", err)
			}
			if snap.EstimateID == nil || *snap.EstimateID != 17 {
				t.Fatalf("print payload must carry the assigned id")
			}
			return nil
		})
		metrics.EXPECT().PrintPublished()
		metrics.EXPECT().EstimateSaved("invoice", live)

		res, err := uc.SaveEstimate(context.Background(), id, customer, entities.DocumentTypeInvoice)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Estimate.ID != 17 || !res.PrintReady {
			t.Fatalf("unexpected result: %+v", res)
		}
		if res.Snapshot.AttendeeLabel != "〜100名" {
			t.Fatalf("unexpected label %q", res.Snapshot.AttendeeLabel)
		}
	})

	t.Run("print hand-off failure does not fail the save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		channel := mock_interfaces.NewMockIPrintChannel(ctrl)
		store := newMemSessions()
		id := seededSession(t, store)
		uc := NewEstimateUseCase(repo, store, channel, nil, pricing.DefaultTaxPolicy(), nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Estimate{ID: 3}, nil)
		channel.EXPECT().Write(gomock.Any(), gomock.Any()).Return(errors.New("redis"))

		res, err := uc.SaveEstimate(context.Background(), id, nil, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PrintReady {
			t.Fatalf("expected print not ready")
		}
		if res.Snapshot.DocumentType != entities.DocumentTypeQuote {
			t.Fatalf("expected quote by default, got %s", res.Snapshot.DocumentType)
		}
	})
}

func TestEstimateUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil, nil, pricing.DefaultTaxPolicy(), nil)
		_, _, err := uc.GetByID(context.Background(), 0)
		if !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, nil, nil, pricing.DefaultTaxPolicy(), nil)
		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Estimate{}, errors.New("db"))

		_, _, err := uc.GetByID(context.Background(), 1)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, nil, nil, pricing.DefaultTaxPolicy(), nil)
		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Estimate{}, nil)

		_, _, err := uc.GetByID(context.Background(), 1)
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("corrupt content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, nil, nil, pricing.DefaultTaxPolicy(), nil)
		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Estimate{ID: 1, Content: "{"}, nil)

		_, _, err := uc.GetByID(context.Background(), 1)
		if !errors.Is(err, ErrCorruptEstimate) {
			t.Fatalf("expected ErrCorruptEstimate, got %v", err)
		}
	})

	t.Run("success injects id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, nil, nil, pricing.DefaultTaxPolicy(), nil)

		c := fixtureCatalog()
		content, err := printdata.Serialize(printdata.Snapshot{Plan: c.Plans[0], Items: c.Items, Selection: entities.NewSelectionState(c)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		repo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.Estimate{ID: 9, Content: content, TotalPrice: 800000}, nil)

		e, snap, err := uc.GetByID(context.Background(), 9)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.TotalPrice != 800000 || snap.EstimateID == nil || *snap.EstimateID != 9 {
			t.Fatalf("unexpected result: %+v %+v", e, snap)
		}
	})
}

func TestEstimateUseCase_OpenInSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
	store := newMemSessions()

	c := fixtureCatalog()
	st := entities.NewSelectionState(c)
	st.ToggleOption(10)
	st.SetGrade(5, "white")
	stored := c.Plans[0]
	stored.Price = 750000 // price at the time the estimate was saved
	content, err := printdata.Serialize(printdata.Snapshot{Plan: stored, Items: c.Items, Selection: st})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repo.EXPECT().GetByID(gomock.Any(), int64(4)).Return(entities.Estimate{ID: 4, Content: content}, nil)

	uc := NewEstimateUseCase(repo, store, nil, staticCatalog{c: c}, pricing.DefaultTaxPolicy(), nil)
	v, err := uc.OpenInSession(context.Background(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.SessionID == "" {
		t.Fatalf("expected a new session")
	}
	if !v.State.SelectedOptions.Has(10) || v.State.SelectedGrades[5] != "white" {
		t.Fatalf("expected stored selection, got %+v", v.State)
	}
	if v.LiveTotal != 750000+50000+100000 {
		t.Fatalf("expected stored plan price to be used, got %d", v.LiveTotal)
	}
	if len(v.Plans) != 3 {
		t.Fatalf("expected current funeral plans to be selectable, got %d", len(v.Plans))
	}

	sess, _ := store.Get(context.Background(), v.SessionID)
	if sess.ID == "" {
		t.Fatalf("expected session to be stored")
	}
}

func TestMergeStoredCatalog_AddsMissingPlan(t *testing.T) {
	snap := printdata.Snapshot{Plan: entities.Plan{ID: "legacy", Category: entities.CategoryFuneral}}
	out := mergeStoredCatalog(entities.Catalog{}, snap)
	if len(out.Plans) != 1 || out.Plans[0].ID != "legacy" {
		t.Fatalf("unexpected plans: %+v", out.Plans)
	}
}
