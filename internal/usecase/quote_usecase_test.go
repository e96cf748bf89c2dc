package usecase

import (
	"context"
	"errors"
	"testing"

	"funeral_quote/internal/domain/entities"
	"funeral_quote/internal/domain/pricing"
	mock_interfaces "funeral_quote/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newQuoteUseCase(t *testing.T) (*QuoteUseCase, *memSessions) {
	t.Helper()
	store := newMemSessions()
	return NewQuoteUseCase(staticCatalog{c: fixtureCatalog()}, store, pricing.DefaultTaxPolicy(), nil), store
}

func startSession(t *testing.T, uc *QuoteUseCase) QuoteView {
	t.Helper()
	v, err := uc.StartSession(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return v
}

func TestQuoteUseCase_StartSession(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		metrics := mock_interfaces.NewMockIMetricsRecorder(ctrl)
		metrics.EXPECT().SessionStarted()

		store := newMemSessions()
		uc := NewQuoteUseCase(staticCatalog{c: fixtureCatalog()}, store, pricing.DefaultTaxPolicy(), metrics)

		v, err := uc.StartSession(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.SessionID == "" {
			t.Fatalf("expected generated session id")
		}
		if v.State.Category != entities.CategoryFuneral || v.State.PlanID != "a" || v.State.AttendeeTier != entities.TierA {
			t.Fatalf("unexpected default state: %+v", v.State)
		}
		if v.LiveTotal != 800000 {
			t.Fatalf("expected plan price as live total, got %d", v.LiveTotal)
		}
		if v.Document.GrandTotal != 880000 {
			t.Fatalf("expected taxed total 880000, got %d", v.Document.GrandTotal)
		}
		if len(v.Plans) != 3 {
			t.Fatalf("expected 3 funeral plans, got %d", len(v.Plans))
		}
		if _, ok := store.data[v.SessionID]; !ok {
			t.Fatalf("expected session to be stored")
		}
	})

	t.Run("catalog error", func(t *testing.T) {
		uc := NewQuoteUseCase(staticCatalog{err: ErrCatalogUnavailable}, newMemSessions(), pricing.DefaultTaxPolicy(), nil)
		_, err := uc.StartSession(context.Background())
		if !errors.Is(err, ErrCatalogUnavailable) {
			t.Fatalf("expected ErrCatalogUnavailable, got %v", err)
		}
	})

	t.Run("store error", func(t *testing.T) {
		store := newMemSessions()
		store.err = errors.New("store")
		uc := NewQuoteUseCase(staticCatalog{c: fixtureCatalog()}, store, pricing.DefaultTaxPolicy(), nil)
		_, err := uc.StartSession(context.Background())
		if err == nil || err.Error() != "store" {
			t.Fatalf("expected store error, got %v", err)
		}
	})

	t.Run("no store", func(t *testing.T) {
		uc := NewQuoteUseCase(staticCatalog{c: fixtureCatalog()}, nil, pricing.DefaultTaxPolicy(), nil)
		_, err := uc.StartSession(context.Background())
		if !errors.Is(err, ErrSessionUnavailable) {
			t.Fatalf("expected ErrSessionUnavailable, got %v", err)
		}
	})
}

func TestQuoteUseCase_GetQuote(t *testing.T) {
	uc, _ := newQuoteUseCase(t)

	if _, err := uc.GetQuote(context.Background(), "  "); !errors.Is(err, ErrInvalidSessionID) {
		t.Fatalf("expected ErrInvalidSessionID, got %v", err)
	}
	if _, err := uc.GetQuote(context.Background(), "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	v := startSession(t, uc)
	got, err := uc.GetQuote(context.Background(), " "+v.SessionID+" ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.SessionID != v.SessionID {
		t.Fatalf("expected same session, got %s", got.SessionID)
	}
}

func TestQuoteUseCase_EndToEnd(t *testing.T) {
	uc, _ := newQuoteUseCase(t)
	ctx := context.Background()
	id := startSession(t, uc).SessionID

	if _, err := uc.SetAttendees(ctx, id, entities.TierC, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := uc.ToggleOption(ctx, id, 22)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.LiveTotal != 1600000 {
		t.Fatalf("expected 1600000, got %d", v.LiveTotal)
	}

	v, err = uc.SetAttendees(ctx, id, entities.TierD, "12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.LiveTotal != 800000+1200000*12 {
		t.Fatalf("unexpected tier D total %d", v.LiveTotal)
	}
	if v.AttendeeLabel != "自由入力（12名）" {
		t.Fatalf("unexpected label %q", v.AttendeeLabel)
	}

	v, err = uc.SetFreeInputValue(ctx, id, 40, "-50000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.State.FreeInputValues[40] != -50000 {
		t.Fatalf("expected discount to be stored, got %+v", v.State.FreeInputValues)
	}

	v, err = uc.SetFreeInputValue(ctx, id, 40, "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.State.FreeInputValues[40] != 0 {
		t.Fatalf("expected unparsable input to be 0, got %d", v.State.FreeInputValues[40])
	}
}

func TestQuoteUseCase_SetCategory(t *testing.T) {
	uc, _ := newQuoteUseCase(t)
	ctx := context.Background()
	id := startSession(t, uc).SessionID

	if _, err := uc.SetCategory(ctx, id, "wedding"); !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}

	if _, err := uc.ToggleOption(ctx, id, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := uc.SetCategory(ctx, id, entities.CategoryCremation)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.State.PlanID != "d" || len(v.State.SelectedOptions) != 0 {
		t.Fatalf("unexpected state after category change: %+v", v.State)
	}
}

func TestQuoteUseCase_SetPlan(t *testing.T) {
	uc, _ := newQuoteUseCase(t)
	ctx := context.Background()
	id := startSession(t, uc).SessionID

	if _, err := uc.SetPlan(ctx, id, "zzz"); !errors.Is(err, ErrInvalidPlan) {
		t.Fatalf("expected ErrInvalidPlan, got %v", err)
	}
	if _, err := uc.SetPlan(ctx, id, "d"); !errors.Is(err, ErrInvalidPlan) {
		t.Fatalf("expected ErrInvalidPlan for plan of another category, got %v", err)
	}

	if _, err := uc.SetGrade(ctx, id, 5, "green"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := uc.SetPlan(ctx, id, "b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.State.SelectedGrades[5] != "green" {
		t.Fatalf("expected grade retained on plan b")
	}
	v, err = uc.SetPlan(ctx, id, "c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := v.State.SelectedGrades[5]; ok {
		t.Fatalf("expected grade pruned on plan c")
	}
}

func TestQuoteUseCase_ItemValidation(t *testing.T) {
	uc, _ := newQuoteUseCase(t)
	ctx := context.Background()
	id := startSession(t, uc).SessionID

	cases := []struct {
		name string
		call func() error
		want error
	}{
		{"toggle unknown item", func() error { _, err := uc.ToggleOption(ctx, id, 999); return err }, ErrItemNotFound},
		{"toggle dropdown", func() error { _, err := uc.ToggleOption(ctx, id, 5); return err }, ErrItemTypeMismatch},
		{"grade on checkbox", func() error { _, err := uc.SetGrade(ctx, id, 10, "x"); return err }, ErrItemTypeMismatch},
		{"unknown grade", func() error { _, err := uc.SetGrade(ctx, id, 5, "gold"); return err }, ErrGradeNotEligible},
		{"free input on checkbox", func() error { _, err := uc.SetFreeInputValue(ctx, id, 10, "1"); return err }, ErrItemTypeMismatch},
		{"bad tier", func() error { _, err := uc.SetAttendees(ctx, id, "E", ""); return err }, ErrInvalidTier},
		{"count above limit", func() error { _, err := uc.SetAttendees(ctx, id, entities.TierD, "100001"); return err }, ErrInvalidAttendees},
		{"negative count", func() error { _, err := uc.SetAttendees(ctx, id, entities.TierD, "-5"); return err }, ErrInvalidAttendees},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.call(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("ineligible item", func(t *testing.T) {
		if _, err := uc.SetPlan(ctx, id, "c"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.ToggleOption(ctx, id, 10); !errors.Is(err, ErrItemNotEligible) {
			t.Fatalf("expected ErrItemNotEligible, got %v", err)
		}
	})

	t.Run("empty grade clears", func(t *testing.T) {
		if _, err := uc.SetGrade(ctx, id, 5, "white"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		v, err := uc.SetGrade(ctx, id, 5, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(v.State.SelectedGrades) != 0 {
			t.Fatalf("expected grade cleared, got %+v", v.State.SelectedGrades)
		}
	})
}

func TestQuoteUseCase_ToggleTwiceRestores(t *testing.T) {
	uc, _ := newQuoteUseCase(t)
	ctx := context.Background()
	id := startSession(t, uc).SessionID

	if _, err := uc.ToggleOption(ctx, id, 30); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.ToggleOption(ctx, id, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := uc.ToggleOption(ctx, id, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(v.State.SelectedOptions) != 1 || !v.State.SelectedOptions.Has(30) {
		t.Fatalf("unexpected options: %+v", v.State.SelectedOptions)
	}
}
