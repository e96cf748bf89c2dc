package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"funeral_quote/internal/adapter/http/handlers/mocks"
	"funeral_quote/internal/domain/entities"
	"funeral_quote/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func quoteRouter(h *QuoteHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/quotes", h.StartSession)
	r.GET("/v1/quotes/:session_id", h.GetQuote)
	r.PATCH("/v1/quotes/:session_id/category", h.SetCategory)
	r.PATCH("/v1/quotes/:session_id/plan", h.SetPlan)
	r.PATCH("/v1/quotes/:session_id/attendees", h.SetAttendees)
	r.POST("/v1/quotes/:session_id/options/:item_id/toggle", h.ToggleOption)
	r.PUT("/v1/quotes/:session_id/grades/:item_id", h.SetGrade)
	r.PUT("/v1/quotes/:session_id/free-inputs/:item_id", h.SetFreeInputValue)
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleView() usecase.QuoteView {
	return usecase.QuoteView{
		SessionID: "s1",
		State: &entities.SelectionState{
			Category:        entities.CategoryFuneral,
			PlanID:          "a",
			AttendeeTier:    entities.TierC,
			SelectedOptions: entities.NewIDSet(22),
		},
		Plan:      entities.Plan{ID: "a", Price: 800000},
		LiveTotal: 1600000,
	}
}

func TestQuoteHandler_StartSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().StartSession(gomock.Any()).Return(sampleView(), nil)

		w := doJSON(quoteRouter(NewQuoteHandler(uc)), http.MethodPost, "/v1/quotes", "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["session_id"] != "s1" || body["live_total"] != float64(1600000) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("catalog unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().StartSession(gomock.Any()).Return(usecase.QuoteView{}, usecase.ErrCatalogUnavailable)

		w := doJSON(quoteRouter(NewQuoteHandler(uc)), http.MethodPost, "/v1/quotes", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_GetQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	uc.EXPECT().GetQuote(gomock.Any(), "gone").Return(usecase.QuoteView{}, usecase.ErrSessionNotFound)
	uc.EXPECT().GetQuote(gomock.Any(), "s1").Return(sampleView(), nil)
	r := quoteRouter(NewQuoteHandler(uc))

	if w := doJSON(r, http.MethodGet, "/v1/quotes/gone", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	w := doJSON(r, http.MethodGet, "/v1/quotes/s1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Selection struct {
			SelectedOptions []int `json:"selected_options"`
		} `json:"selection"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body.Selection.SelectedOptions) != 1 || body.Selection.SelectedOptions[0] != 22 {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestQuoteHandler_Mutations(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().SetCategory(gomock.Any(), "s1", entities.CategoryCremation).Return(sampleView(), nil)
		uc.EXPECT().SetCategory(gomock.Any(), "s1", entities.Category("wedding")).Return(usecase.QuoteView{}, usecase.ErrInvalidCategory)
		r := quoteRouter(NewQuoteHandler(uc))

		if w := doJSON(r, http.MethodPatch, "/v1/quotes/s1/category", `{"category":"cremation"}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w := doJSON(r, http.MethodPatch, "/v1/quotes/s1/category", `{"category":"wedding"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if w := doJSON(r, http.MethodPatch, "/v1/quotes/s1/category", `{}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for missing category, got %d", w.Code)
		}
	})

	t.Run("plan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().SetPlan(gomock.Any(), "s1", entities.PlanID("b")).Return(sampleView(), nil)
		r := quoteRouter(NewQuoteHandler(uc))

		if w := doJSON(r, http.MethodPatch, "/v1/quotes/s1/plan", `{"plan_id":"b"}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w := doJSON(r, http.MethodPatch, "/v1/quotes/s1/plan", "{"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("attendees", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().SetAttendees(gomock.Any(), "s1", entities.TierD, "150").Return(sampleView(), nil)
		r := quoteRouter(NewQuoteHandler(uc))

		if w := doJSON(r, http.MethodPatch, "/v1/quotes/s1/attendees", `{"tier":"D","count":"150"}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w := doJSON(r, http.MethodPatch, "/v1/quotes/s1/attendees", `{"tier":"D","count":"10000000000000000"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for an oversized count, got %d", w.Code)
		}
	})

	t.Run("attendees out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().SetAttendees(gomock.Any(), "s1", entities.TierD, "200000").Return(usecase.QuoteView{}, usecase.ErrInvalidAttendees)
		r := quoteRouter(NewQuoteHandler(uc))

		if w := doJSON(r, http.MethodPatch, "/v1/quotes/s1/attendees", `{"tier":"D","count":"200000"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("toggle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().ToggleOption(gomock.Any(), "s1", 22).Return(sampleView(), nil)
		uc.EXPECT().ToggleOption(gomock.Any(), "s1", 10).Return(usecase.QuoteView{}, usecase.ErrItemNotEligible)
		uc.EXPECT().ToggleOption(gomock.Any(), "s1", 5).Return(usecase.QuoteView{}, usecase.ErrItemTypeMismatch)
		r := quoteRouter(NewQuoteHandler(uc))

		if w := doJSON(r, http.MethodPost, "/v1/quotes/s1/options/22/toggle", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w := doJSON(r, http.MethodPost, "/v1/quotes/s1/options/10/toggle", ""); w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		if w := doJSON(r, http.MethodPost, "/v1/quotes/s1/options/5/toggle", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if w := doJSON(r, http.MethodPost, "/v1/quotes/s1/options/abc/toggle", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for bad item id, got %d", w.Code)
		}
	})

	t.Run("grade", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().SetGrade(gomock.Any(), "s1", 5, "green").Return(sampleView(), nil)
		uc.EXPECT().SetGrade(gomock.Any(), "s1", 5, "").Return(sampleView(), nil)
		r := quoteRouter(NewQuoteHandler(uc))

		if w := doJSON(r, http.MethodPut, "/v1/quotes/s1/grades/5", `{"grade_id":"green"}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w := doJSON(r, http.MethodPut, "/v1/quotes/s1/grades/5", `{"grade_id":""}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200 for clearing, got %d", w.Code)
		}
		if w := doJSON(r, http.MethodPut, "/v1/quotes/s1/grades/5", `{}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for missing grade_id, got %d", w.Code)
		}
	})

	t.Run("free input", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().SetFreeInputValue(gomock.Any(), "s1", 40, "-50000").Return(sampleView(), nil).Times(2)
		r := quoteRouter(NewQuoteHandler(uc))

		if w := doJSON(r, http.MethodPut, "/v1/quotes/s1/free-inputs/40", `{"value":"-50000"}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w := doJSON(r, http.MethodPut, "/v1/quotes/s1/free-inputs/40", `{"value":-50000}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
