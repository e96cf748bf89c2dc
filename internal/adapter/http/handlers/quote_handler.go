package handlers

import (
	request "funeral_quote/internal/adapter/http/dto/request"
	response "funeral_quote/internal/adapter/http/dto/response"
	"funeral_quote/internal/domain/entities"
	"funeral_quote/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

// QuoteHandler drives a configuration session. Every mutation answers with
// the full priced view so the client never computes totals itself.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// StartSession godoc
// @Summary      Start a quote session
// @Tags         quotes
// @Produce      json
// @Success      201  {object}  response.QuoteResponse
// @Failure      503  {object}  pkg.HTTPError
// @Router       /quotes [post]
func (h *QuoteHandler) StartSession(c *gin.Context) {
	v, err := h.usecase.StartSession(c.Request.Context())
	h.respond(c, http.StatusCreated, v, err)
}

// GetQuote godoc
// @Summary      Priced state of a session
// @Tags         quotes
// @Produce      json
// @Param        session_id  path  string  true  "Session ID"
// @Success      200  {object}  response.QuoteResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{session_id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	v, err := h.usecase.GetQuote(c.Request.Context(), c.Param("session_id"))
	h.respond(c, http.StatusOK, v, err)
}

// SetCategory godoc
// @Summary      Switch category (resets plan, options and grades)
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                      true  "Session ID"
// @Param        body        body  request.SetCategoryRequest  true  "Category"
// @Success      200  {object}  response.QuoteResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /quotes/{session_id}/category [patch]
func (h *QuoteHandler) SetCategory(c *gin.Context) {
	var payload request.SetCategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	v, err := h.usecase.SetCategory(c.Request.Context(), c.Param("session_id"), entities.Category(payload.Category))
	h.respond(c, http.StatusOK, v, err)
}

// SetPlan godoc
// @Summary      Select a plan (prunes grades the plan does not allow)
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                  true  "Session ID"
// @Param        body        body  request.SetPlanRequest  true  "Plan"
// @Success      200  {object}  response.QuoteResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /quotes/{session_id}/plan [patch]
func (h *QuoteHandler) SetPlan(c *gin.Context) {
	var payload request.SetPlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	v, err := h.usecase.SetPlan(c.Request.Context(), c.Param("session_id"), entities.PlanID(payload.PlanID))
	h.respond(c, http.StatusOK, v, err)
}

// SetAttendees godoc
// @Summary      Select attendee tier (count is used for tier D)
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                       true  "Session ID"
// @Param        body        body  request.SetAttendeesRequest  true  "Tier"
// @Success      200  {object}  response.QuoteResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /quotes/{session_id}/attendees [patch]
func (h *QuoteHandler) SetAttendees(c *gin.Context) {
	var payload request.SetAttendeesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	v, err := h.usecase.SetAttendees(c.Request.Context(), c.Param("session_id"), entities.AttendeeTier(payload.Tier), payload.Count)
	h.respond(c, http.StatusOK, v, err)
}

// ToggleOption godoc
// @Summary      Toggle a checkbox or tier-dependent item
// @Tags         quotes
// @Produce      json
// @Param        session_id  path  string  true  "Session ID"
// @Param        item_id     path  int     true  "Item ID"
// @Success      200  {object}  response.QuoteResponse
// @Failure      422  {object}  pkg.HTTPError
// @Router       /quotes/{session_id}/options/{item_id}/toggle [post]
func (h *QuoteHandler) ToggleOption(c *gin.Context) {
	itemID, ok := parseIDParam(c, "item_id")
	if !ok {
		writeError(c, errInvalidItemID)
		return
	}
	v, err := h.usecase.ToggleOption(c.Request.Context(), c.Param("session_id"), int(itemID))
	h.respond(c, http.StatusOK, v, err)
}

// SetGrade godoc
// @Summary      Choose a grade for a dropdown item ("" clears)
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                   true  "Session ID"
// @Param        item_id     path  int                      true  "Item ID"
// @Param        body        body  request.SetGradeRequest  true  "Grade"
// @Success      200  {object}  response.QuoteResponse
// @Failure      422  {object}  pkg.HTTPError
// @Router       /quotes/{session_id}/grades/{item_id} [put]
func (h *QuoteHandler) SetGrade(c *gin.Context) {
	itemID, ok := parseIDParam(c, "item_id")
	if !ok {
		writeError(c, errInvalidItemID)
		return
	}
	var payload request.SetGradeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	v, err := h.usecase.SetGrade(c.Request.Context(), c.Param("session_id"), int(itemID), payload.ResolveGradeID())
	h.respond(c, http.StatusOK, v, err)
}

// SetFreeInputValue godoc
// @Summary      Override a free-input amount (unparsable text is 0)
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                       true  "Session ID"
// @Param        item_id     path  int                          true  "Item ID"
// @Param        body        body  request.SetFreeInputRequest  true  "Amount"
// @Success      200  {object}  response.QuoteResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /quotes/{session_id}/free-inputs/{item_id} [put]
func (h *QuoteHandler) SetFreeInputValue(c *gin.Context) {
	itemID, ok := parseIDParam(c, "item_id")
	if !ok {
		writeError(c, errInvalidItemID)
		return
	}
	var payload request.SetFreeInputRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	v, err := h.usecase.SetFreeInputValue(c.Request.Context(), c.Param("session_id"), int(itemID), payload.ResolveText())
	h.respond(c, http.StatusOK, v, err)
}

func (h *QuoteHandler) respond(c *gin.Context, status int, v usecase.QuoteView, err error) {
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	c.JSON(status, response.FromQuoteView(v))
}
