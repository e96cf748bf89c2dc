package handlers

import (
	request "funeral_quote/internal/adapter/http/dto/request"
	response "funeral_quote/internal/adapter/http/dto/response"
	"funeral_quote/internal/domain/entities"
	"funeral_quote/internal/usecase"
	"funeral_quote/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var errInvalidEstimateID = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_ID", "Estimate id must be a positive integer", http.StatusBadRequest)

// EstimateHandler saves configurations and loads them back.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// SaveEstimate godoc
// @Summary      Save the session as an estimate and hand it to the print view
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                       true   "Session ID"
// @Param        body        body  request.SaveEstimateRequest  false  "Customer info and document type"
// @Success      201  {object}  response.SavedEstimateResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{session_id}/estimates [post]
func (h *EstimateHandler) SaveEstimate(c *gin.Context) {
	var payload request.SaveEstimateRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			writeError(c, errInvalidPayload)
			return
		}
	}

	customer, err := payload.ResolveCustomerInfo()
	if err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	saved, err := h.usecase.SaveEstimate(
		c.Request.Context(),
		c.Param("session_id"),
		customer,
		entities.DocumentType(payload.ResolveDocumentType()),
	)
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSavedEstimate(saved))
}

// GetEstimate godoc
// @Summary      Stored estimate with its decoded content
// @Tags         estimates
// @Produce      json
// @Param        id  path  int  true  "Estimate ID"
// @Success      200  {object}  response.EstimateDetailResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /estimates/{id} [get]
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		writeError(c, errInvalidEstimateID)
		return
	}
	e, snap, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateDetail(e, snap))
}

// OpenInSession godoc
// @Summary      Load a stored estimate into a new quote session
// @Tags         estimates
// @Produce      json
// @Param        id  path  int  true  "Estimate ID"
// @Success      201  {object}  response.QuoteResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /estimates/{id}/session [post]
func (h *EstimateHandler) OpenInSession(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		writeError(c, errInvalidEstimateID)
		return
	}
	v, err := h.usecase.OpenInSession(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromQuoteView(v))
}
