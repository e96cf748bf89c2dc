package handlers

import (
	"errors"
	response "funeral_quote/internal/adapter/http/dto/response"
	"funeral_quote/internal/usecase"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// maxPrintPayload bounds PUT /print bodies; a full catalog snapshot is a few
// hundred KB at most.
const maxPrintPayload = 4 << 20

type PrintHandler struct {
	usecase usecase.IPrintUseCase
}

func NewPrintHandler(uc usecase.IPrintUseCase) *PrintHandler {
	return &PrintHandler{usecase: uc}
}

// GetPrintData godoc
// @Summary      Document to print (last published payload)
// @Tags         print
// @Produce      json
// @Success      200  {object}  response.PrintResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /print [get]
func (h *PrintHandler) GetPrintData(c *gin.Context) {
	doc, err := h.usecase.Fetch(c.Request.Context())
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPrintDocument(doc))
}

// PutPrintData godoc
// @Summary      Publish a serialized configuration to the print view
// @Tags         print
// @Accept       json
// @Param        body  body  string  true  "Serialized payload"
// @Success      204
// @Failure      400  {object}  pkg.HTTPError
// @Router       /print [put]
func (h *PrintHandler) PutPrintData(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxPrintPayload+1))
	if err != nil || len(raw) > maxPrintPayload {
		writeError(c, errInvalidPayload)
		return
	}
	if err := h.usecase.Publish(c.Request.Context(), string(raw)); err != nil {
		if errors.Is(err, usecase.ErrNoPrintData) {
			writeError(c, errInvalidPayload)
			return
		}
		writeError(c, mapError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
