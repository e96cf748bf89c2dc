package handlers

import (
	response "funeral_quote/internal/adapter/http/dto/response"
	"funeral_quote/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// GetCatalog godoc
// @Summary      Current catalog
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.CatalogResponse
// @Failure      503  {object}  pkg.HTTPError
// @Router       /catalog [get]
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	catalog, err := h.usecase.GetCatalog(c.Request.Context())
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCatalog(catalog))
}
