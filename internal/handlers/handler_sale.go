package handlers

import (
	"net/http"

	portssvc "github.com/alfadli/hrm_backend/internal/core/ports/services"
	"github.com/alfadli/hrm_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// saleHandler handles HTTP requests related to sales.
type saleHandler struct {
	saleService portssvc.SaleSvcFacade
}

func registerSaleRoutes(rg *gin.RouterGroup, saleService portssvc.SaleSvcFacade) {
	h := &saleHandler{saleService: saleService}

	sales := rg.Group("/sales")
	{
		sales.POST("", h.createSale)
		sales.GET("", h.listSales)
		sales.GET("/summary", h.getSalesSummary)
		sales.GET("/:sale_id", h.getSale)
		sales.PATCH("/:sale_id", h.updateSale)
		sales.DELETE("/:sale_id", h.deleteSale)
	}
}

// createSale godoc
// @Summary Record a sale
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body dto.CreateSaleRequest true "Sale details"
// @Success 201 {object} domain.Sale
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales [post]
func (h *saleHandler) createSale(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}
	var req dto.CreateSaleRequest
	if !bindJSON(c, &req) {
		return
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), identity, req)
	if err != nil {
		respondError(c, err, "create sale")
		return
	}
	c.JSON(http.StatusCreated, sale)
}

// listSales godoc
// @Summary List sales
// @Tags sales
// @Produce json
// @Param branchId query string false "Branch ID"
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Success 200 {array} domain.Sale
// @Security BearerAuth
// @Router /sales [get]
func (h *saleHandler) listSales(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}
	var params dto.LedgerParams
	if !bindQuery(c, &params) {
		return
	}

	sales, err := h.saleService.ListSales(c.Request.Context(), identity, params)
	if err != nil {
		respondError(c, err, "list sales")
		return
	}
	c.JSON(http.StatusOK, sales)
}

// getSalesSummary godoc
// @Summary Sales summary
// @Description Totals and averages of the sales visible to the caller.
// @Tags sales
// @Produce json
// @Param branchId query string false "Branch ID"
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Success 200 {object} domain.SalesSummary
// @Security BearerAuth
// @Router /sales/summary [get]
func (h *saleHandler) getSalesSummary(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}
	var params dto.LedgerParams
	if !bindQuery(c, &params) {
		return
	}

	summary, err := h.saleService.GetSalesSummary(c.Request.Context(), identity, params)
	if err != nil {
		respondError(c, err, "summarize sales")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getSale godoc
// @Summary Get a sale
// @Tags sales
// @Produce json
// @Param sale_id path string true "Sale ID"
// @Success 200 {object} domain.Sale
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{sale_id} [get]
func (h *saleHandler) getSale(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), identity, c.Param("sale_id"))
	if err != nil {
		respondError(c, err, "get sale")
		return
	}
	c.JSON(http.StatusOK, sale)
}

// updateSale godoc
// @Summary Update a sale
// @Tags sales
// @Accept json
// @Produce json
// @Param sale_id path string true "Sale ID"
// @Param sale body dto.UpdateSaleRequest true "Fields to change"
// @Success 200 {object} domain.Sale
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{sale_id} [patch]
func (h *saleHandler) updateSale(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}
	var req dto.UpdateSaleRequest
	if !bindJSON(c, &req) {
		return
	}

	sale, err := h.saleService.UpdateSale(c.Request.Context(), identity, c.Param("sale_id"), req)
	if err != nil {
		respondError(c, err, "update sale")
		return
	}
	c.JSON(http.StatusOK, sale)
}

// deleteSale godoc
// @Summary Delete a sale
// @Tags sales
// @Param sale_id path string true "Sale ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{sale_id} [delete]
func (h *saleHandler) deleteSale(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	if err := h.saleService.DeleteSale(c.Request.Context(), identity, c.Param("sale_id")); err != nil {
		respondError(c, err, "delete sale")
		return
	}
	c.Status(http.StatusNoContent)
}
