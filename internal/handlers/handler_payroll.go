package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/alfadli/hrm_backend/internal/core/ports/services"
	"github.com/alfadli/hrm_backend/internal/dto"
	"github.com/alfadli/hrm_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// payrollHandler handles HTTP requests related to payroll.
type payrollHandler struct {
	payrollService portssvc.PayrollSvcFacade
}

func registerPayrollRoutes(rg *gin.RouterGroup, payrollService portssvc.PayrollSvcFacade) {
	h := &payrollHandler{payrollService: payrollService}

	payroll := rg.Group("/payroll")
	{
		payroll.POST("", h.createPayroll)
		payroll.GET("", h.listPayroll)
		payroll.GET("/:payroll_id", h.getPayroll)
		payroll.PATCH("/:payroll_id", h.updatePayroll)
		payroll.DELETE("/:payroll_id", h.deletePayroll)
	}
}

// createPayroll godoc
// @Summary Create a payroll record
// @Description The total is computed as baseSalary + bonuses + adjustments.
// @Tags payroll
// @Accept json
// @Produce json
// @Param payroll body dto.CreatePayrollRequest true "Payroll details"
// @Success 201 {object} domain.Payroll
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /payroll [post]
func (h *payrollHandler) createPayroll(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}
	var req dto.CreatePayrollRequest
	if !bindJSON(c, &req) {
		return
	}

	payroll, err := h.payrollService.CreatePayroll(c.Request.Context(), identity, req)
	if err != nil {
		respondError(c, err, "create payroll")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Payroll created",
		slog.String("payroll_id", payroll.PayrollID), slog.String("total", payroll.Total.String()))
	c.JSON(http.StatusCreated, payroll)
}

// listPayroll godoc
// @Summary List payroll
// @Tags payroll
// @Produce json
// @Param branchId query string false "Branch ID"
// @Param employeeId query string false "Employee ID"
// @Param month query int false "Month (1-12)"
// @Param year query int false "Year"
// @Success 200 {array} domain.Payroll
// @Security BearerAuth
// @Router /payroll [get]
func (h *payrollHandler) listPayroll(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}
	var params dto.ListPayrollParams
	if !bindQuery(c, &params) {
		return
	}

	records, err := h.payrollService.ListPayroll(c.Request.Context(), identity, params)
	if err != nil {
		respondError(c, err, "list payroll")
		return
	}
	c.JSON(http.StatusOK, records)
}

// getPayroll godoc
// @Summary Get a payroll record
// @Tags payroll
// @Produce json
// @Param payroll_id path string true "Payroll ID"
// @Success 200 {object} domain.Payroll
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payroll/{payroll_id} [get]
func (h *payrollHandler) getPayroll(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	payroll, err := h.payrollService.GetPayroll(c.Request.Context(), identity, c.Param("payroll_id"))
	if err != nil {
		respondError(c, err, "get payroll")
		return
	}
	c.JSON(http.StatusOK, payroll)
}

// updatePayroll godoc
// @Summary Update a payroll record
// @Description The total is recomputed from the merged amounts.
// @Tags payroll
// @Accept json
// @Produce json
// @Param payroll_id path string true "Payroll ID"
// @Param payroll body dto.UpdatePayrollRequest true "Fields to change"
// @Success 200 {object} domain.Payroll
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payroll/{payroll_id} [patch]
func (h *payrollHandler) updatePayroll(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}
	var req dto.UpdatePayrollRequest
	if !bindJSON(c, &req) {
		return
	}

	payroll, err := h.payrollService.UpdatePayroll(c.Request.Context(), identity, c.Param("payroll_id"), req)
	if err != nil {
		respondError(c, err, "update payroll")
		return
	}
	c.JSON(http.StatusOK, payroll)
}

// deletePayroll godoc
// @Summary Delete a payroll record
// @Tags payroll
// @Param payroll_id path string true "Payroll ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payroll/{payroll_id} [delete]
func (h *payrollHandler) deletePayroll(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	if err := h.payrollService.DeletePayroll(c.Request.Context(), identity, c.Param("payroll_id")); err != nil {
		respondError(c, err, "delete payroll")
		return
	}
	c.Status(http.StatusNoContent)
}
