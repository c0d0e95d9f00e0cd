package handlers

import (
	"net/http"

	portssvc "github.com/alfadli/hrm_backend/internal/core/ports/services"
	"github.com/alfadli/hrm_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// accountingHandler handles income, expenses, expense categories and the profit/loss report.
type accountingHandler struct {
	accountingService portssvc.AccountingSvcFacade
}

func newAccountingHandler(as portssvc.AccountingSvcFacade) *accountingHandler {
	return &accountingHandler{accountingService: as}
}

// registerAccountingRoutes registers the /accounting routes.
func registerAccountingRoutes(rg *gin.RouterGroup, accountingService portssvc.AccountingSvcFacade) {
	h := newAccountingHandler(accountingService)

	accounting := rg.Group("/accounting")
	{
		income := accounting.Group("/income")
		{
			income.POST("", h.createIncome)
			income.GET("", h.listIncomes)
			income.PATCH("/:income_id", h.updateIncome)
			income.DELETE("/:income_id", h.deleteIncome)
		}

		expense := accounting.Group("/expense")
		{
			expense.POST("", h.createExpense)
			expense.GET("", h.listExpenses)
			expense.PATCH("/:expense_id", h.updateExpense)
			expense.DELETE("/:expense_id", h.deleteExpense)
		}

		category := accounting.Group("/expense-category")
		{
			category.POST("", h.createExpenseCategory)
			category.GET("", h.listExpenseCategories)
		}

		accounting.GET("/profit-loss", h.getProfitLoss)
	}
}

// createIncome godoc
// @Summary Record income
// @Tags accounting
// @Accept json
// @Produce json
// @Param income body dto.CreateIncomeRequest true "Income details"
// @Success 201 {object} domain.Income
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounting/income [post]
func (h *accountingHandler) createIncome(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}
	var req dto.CreateIncomeRequest
	if !bindJSON(c, &req) {
		return
	}

	income, err := h.accountingService.CreateIncome(c.Request.Context(), identity, req)
	if err != nil {
		respondError(c, err, "create income")
		return
	}
	c.JSON(http.StatusCreated, income)
}

// listIncomes godoc
// @Summary List income
// @Tags accounting
// @Produce json
// @Param branchId query string false "Branch ID"
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Success 200 {array} domain.Income
// @Security BearerAuth
// @Router /accounting/income [get]
func (h *accountingHandler) listIncomes(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}
	var params dto.LedgerParams
	if !bindQuery(c, &params) {
		return
	}

	incomes, err := h.accountingService.ListIncomes(c.Request.Context(), identity, params)
	if err != nil {
		respondError(c, err, "list income")
		return
	}
	c.JSON(http.StatusOK, incomes)
}

// updateIncome godoc
// @Summary Update income
// @Tags accounting
// @Accept json
// @Produce json
// @Param income_id path string true "Income ID"
// @Param income body dto.UpdateIncomeRequest true "Fields to change"
// @Success 200 {object} domain.Income
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounting/income/{income_id} [patch]
func (h *accountingHandler) updateIncome(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}
	var req dto.UpdateIncomeRequest
	if !bindJSON(c, &req) {
		return
	}

	income, err := h.accountingService.UpdateIncome(c.Request.Context(), identity, c.Param("income_id"), req)
	if err != nil {
		respondError(c, err, "update income")
		return
	}
	c.JSON(http.StatusOK, income)
}

// deleteIncome godoc
// @Summary Delete income
// @Tags accounting
// @Param income_id path string true "Income ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounting/income/{income_id} [delete]
func (h *accountingHandler) deleteIncome(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	if err := h.accountingService.DeleteIncome(c.Request.Context(), identity, c.Param("income_id")); err != nil {
		respondError(c, err, "delete income")
		return
	}
	c.Status(http.StatusNoContent)
}

// createExpense godoc
// @Summary Record an expense
// @Tags accounting
// @Accept json
// @Produce json
// @Param expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} domain.Expense
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounting/expense [post]
func (h *accountingHandler) createExpense(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}
	var req dto.CreateExpenseRequest
	if !bindJSON(c, &req) {
		return
	}

	expense, err := h.accountingService.CreateExpense(c.Request.Context(), identity, req)
	if err != nil {
		respondError(c, err, "create expense")
		return
	}
	c.JSON(http.StatusCreated, expense)
}

// listExpenses godoc
// @Summary List expenses
// @Tags accounting
// @Produce json
// @Param branchId query string false "Branch ID"
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Success 200 {array} domain.Expense
// @Security BearerAuth
// @Router /accounting/expense [get]
func (h *accountingHandler) listExpenses(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}
	var params dto.LedgerParams
	if !bindQuery(c, &params) {
		return
	}

	expenses, err := h.accountingService.ListExpenses(c.Request.Context(), identity, params)
	if err != nil {
		respondError(c, err, "list expenses")
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// updateExpense godoc
// @Summary Update an expense
// @Tags accounting
// @Accept json
// @Produce json
// @Param expense_id path string true "Expense ID"
// @Param expense body dto.UpdateExpenseRequest true "Fields to change"
// @Success 200 {object} domain.Expense
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounting/expense/{expense_id} [patch]
func (h *accountingHandler) updateExpense(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}
	var req dto.UpdateExpenseRequest
	if !bindJSON(c, &req) {
		return
	}

	expense, err := h.accountingService.UpdateExpense(c.Request.Context(), identity, c.Param("expense_id"), req)
	if err != nil {
		respondError(c, err, "update expense")
		return
	}
	c.JSON(http.StatusOK, expense)
}

// deleteExpense godoc
// @Summary Delete an expense
// @Tags accounting
// @Param expense_id path string true "Expense ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse "Managers cannot delete expenses"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounting/expense/{expense_id} [delete]
func (h *accountingHandler) deleteExpense(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	if err := h.accountingService.DeleteExpense(c.Request.Context(), identity, c.Param("expense_id")); err != nil {
		respondError(c, err, "delete expense")
		return
	}
	c.Status(http.StatusNoContent)
}

// createExpenseCategory godoc
// @Summary Create an expense category
// @Tags accounting
// @Accept json
// @Produce json
// @Param category body dto.CreateExpenseCategoryRequest true "Category details"
// @Success 201 {object} domain.ExpenseCategory
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounting/expense-category [post]
func (h *accountingHandler) createExpenseCategory(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}
	var req dto.CreateExpenseCategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.accountingService.CreateExpenseCategory(c.Request.Context(), identity, req)
	if err != nil {
		respondError(c, err, "create expense category")
		return
	}
	c.JSON(http.StatusCreated, category)
}

// listExpenseCategories godoc
// @Summary List expense categories
// @Tags accounting
// @Produce json
// @Success 200 {array} domain.ExpenseCategory
// @Security BearerAuth
// @Router /accounting/expense-category [get]
func (h *accountingHandler) listExpenseCategories(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	categories, err := h.accountingService.ListExpenseCategories(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err, "list expense categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

// getProfitLoss godoc
// @Summary Profit and loss
// @Description Sums income and expenses over the period. Staff always see their own branch.
// @Tags accounting
// @Produce json
// @Param branchId query string false "Branch ID"
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Success 200 {object} domain.ProfitLoss
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounting/profit-loss [get]
func (h *accountingHandler) getProfitLoss(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}
	var params dto.LedgerParams
	if !bindQuery(c, &params) {
		return
	}

	report, err := h.accountingService.GetProfitLoss(c.Request.Context(), identity, params)
	if err != nil {
		respondError(c, err, "compute profit and loss")
		return
	}
	c.JSON(http.StatusOK, report)
}
