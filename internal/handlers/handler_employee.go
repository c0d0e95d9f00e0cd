package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/alfadli/hrm_backend/internal/core/ports/services"
	"github.com/alfadli/hrm_backend/internal/dto"
	"github.com/alfadli/hrm_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// employeeHandler handles HTTP requests related to employees.
type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
}

func newEmployeeHandler(es portssvc.EmployeeSvcFacade) *employeeHandler {
	return &employeeHandler{employeeService: es}
}

func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade) {
	h := newEmployeeHandler(employeeService)

	employees := rg.Group("/employees")
	{
		employees.POST("", h.createEmployee)
		employees.GET("", h.listEmployees)
		employees.GET("/:employee_id", h.getEmployee)
		employees.PATCH("/:employee_id", h.updateEmployee)
		employees.DELETE("/:employee_id", h.deleteEmployee)
	}
}

// createEmployee godoc
// @Summary Create a new employee
// @Description Staff create employees in their own branch; branchId may be omitted.
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} domain.Employee
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}
	var req dto.CreateEmployeeRequest
	if !bindJSON(c, &req) {
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), identity, req)
	if err != nil {
		respondError(c, err, "create employee")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Employee created",
		slog.String("employee_id", employee.EmployeeID), slog.String("branch_id", employee.BranchID))
	c.JSON(http.StatusCreated, employee)
}

// listEmployees godoc
// @Summary List employees
// @Description Staff always receive their own branch regardless of branchId.
// @Tags employees
// @Produce json
// @Param branchId query string false "Branch ID"
// @Success 200 {array} domain.Employee
// @Security BearerAuth
// @Router /employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}
	var params dto.ListEmployeesParams
	if !bindQuery(c, &params) {
		return
	}

	employees, err := h.employeeService.ListEmployees(c.Request.Context(), identity, params)
	if err != nil {
		respondError(c, err, "list employees")
		return
	}
	c.JSON(http.StatusOK, employees)
}

// getEmployee godoc
// @Summary Get an employee
// @Tags employees
// @Produce json
// @Param employee_id path string true "Employee ID"
// @Success 200 {object} domain.Employee
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{employee_id} [get]
func (h *employeeHandler) getEmployee(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	employee, err := h.employeeService.GetEmployee(c.Request.Context(), identity, c.Param("employee_id"))
	if err != nil {
		respondError(c, err, "get employee")
		return
	}
	c.JSON(http.StatusOK, employee)
}

// updateEmployee godoc
// @Summary Update an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param employee_id path string true "Employee ID"
// @Param employee body dto.UpdateEmployeeRequest true "Fields to change"
// @Success 200 {object} domain.Employee
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{employee_id} [patch]
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}
	var req dto.UpdateEmployeeRequest
	if !bindJSON(c, &req) {
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), identity, c.Param("employee_id"), req)
	if err != nil {
		respondError(c, err, "update employee")
		return
	}
	c.JSON(http.StatusOK, employee)
}

// deleteEmployee godoc
// @Summary Delete an employee
// @Description Removes the employee along with their attendance and payroll records.
// @Tags employees
// @Param employee_id path string true "Employee ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{employee_id} [delete]
func (h *employeeHandler) deleteEmployee(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	if err := h.employeeService.DeleteEmployee(c.Request.Context(), identity, c.Param("employee_id")); err != nil {
		respondError(c, err, "delete employee")
		return
	}
	c.Status(http.StatusNoContent)
}
