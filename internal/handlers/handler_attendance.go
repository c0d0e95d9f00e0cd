package handlers

import (
	"net/http"

	portssvc "github.com/alfadli/hrm_backend/internal/core/ports/services"
	"github.com/alfadli/hrm_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type attendanceHandler struct {
	attendanceService portssvc.AttendanceSvcFacade
}

func registerAttendanceRoutes(rg *gin.RouterGroup, attendanceService portssvc.AttendanceSvcFacade) {
	h := &attendanceHandler{attendanceService: attendanceService}

	attendance := rg.Group("/attendance")
	{
		attendance.POST("", h.createAttendance)
		attendance.GET("", h.listAttendance)
		attendance.GET("/:attendance_id", h.getAttendance)
		attendance.PATCH("/:attendance_id", h.updateAttendance)
		attendance.DELETE("/:attendance_id", h.deleteAttendance)
	}
}

// createAttendance godoc
// @Summary Record attendance
// @Tags attendance
// @Accept json
// @Produce json
// @Param attendance body dto.CreateAttendanceRequest true "Attendance details"
// @Success 201 {object} domain.Attendance
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /attendance [post]
func (h *attendanceHandler) createAttendance(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}
	var req dto.CreateAttendanceRequest
	if !bindJSON(c, &req) {
		return
	}

	record, err := h.attendanceService.CreateAttendance(c.Request.Context(), identity, req)
	if err != nil {
		respondError(c, err, "create attendance")
		return
	}
	c.JSON(http.StatusCreated, record)
}

// listAttendance godoc
// @Summary List attendance
// @Tags attendance
// @Produce json
// @Param branchId query string false "Branch ID"
// @Param employeeId query string false "Employee ID"
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Success 200 {array} domain.Attendance
// @Security BearerAuth
// @Router /attendance [get]
func (h *attendanceHandler) listAttendance(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}
	var params dto.ListAttendanceParams
	if !bindQuery(c, &params) {
		return
	}

	records, err := h.attendanceService.ListAttendance(c.Request.Context(), identity, params)
	if err != nil {
		respondError(c, err, "list attendance")
		return
	}
	c.JSON(http.StatusOK, records)
}

// getAttendance godoc
// @Summary Get an attendance record
// @Tags attendance
// @Produce json
// @Param attendance_id path string true "Attendance ID"
// @Success 200 {object} domain.Attendance
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /attendance/{attendance_id} [get]
func (h *attendanceHandler) getAttendance(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	record, err := h.attendanceService.GetAttendance(c.Request.Context(), identity, c.Param("attendance_id"))
	if err != nil {
		respondError(c, err, "get attendance")
		return
	}
	c.JSON(http.StatusOK, record)
}

// updateAttendance godoc
// @Summary Update an attendance record
// @Tags attendance
// @Accept json
// @Produce json
// @Param attendance_id path string true "Attendance ID"
// @Param attendance body dto.UpdateAttendanceRequest true "Fields to change"
// @Success 200 {object} domain.Attendance
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /attendance/{attendance_id} [patch]
func (h *attendanceHandler) updateAttendance(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}
	var req dto.UpdateAttendanceRequest
	if !bindJSON(c, &req) {
		return
	}

	record, err := h.attendanceService.UpdateAttendance(c.Request.Context(), identity, c.Param("attendance_id"), req)
	if err != nil {
		respondError(c, err, "update attendance")
		return
	}
	c.JSON(http.StatusOK, record)
}

// deleteAttendance godoc
// @Summary Delete an attendance record
// @Tags attendance
// @Param attendance_id path string true "Attendance ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /attendance/{attendance_id} [delete]
func (h *attendanceHandler) deleteAttendance(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	if err := h.attendanceService.DeleteAttendance(c.Request.Context(), identity, c.Param("attendance_id")); err != nil {
		respondError(c, err, "delete attendance")
		return
	}
	c.Status(http.StatusNoContent)
}
