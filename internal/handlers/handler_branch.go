package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/alfadli/hrm_backend/internal/core/ports/services"
	"github.com/alfadli/hrm_backend/internal/dto"
	"github.com/alfadli/hrm_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// branchHandler handles HTTP requests related to branches.
type branchHandler struct {
	branchService portssvc.BranchSvcFacade
}

func newBranchHandler(bs portssvc.BranchSvcFacade) *branchHandler {
	return &branchHandler{branchService: bs}
}

// registerBranchRoutes registers routes related to branches.
func registerBranchRoutes(rg *gin.RouterGroup, branchService portssvc.BranchSvcFacade) {
	h := newBranchHandler(branchService)

	branches := rg.Group("/branches")
	{
		branches.POST("", h.createBranch)
		branches.GET("", h.listBranches)
		branches.GET("/:branch_id", h.getBranch)
		branches.PATCH("/:branch_id", h.updateBranch)
		branches.DELETE("/:branch_id", h.deleteBranch)
	}
}

// createBranch godoc
// @Summary Create a new branch
// @Description Creates a branch. Only admins may create branches.
// @Tags branches
// @Accept json
// @Produce json
// @Param branch body dto.CreateBranchRequest true "Branch details"
// @Success 201 {object} domain.Branch
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /branches [post]
func (h *branchHandler) createBranch(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}
	var req dto.CreateBranchRequest
	if !bindJSON(c, &req) {
		return
	}

	branch, err := h.branchService.CreateBranch(c.Request.Context(), identity, req)
	if err != nil {
		respondError(c, err, "create branch")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Branch created", slog.String("branch_id", branch.BranchID))
	c.JSON(http.StatusCreated, branch)
}

// listBranches godoc
// @Summary List branches
// @Description Staff only see their own branch.
// @Tags branches
// @Produce json
// @Success 200 {array} domain.Branch
// @Security BearerAuth
// @Router /branches [get]
func (h *branchHandler) listBranches(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	branches, err := h.branchService.ListBranches(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err, "list branches")
		return
	}
	c.JSON(http.StatusOK, branches)
}

// getBranch godoc
// @Summary Get a branch
// @Tags branches
// @Produce json
// @Param branch_id path string true "Branch ID"
// @Success 200 {object} domain.Branch
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /branches/{branch_id} [get]
func (h *branchHandler) getBranch(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	branch, err := h.branchService.GetBranch(c.Request.Context(), identity, c.Param("branch_id"))
	if err != nil {
		respondError(c, err, "get branch")
		return
	}
	c.JSON(http.StatusOK, branch)
}

// updateBranch godoc
// @Summary Update a branch
// @Tags branches
// @Accept json
// @Produce json
// @Param branch_id path string true "Branch ID"
// @Param branch body dto.UpdateBranchRequest true "Fields to change"
// @Success 200 {object} domain.Branch
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /branches/{branch_id} [patch]
func (h *branchHandler) updateBranch(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}
	var req dto.UpdateBranchRequest
	if !bindJSON(c, &req) {
		return
	}

	branch, err := h.branchService.UpdateBranch(c.Request.Context(), identity, c.Param("branch_id"), req)
	if err != nil {
		respondError(c, err, "update branch")
		return
	}
	c.JSON(http.StatusOK, branch)
}

// deleteBranch godoc
// @Summary Delete a branch
// @Description Fails with 409 while records still belong to the branch.
// @Tags branches
// @Param branch_id path string true "Branch ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /branches/{branch_id} [delete]
func (h *branchHandler) deleteBranch(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	if err := h.branchService.DeleteBranch(c.Request.Context(), identity, c.Param("branch_id")); err != nil {
		respondError(c, err, "delete branch")
		return
	}
	c.Status(http.StatusNoContent)
}
