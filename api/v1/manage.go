package v1

import (
	"net/http"

	"github.com/bugify-api/dto"
	"github.com/bugify-api/services"
	"github.com/gin-gonic/gin"
)

// ManageController handles the admin bug-management endpoints.
type ManageController struct {
	bugs      *services.BugService
	dashboard *services.DashboardService
}

// NewManageController creates a new manage controller instance
func NewManageController(bugs *services.BugService, dashboard *services.DashboardService) *ManageController {
	return &ManageController{bugs: bugs, dashboard: dashboard}
}

// Bugs handles GET /manage/bugs
func (ctrl *ManageController) Bugs(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	bugs, err := ctrl.bugs.ManageList(user, bugFilterFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bugs)
}

// Assign handles PUT /manage/bugs/:id/assign
func (ctrl *ManageController) Assign(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	var req dto.BugAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	bug, err := ctrl.bugs.Assign(user, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bug)
}

// SetStatus handles PUT /manage/bugs/:id/status
func (ctrl *ManageController) SetStatus(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	var req dto.BugStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	bug, err := ctrl.bugs.SetStatus(user, id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bug)
}

// Developers handles GET /manage/developers
func (ctrl *ManageController) Developers(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	developers, err := ctrl.dashboard.Developers(user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, developers)
}
