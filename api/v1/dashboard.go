package v1

import (
	"net/http"
	"strconv"

	"github.com/bugify-api/dto"
	"github.com/bugify-api/services"
	"github.com/gin-gonic/gin"
)

// DashboardController handles the shared listing and stats endpoints.
type DashboardController struct {
	dashboard *services.DashboardService
}

// NewDashboardController creates a new dashboard controller instance
func NewDashboardController(dashboard *services.DashboardService) *DashboardController {
	return &DashboardController{dashboard: dashboard}
}

// bugFilterFromQuery reads the optional project_id and status query filters.
func bugFilterFromQuery(c *gin.Context) dto.BugFilter {
	var filter dto.BugFilter
	if projectID, err := strconv.Atoi(c.Query("project_id")); err == nil {
		filter.ProjectID = projectID
	}
	filter.Status = c.Query("status")
	return filter
}

// Users handles GET /dashboard/users
func (ctrl *DashboardController) Users(c *gin.Context) {
	users, err := ctrl.dashboard.Users()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Projects handles GET /dashboard/projects
func (ctrl *DashboardController) Projects(c *gin.Context) {
	projects, err := ctrl.dashboard.Projects()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// Bugs handles GET /dashboard/bugs
func (ctrl *DashboardController) Bugs(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	bugs, err := ctrl.dashboard.Bugs(user, bugFilterFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bugs)
}

// Stats handles GET /dashboard/stats
func (ctrl *DashboardController) Stats(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	stats, err := ctrl.dashboard.Stats(user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
