package v1

import (
	"net/http"

	"github.com/bugify-api/dto"
	"github.com/bugify-api/services"
	"github.com/gin-gonic/gin"
)

// MyBugsController handles the developer's own-assignment endpoints.
type MyBugsController struct {
	bugs *services.BugService
}

// NewMyBugsController creates a new mybugs controller instance
func NewMyBugsController(bugs *services.BugService) *MyBugsController {
	return &MyBugsController{bugs: bugs}
}

// List handles GET /mybugs
func (ctrl *MyBugsController) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	bugs, err := ctrl.bugs.MyBugs(user, bugFilterFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bugs)
}

// Stats handles GET /mybugs/stats
func (ctrl *MyBugsController) Stats(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	stats, err := ctrl.bugs.MyStats(user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// SetStatus handles PUT /mybugs/:id/status
func (ctrl *MyBugsController) SetStatus(c *gin.Context) {
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

	bug, err := ctrl.bugs.UpdateMyStatus(user, id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bug)
}

// Projects handles GET /mybugs/projects
func (ctrl *MyBugsController) Projects(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	projects, err := ctrl.bugs.MyProjects(user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}
