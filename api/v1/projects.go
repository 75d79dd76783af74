package v1

import (
	"fmt"
	"net/http"

	"github.com/bugify-api/dto"
	"github.com/bugify-api/services"
	"github.com/gin-gonic/gin"
)

// ProjectController handles project registry endpoints.
type ProjectController struct {
	projects *services.ProjectService
}

// NewProjectController creates a new project controller instance
func NewProjectController(projects *services.ProjectService) *ProjectController {
	return &ProjectController{projects: projects}
}

// Create handles POST /projects
func (ctrl *ProjectController) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.ProjectCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	project, err := ctrl.projects.Create(user, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// Get handles GET /projects/:id
func (ctrl *ProjectController) Get(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	project, err := ctrl.projects.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// Delete handles DELETE /projects/:id
func (ctrl *ProjectController) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	project, err := ctrl.projects.Delete(user, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":       fmt.Sprintf("Project '%s' deleted successfully", project.Name),
		"deleted_count": 1,
	})
}
