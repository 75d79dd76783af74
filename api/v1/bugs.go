package v1

import (
	"net/http"

	"github.com/bugify-api/dto"
	"github.com/bugify-api/services"
	"github.com/gin-gonic/gin"
)

// BugController handles the core bug CRUD endpoints.
type BugController struct {
	bugs *services.BugService
}

// NewBugController creates a new bug controller instance
func NewBugController(bugs *services.BugService) *BugController {
	return &BugController{bugs: bugs}
}

// Create handles POST /bugs
func (ctrl *BugController) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.BugCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	bug, err := ctrl.bugs.Create(user, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bug)
}

// Get handles GET /bugs/:id
func (ctrl *BugController) Get(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	bug, err := ctrl.bugs.Get(user, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bug)
}

// Update handles PUT /bugs/:id (partial status/assignee/priority update)
func (ctrl *BugController) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	var req dto.BugUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	bug, err := ctrl.bugs.Update(user, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bug)
}

// Delete handles DELETE /bugs/:id
func (ctrl *BugController) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.bugs.Delete(user, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
