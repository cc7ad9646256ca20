// Package controllers controllers/interest_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-teams/services"
)

// InterestCreateRequest names a new catalog tag.
type InterestCreateRequest struct {
	Name string `json:"name" binding:"required"`
}

// InterestController serves the shared interest catalog.
type InterestController struct {
	Interests services.InterestServiceInterface
}

// NewInterestController initializes a new instance of InterestController.
func NewInterestController(interests services.InterestServiceInterface) *InterestController {
	return &InterestController{Interests: interests}
}

// List returns the whole catalog.
func (ic *InterestController) List(c *gin.Context) {
	interests, err := ic.Interests.List()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, interests)
}

// Create adds a tag, returning the existing one when the name is taken.
func (ic *InterestController) Create(c *gin.Context) {
	var req InterestCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	tag, err := ic.Interests.Create(req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

// Delete removes a tag from the catalog. Students keep their selections.
func (ic *InterestController) Delete(c *gin.Context) {
	if err := ic.Interests.Delete(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Interest deleted successfully"})
}
