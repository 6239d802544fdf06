package http

import (
	"errors"
	"fmt"

	"eco-wardrobe/internal/model"

	"github.com/gin-gonic/gin"
)

var errInvalidCategory = fmt.Errorf("category must be one of %v", model.Categories)

var errMissingID = errors.New("id is required")

// processAddItemReq binds and validates the add item request body.
func (h *handler) processAddItemReq(c *gin.Context) (addItemReq, error) {
	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processListItemsReq binds and validates the list items query parameters.
func (h *handler) processListItemsReq(c *gin.Context) (listItemsReq, error) {
	var req listItemsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processLogOutfitReq binds and validates the log outfit request body.
func (h *handler) processLogOutfitReq(c *gin.Context) (logOutfitReq, error) {
	var req logOutfitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processAddMoodReq binds and validates the add mood request body.
func (h *handler) processAddMoodReq(c *gin.Context) (addMoodReq, error) {
	var req addMoodReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
