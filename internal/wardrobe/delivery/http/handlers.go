package http

import (
	"github.com/gin-gonic/gin"

	"eco-wardrobe/pkg/response"
)

// AddItem godoc
// @Summary     Catalog a new wardrobe item
// @Description Adds an item with its recognized attributes to the wardrobe.
// @Tags        Wardrobe
// @Accept      json
// @Produce     json
// @Param       body body addItemReq true "Item attributes"
// @Success     200 {object} addItemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - id already cataloged"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/wardrobe/items [POST]
func (h *handler) AddItem(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddItemReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.AddItem(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddItem: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newAddItemResp(output))
}

// ListItems godoc
// @Summary     List wardrobe items
// @Description Returns all items, most recent first, with derived scores. Optional category filter.
// @Tags        Wardrobe
// @Accept      json
// @Produce     json
// @Param       category query string false "Filter by category (Tops/Bottoms/Outerwear/Shoes/Accessories/Dresses)"
// @Success     200 {object} listItemsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/wardrobe/items [GET]
func (h *handler) ListItems(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListItemsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListItems(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListItems: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListItemsResp(output))
}

// DetailItem godoc
// @Summary     Get a single wardrobe item
// @Description Returns one item by id with its derived scores.
// @Tags        Wardrobe
// @Accept      json
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} detailItemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/wardrobe/items/{id} [GET]
func (h *handler) DetailItem(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	output, err := h.uc.DetailItem(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.DetailItem: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDetailItemResp(output))
}

// RemoveItem godoc
// @Summary     Remove a wardrobe item
// @Description Removes an item by id. Removing an unknown id is a no-op. Past outfit logs keep their references.
// @Tags        Wardrobe
// @Accept      json
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/wardrobe/items/{id} [DELETE]
func (h *handler) RemoveItem(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	if err := h.uc.RemoveItem(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.RemoveItem: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// LogOutfit godoc
// @Summary     Log a worn outfit
// @Description Records an outfit for a date (default today) and bumps wear counts of the referenced items.
// @Tags        Wardrobe
// @Accept      json
// @Produce     json
// @Param       body body logOutfitReq true "Outfit selection"
// @Success     200 {object} logOutfitResp
// @Failure     400 {object} response.Resp "Bad Request - empty selection"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/wardrobe/logs [POST]
func (h *handler) LogOutfit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLogOutfitReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.LogOutfit(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.LogOutfit: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newLogOutfitResp(output))
}

// ListLogs godoc
// @Summary     List outfit logs
// @Description Returns all outfit logs, most recent first, with item references resolved against the current wardrobe.
// @Tags        Wardrobe
// @Accept      json
// @Produce     json
// @Success     200 {object} listLogsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/wardrobe/logs [GET]
func (h *handler) ListLogs(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListLogs(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListLogs: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListLogsResp(output))
}

// WeeklyActivity godoc
// @Summary     Seven-day outfit activity
// @Description Returns one entry per day for the last seven days, oldest first, ending today.
// @Tags        Wardrobe
// @Accept      json
// @Produce     json
// @Success     200 {object} weeklyActivityResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/wardrobe/activity/weekly [GET]
func (h *handler) WeeklyActivity(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.WeeklyActivity(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.WeeklyActivity: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newWeeklyActivityResp(output))
}

// AddMood godoc
// @Summary     Create a style mood
// @Description Saves a named aesthetic profile used to steer outfit recommendations.
// @Tags        Wardrobe
// @Accept      json
// @Produce     json
// @Param       body body addMoodReq true "Mood data"
// @Success     200 {object} addMoodResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/wardrobe/moods [POST]
func (h *handler) AddMood(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddMoodReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.AddMood(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddMood: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newAddMoodResp(output))
}

// ListMoods godoc
// @Summary     List style moods
// @Description Returns every saved style mood in creation order.
// @Tags        Wardrobe
// @Accept      json
// @Produce     json
// @Success     200 {object} listMoodsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/wardrobe/moods [GET]
func (h *handler) ListMoods(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListMoods(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListMoods: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListMoodsResp(output))
}

// DetailMood godoc
// @Summary     Get a single style mood
// @Description Returns one style mood by id.
// @Tags        Wardrobe
// @Accept      json
// @Produce     json
// @Param       id path string true "Mood ID"
// @Success     200 {object} detailMoodResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/wardrobe/moods/{id} [GET]
func (h *handler) DetailMood(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	output, err := h.uc.DetailMood(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.DetailMood: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDetailMoodResp(output))
}

// RemoveMood godoc
// @Summary     Remove a style mood
// @Description Removes a style mood by id. Removing an unknown id is a no-op.
// @Tags        Wardrobe
// @Accept      json
// @Produce     json
// @Param       id path string true "Mood ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/wardrobe/moods/{id} [DELETE]
func (h *handler) RemoveMood(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	if err := h.uc.RemoveMood(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.RemoveMood: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}
