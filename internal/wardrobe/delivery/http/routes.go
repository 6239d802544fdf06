package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The wardrobe surface is unauthenticated: this is a single-user app.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	items := rg.Group("/items")
	{
		items.POST("", h.AddItem)
		items.GET("", h.ListItems)
		items.GET("/:id", h.DetailItem)
		items.DELETE("/:id", h.RemoveItem)
	}

	logs := rg.Group("/logs")
	{
		logs.POST("", h.LogOutfit)
		logs.GET("", h.ListLogs)
	}

	rg.GET("/activity/weekly", h.WeeklyActivity)

	moods := rg.Group("/moods")
	{
		moods.POST("", h.AddMood)
		moods.GET("", h.ListMoods)
		moods.GET("/:id", h.DetailMood)
		moods.DELETE("/:id", h.RemoveMood)
	}
}
