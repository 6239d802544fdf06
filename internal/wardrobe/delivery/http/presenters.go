package http

import (
	"time"

	"eco-wardrobe/internal/model"
	"eco-wardrobe/internal/wardrobe"
)

// --- Request DTOs ---

type addItemReq struct {
	Name          string   `json:"name"          binding:"required,min=1,max=255"`
	Category      string   `json:"category"      binding:"required"`
	Color         string   `json:"color"         binding:"max=100"`
	Material      string   `json:"material"      binding:"max=255"`
	Texture       string   `json:"texture"       binding:"max=255"`
	Vibe          string   `json:"vibe"          binding:"max=255"`
	ImageURL      string   `json:"imageUrl"`
	MaterialScore int      `json:"materialScore" binding:"min=0,max=100"`
	Tags          []string `json:"tags"`
}

func (r addItemReq) validate() error {
	if !model.Category(r.Category).Valid() {
		return errInvalidCategory
	}
	return nil
}

func (r addItemReq) toInput() wardrobe.AddItemInput {
	return wardrobe.AddItemInput{
		Name:          r.Name,
		Category:      model.Category(r.Category),
		Color:         r.Color,
		Material:      r.Material,
		Texture:       r.Texture,
		Vibe:          r.Vibe,
		ImageURL:      r.ImageURL,
		MaterialScore: r.MaterialScore,
		Tags:          r.Tags,
	}
}

// ---

type listItemsReq struct {
	Category string `form:"category"`
}

func (r listItemsReq) validate() error {
	if r.Category != "" && !model.Category(r.Category).Valid() {
		return errInvalidCategory
	}
	return nil
}

func (r listItemsReq) toInput() wardrobe.ListItemsInput {
	return wardrobe.ListItemsInput{
		Category: model.Category(r.Category),
	}
}

// ---

type logOutfitReq struct {
	Date     string   `json:"date"     binding:"omitempty,datetime=2006-01-02"`
	ItemIDs  []string `json:"itemIds"`
	MoodName string   `json:"moodName" binding:"max=255"`
}

func (r logOutfitReq) validate() error { return nil }

func (r logOutfitReq) toInput() wardrobe.LogOutfitInput {
	return wardrobe.LogOutfitInput{
		Date:     r.Date,
		ItemIDs:  r.ItemIDs,
		MoodName: r.MoodName,
	}
}

// ---

type addMoodReq struct {
	Name         string   `json:"name"        binding:"required,min=1,max=255"`
	Description  string   `json:"description" binding:"required,min=1,max=1000"`
	Keywords     []string `json:"keywords"`
	MoodImageURL string   `json:"moodImageUrl"`
}

func (r addMoodReq) validate() error { return nil }

func (r addMoodReq) toInput() wardrobe.AddMoodInput {
	return wardrobe.AddMoodInput{
		Name:         r.Name,
		Description:  r.Description,
		Keywords:     r.Keywords,
		MoodImageURL: r.MoodImageURL,
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Category      string     `json:"category"`
	Color         string     `json:"color"`
	Material      string     `json:"material"`
	Texture       string     `json:"texture"`
	Vibe          string     `json:"vibe"`
	ImageURL      string     `json:"imageUrl"`
	MaterialScore int        `json:"materialScore"`
	TimesWorn     int        `json:"timesWorn"`
	LastWornAt    *time.Time `json:"lastWornAt,omitempty"`
	Tags          []string   `json:"tags,omitempty"`
	AddedAt       time.Time  `json:"addedAt"`
	UtilityScore  int        `json:"utilityScore"`
	TotalScore    int        `json:"totalScore"`
}

func newItemResp(scored wardrobe.ScoredItem) itemResp {
	item := scored.Item
	return itemResp{
		ID:            item.ID,
		Name:          item.Name,
		Category:      string(item.Category),
		Color:         item.Color,
		Material:      item.Material,
		Texture:       item.Texture,
		Vibe:          item.Vibe,
		ImageURL:      item.ImageURL,
		MaterialScore: item.MaterialScore,
		TimesWorn:     item.TimesWorn,
		LastWornAt:    item.LastWornAt,
		Tags:          item.Tags,
		AddedAt:       item.AddedAt,
		UtilityScore:  scored.UtilityScore,
		TotalScore:    scored.TotalScore,
	}
}

type addItemResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newAddItemResp(out wardrobe.AddItemOutput) addItemResp {
	return addItemResp{Item: newItemResp(out.Item)}
}

type listItemsResp struct {
	Items []itemResp `json:"items"`
	Total int        `json:"total"`
}

func (h *handler) newListItemsResp(out wardrobe.ListItemsOutput) listItemsResp {
	items := make([]itemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newItemResp(item)
	}
	return listItemsResp{
		Items: items,
		Total: out.Total,
	}
}

type detailItemResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newDetailItemResp(out wardrobe.DetailItemOutput) detailItemResp {
	return detailItemResp{Item: newItemResp(out.Item)}
}

// ---

type resolvedItemResp struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl,omitempty"`
	Known    bool   `json:"known"`
}

type logResp struct {
	ID       string             `json:"id"`
	Date     string             `json:"date"`
	MoodName string             `json:"moodName,omitempty"`
	Items    []resolvedItemResp `json:"items"`
}

func newLogResp(logged wardrobe.LoggedOutfit) logResp {
	items := make([]resolvedItemResp, len(logged.Items))
	for i, it := range logged.Items {
		items[i] = resolvedItemResp{
			ID:       it.ID,
			Name:     it.Name,
			ImageURL: it.ImageURL,
			Known:    it.Known,
		}
	}
	return logResp{
		ID:       logged.Log.ID,
		Date:     logged.Log.Date,
		MoodName: logged.Log.MoodName,
		Items:    items,
	}
}

type logOutfitResp struct {
	Log       model.OutfitLog `json:"log"`
	WornItems int             `json:"wornItems"`
	Skipped   int             `json:"skipped"`
}

func (h *handler) newLogOutfitResp(out wardrobe.LogOutfitOutput) logOutfitResp {
	return logOutfitResp{
		Log:       out.Log,
		WornItems: out.WornItems,
		Skipped:   out.Skipped,
	}
}

type listLogsResp struct {
	Logs  []logResp `json:"logs"`
	Total int       `json:"total"`
}

func (h *handler) newListLogsResp(out wardrobe.ListLogsOutput) listLogsResp {
	logs := make([]logResp, len(out.Logs))
	for i, logged := range out.Logs {
		logs[i] = newLogResp(logged)
	}
	return listLogsResp{
		Logs:  logs,
		Total: out.Total,
	}
}

type dayStatusResp struct {
	Date      string `json:"date"`
	WornCount int    `json:"wornCount"`
	Active    bool   `json:"active"`
}

type weeklyActivityResp struct {
	Days []dayStatusResp `json:"days"`
}

func (h *handler) newWeeklyActivityResp(out wardrobe.WeeklyActivityOutput) weeklyActivityResp {
	days := make([]dayStatusResp, len(out.Days))
	for i, day := range out.Days {
		days[i] = dayStatusResp{
			Date:      day.Date,
			WornCount: day.WornCount,
			Active:    day.Active(),
		}
	}
	return weeklyActivityResp{Days: days}
}

// ---

type moodResp struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Keywords     []string `json:"keywords"`
	MoodImageURL string   `json:"moodImageUrl,omitempty"`
}

func newMoodResp(mood model.StyleMood) moodResp {
	return moodResp{
		ID:           mood.ID,
		Name:         mood.Name,
		Description:  mood.Description,
		Keywords:     mood.Keywords,
		MoodImageURL: mood.MoodImageURL,
	}
}

type addMoodResp struct {
	Mood moodResp `json:"mood"`
}

func (h *handler) newAddMoodResp(out wardrobe.AddMoodOutput) addMoodResp {
	return addMoodResp{Mood: newMoodResp(out.Mood)}
}

type listMoodsResp struct {
	Moods []moodResp `json:"moods"`
	Total int        `json:"total"`
}

func (h *handler) newListMoodsResp(out wardrobe.ListMoodsOutput) listMoodsResp {
	moods := make([]moodResp, len(out.Moods))
	for i, mood := range out.Moods {
		moods[i] = newMoodResp(mood)
	}
	return listMoodsResp{
		Moods: moods,
		Total: out.Total,
	}
}

type detailMoodResp struct {
	Mood moodResp `json:"mood"`
}

func (h *handler) newDetailMoodResp(out wardrobe.DetailMoodOutput) detailMoodResp {
	return detailMoodResp{Mood: newMoodResp(out.Mood)}
}
