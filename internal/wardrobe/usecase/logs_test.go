package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"eco-wardrobe/internal/activity"
	"eco-wardrobe/internal/wardrobe"
)

func TestLogOutfit(t *testing.T) {
	t.Run("Empty Selection Is Rejected Without Side Effects", func(t *testing.T) {
		uc := newTestUseCase()
		addTestItem(uc, "untouched")
		if _, err := uc.AddMood(context.Background(), wardrobe.AddMoodInput{
			Name:        "Soft Casual",
			Description: "linen and muted tones",
		}); err != nil {
			t.Fatalf("AddMood() error = %v", err)
		}

		snapshot := func() (wardrobe.ListItemsOutput, wardrobe.ListLogsOutput, wardrobe.ListMoodsOutput) {
			items, err := uc.ListItems(context.Background(), wardrobe.ListItemsInput{})
			if err != nil {
				t.Fatalf("ListItems() error = %v", err)
			}
			logs, err := uc.ListLogs(context.Background())
			if err != nil {
				t.Fatalf("ListLogs() error = %v", err)
			}
			moods, err := uc.ListMoods(context.Background())
			if err != nil {
				t.Fatalf("ListMoods() error = %v", err)
			}
			return items, logs, moods
		}
		itemsBefore, logsBefore, moodsBefore := snapshot()

		_, err := uc.LogOutfit(context.Background(), wardrobe.LogOutfitInput{})
		if !errors.Is(err, wardrobe.ErrEmptySelection) {
			t.Fatalf("LogOutfit() error = %v, want ErrEmptySelection", err)
		}

		itemsAfter, logsAfter, moodsAfter := snapshot()
		if !reflect.DeepEqual(itemsAfter, itemsBefore) {
			t.Errorf("items changed: before %+v, after %+v", itemsBefore, itemsAfter)
		}
		if !reflect.DeepEqual(logsAfter, logsBefore) {
			t.Errorf("logs changed: before %+v, after %+v", logsBefore, logsAfter)
		}
		if !reflect.DeepEqual(moodsAfter, moodsBefore) {
			t.Errorf("moods changed: before %+v, after %+v", moodsBefore, moodsAfter)
		}
	})

	t.Run("Defaults Date To Today", func(t *testing.T) {
		uc := newTestUseCase()
		added := addTestItem(uc, "shirt")

		out, err := uc.LogOutfit(context.Background(), wardrobe.LogOutfitInput{
			ItemIDs: []string{added.Item.Item.ID},
		})
		if err != nil {
			t.Fatalf("LogOutfit() error = %v", err)
		}
		if out.Log.Date != "2025-06-15" {
			t.Errorf("Date = %q, want 2025-06-15", out.Log.Date)
		}
	})

	t.Run("Bumps Wear Counts And Keeps Dangling IDs", func(t *testing.T) {
		uc := newTestUseCase()
		a := addTestItem(uc, "a").Item.Item.ID
		b := addTestItem(uc, "b").Item.Item.ID

		out, err := uc.LogOutfit(context.Background(), wardrobe.LogOutfitInput{
			Date:     "2025-06-14",
			ItemIDs:  []string{a, b, "ghost"},
			MoodName: "Coastal Grandmother",
		})
		if err != nil {
			t.Fatalf("LogOutfit() error = %v", err)
		}
		if out.WornItems != 2 {
			t.Errorf("WornItems = %d, want 2", out.WornItems)
		}
		if out.Skipped != 1 {
			t.Errorf("Skipped = %d, want 1", out.Skipped)
		}
		// The log keeps all three references, including the dangling one.
		if len(out.Log.ItemIDs) != 3 {
			t.Errorf("len(ItemIDs) = %d, want 3", len(out.Log.ItemIDs))
		}

		detail, err := uc.DetailItem(context.Background(), a)
		if err != nil {
			t.Fatalf("DetailItem() error = %v", err)
		}
		if detail.Item.Item.TimesWorn != 1 {
			t.Errorf("TimesWorn = %d, want 1", detail.Item.Item.TimesWorn)
		}
		if detail.Item.Item.LastWornAt == nil || !detail.Item.Item.LastWornAt.Equal(fixedToday) {
			t.Errorf("LastWornAt = %v, want %v", detail.Item.Item.LastWornAt, fixedToday)
		}
	})
}

func TestListLogs(t *testing.T) {
	t.Run("Resolves Known And Dangling References", func(t *testing.T) {
		uc := newTestUseCase()
		a := addTestItem(uc, "kept").Item.Item.ID
		b := addTestItem(uc, "removed later").Item.Item.ID

		if _, err := uc.LogOutfit(context.Background(), wardrobe.LogOutfitInput{
			ItemIDs: []string{a, b},
		}); err != nil {
			t.Fatalf("LogOutfit() error = %v", err)
		}
		if err := uc.RemoveItem(context.Background(), b); err != nil {
			t.Fatalf("RemoveItem() error = %v", err)
		}

		out, err := uc.ListLogs(context.Background())
		if err != nil {
			t.Fatalf("ListLogs() error = %v", err)
		}
		if out.Total != 1 {
			t.Fatalf("Total = %d, want 1", out.Total)
		}
		resolved := out.Logs[0].Items
		if len(resolved) != 2 {
			t.Fatalf("len(Items) = %d, want 2", len(resolved))
		}
		if !resolved[0].Known || resolved[0].Name != "kept" {
			t.Errorf("resolved[0] = %+v, want known item %q", resolved[0], "kept")
		}
		if resolved[1].Known || resolved[1].Name != wardrobe.UnknownItemName {
			t.Errorf("resolved[1] = %+v, want %q placeholder", resolved[1], wardrobe.UnknownItemName)
		}
	})

	t.Run("Most Recent First", func(t *testing.T) {
		uc := newTestUseCase()
		id := addTestItem(uc, "daily").Item.Item.ID

		for _, date := range []string{"2025-06-10", "2025-06-11", "2025-06-12"} {
			if _, err := uc.LogOutfit(context.Background(), wardrobe.LogOutfitInput{
				Date:    date,
				ItemIDs: []string{id},
			}); err != nil {
				t.Fatalf("LogOutfit(%s) error = %v", date, err)
			}
		}

		out, err := uc.ListLogs(context.Background())
		if err != nil {
			t.Fatalf("ListLogs() error = %v", err)
		}
		if out.Logs[0].Log.Date != "2025-06-12" {
			t.Errorf("Logs[0].Date = %q, want 2025-06-12", out.Logs[0].Log.Date)
		}
		if out.Logs[2].Log.Date != "2025-06-10" {
			t.Errorf("Logs[2].Date = %q, want 2025-06-10", out.Logs[2].Log.Date)
		}
	})
}

func TestWeeklyActivity(t *testing.T) {
	t.Run("Seven Days Ending Today", func(t *testing.T) {
		uc := newTestUseCase()
		id := addTestItem(uc, "shirt").Item.Item.ID

		// Two in the window, one outside it.
		for _, date := range []string{"2025-06-15", "2025-06-12", "2025-06-01"} {
			if _, err := uc.LogOutfit(context.Background(), wardrobe.LogOutfitInput{
				Date:    date,
				ItemIDs: []string{id},
			}); err != nil {
				t.Fatalf("LogOutfit(%s) error = %v", date, err)
			}
		}

		out, err := uc.WeeklyActivity(context.Background())
		if err != nil {
			t.Fatalf("WeeklyActivity() error = %v", err)
		}
		if len(out.Days) != activity.WindowDays {
			t.Fatalf("len(Days) = %d, want %d", len(out.Days), activity.WindowDays)
		}
		if out.Days[0].Date != "2025-06-09" {
			t.Errorf("Days[0].Date = %q, want 2025-06-09", out.Days[0].Date)
		}
		last := out.Days[len(out.Days)-1]
		if last.Date != "2025-06-15" || last.WornCount != 1 || !last.Active() {
			t.Errorf("last day = %+v, want active 2025-06-15 with one outfit", last)
		}

		active := 0
		for _, d := range out.Days {
			if d.Active() {
				active++
			}
		}
		if active != 2 {
			t.Errorf("active days = %d, want 2", active)
		}
	})
}
