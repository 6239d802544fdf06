package usecase_test

import (
	"context"
	"errors"
	"testing"

	"eco-wardrobe/internal/wardrobe"
)

func TestAddItem(t *testing.T) {
	t.Run("Assigns ID And Timestamps", func(t *testing.T) {
		uc := newTestUseCase()

		out, err := uc.AddItem(context.Background(), wardrobe.AddItemInput{
			Name:          "Linen Shirt",
			Category:      "Tops",
			Material:      "linen",
			MaterialScore: 80,
		})
		if err != nil {
			t.Fatalf("AddItem() error = %v", err)
		}
		if out.Item.Item.ID != "test-1" {
			t.Errorf("ID = %q, want test-1", out.Item.Item.ID)
		}
		if !out.Item.Item.AddedAt.Equal(fixedToday) {
			t.Errorf("AddedAt = %v, want %v", out.Item.Item.AddedAt, fixedToday)
		}
		if out.Item.Item.TimesWorn != 0 {
			t.Errorf("TimesWorn = %d, want 0", out.Item.Item.TimesWorn)
		}
		if out.Item.Item.LastWornAt != nil {
			t.Errorf("LastWornAt = %v, want nil", out.Item.Item.LastWornAt)
		}
	})

	t.Run("New Item Scores From Material Only", func(t *testing.T) {
		uc := newTestUseCase()

		out, err := uc.AddItem(context.Background(), wardrobe.AddItemInput{
			Name:          "Hemp Tote",
			Category:      "Accessories",
			MaterialScore: 100,
		})
		if err != nil {
			t.Fatalf("AddItem() error = %v", err)
		}
		if out.Item.UtilityScore != 0 {
			t.Errorf("UtilityScore = %d, want 0", out.Item.UtilityScore)
		}
		if out.Item.TotalScore != 40 {
			t.Errorf("TotalScore = %d, want 40", out.Item.TotalScore)
		}
	})
}

func TestListItems(t *testing.T) {
	t.Run("Most Recent First", func(t *testing.T) {
		uc := newTestUseCase()
		addTestItem(uc, "first")
		addTestItem(uc, "second")
		addTestItem(uc, "third")

		out, err := uc.ListItems(context.Background(), wardrobe.ListItemsInput{})
		if err != nil {
			t.Fatalf("ListItems() error = %v", err)
		}
		if out.Total != 3 {
			t.Fatalf("Total = %d, want 3", out.Total)
		}
		got := []string{out.Items[0].Item.Name, out.Items[1].Item.Name, out.Items[2].Item.Name}
		want := []string{"third", "second", "first"}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Items[%d].Name = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("Filters By Category", func(t *testing.T) {
		uc := newTestUseCase()
		addTestItem(uc, "shirt")
		if _, err := uc.AddItem(context.Background(), wardrobe.AddItemInput{
			Name:     "Chinos",
			Category: "Bottoms",
		}); err != nil {
			t.Fatalf("AddItem() error = %v", err)
		}

		out, err := uc.ListItems(context.Background(), wardrobe.ListItemsInput{Category: "Bottoms"})
		if err != nil {
			t.Fatalf("ListItems() error = %v", err)
		}
		if out.Total != 1 || out.Items[0].Item.Name != "Chinos" {
			t.Errorf("got %d items, want the single Bottoms item", out.Total)
		}
	})
}

func TestDetailItem(t *testing.T) {
	t.Run("Not Found", func(t *testing.T) {
		uc := newTestUseCase()

		_, err := uc.DetailItem(context.Background(), "missing")
		if !errors.Is(err, wardrobe.ErrItemNotFound) {
			t.Errorf("DetailItem() error = %v, want ErrItemNotFound", err)
		}
	})

	t.Run("Scores Reflect Wear Count", func(t *testing.T) {
		uc := newTestUseCase()
		added := addTestItem(uc, "worn shirt")
		id := added.Item.Item.ID

		for i := 0; i < 5; i++ {
			if _, err := uc.LogOutfit(context.Background(), wardrobe.LogOutfitInput{ItemIDs: []string{id}}); err != nil {
				t.Fatalf("LogOutfit() error = %v", err)
			}
		}

		out, err := uc.DetailItem(context.Background(), id)
		if err != nil {
			t.Fatalf("DetailItem() error = %v", err)
		}
		if out.Item.UtilityScore != 50 {
			t.Errorf("UtilityScore = %d, want 50", out.Item.UtilityScore)
		}
		// 0.4*80 + 0.6*50 = 62
		if out.Item.TotalScore != 62 {
			t.Errorf("TotalScore = %d, want 62", out.Item.TotalScore)
		}
	})
}

func TestRemoveItem(t *testing.T) {
	t.Run("Idempotent", func(t *testing.T) {
		uc := newTestUseCase()
		added := addTestItem(uc, "doomed")
		id := added.Item.Item.ID

		if err := uc.RemoveItem(context.Background(), id); err != nil {
			t.Fatalf("RemoveItem() error = %v", err)
		}
		// Second removal of the same id succeeds as a no-op.
		if err := uc.RemoveItem(context.Background(), id); err != nil {
			t.Fatalf("repeat RemoveItem() error = %v", err)
		}
		if err := uc.RemoveItem(context.Background(), "never-existed"); err != nil {
			t.Fatalf("RemoveItem() of unknown id error = %v", err)
		}

		out, err := uc.ListItems(context.Background(), wardrobe.ListItemsInput{})
		if err != nil {
			t.Fatalf("ListItems() error = %v", err)
		}
		if out.Total != 0 {
			t.Errorf("Total = %d, want 0", out.Total)
		}
	})
}
