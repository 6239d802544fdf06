package usecase_test

import (
	"context"
	"errors"
	"testing"

	"eco-wardrobe/internal/wardrobe"
)

func TestMoods(t *testing.T) {
	t.Run("Add Then Detail", func(t *testing.T) {
		uc := newTestUseCase()

		added, err := uc.AddMood(context.Background(), wardrobe.AddMoodInput{
			Name:        "Quiet Luxury",
			Description: "muted palettes, structured layers",
			Keywords:    []string{"wool", "camel", "tailored"},
		})
		if err != nil {
			t.Fatalf("AddMood() error = %v", err)
		}
		if added.Mood.ID == "" {
			t.Fatal("AddMood() returned empty ID")
		}

		detail, err := uc.DetailMood(context.Background(), added.Mood.ID)
		if err != nil {
			t.Fatalf("DetailMood() error = %v", err)
		}
		if detail.Mood.Name != "Quiet Luxury" {
			t.Errorf("Name = %q, want Quiet Luxury", detail.Mood.Name)
		}
	})

	t.Run("Detail Unknown Mood", func(t *testing.T) {
		uc := newTestUseCase()

		_, err := uc.DetailMood(context.Background(), "missing")
		if !errors.Is(err, wardrobe.ErrMoodNotFound) {
			t.Errorf("DetailMood() error = %v, want ErrMoodNotFound", err)
		}
	})

	t.Run("Remove Is Idempotent", func(t *testing.T) {
		uc := newTestUseCase()
		added, err := uc.AddMood(context.Background(), wardrobe.AddMoodInput{Name: "Gorpcore"})
		if err != nil {
			t.Fatalf("AddMood() error = %v", err)
		}

		if err := uc.RemoveMood(context.Background(), added.Mood.ID); err != nil {
			t.Fatalf("RemoveMood() error = %v", err)
		}
		if err := uc.RemoveMood(context.Background(), added.Mood.ID); err != nil {
			t.Fatalf("repeat RemoveMood() error = %v", err)
		}

		out, err := uc.ListMoods(context.Background())
		if err != nil {
			t.Fatalf("ListMoods() error = %v", err)
		}
		if out.Total != 0 {
			t.Errorf("Total = %d, want 0", out.Total)
		}
	})
}
