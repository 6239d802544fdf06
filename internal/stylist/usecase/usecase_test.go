package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"eco-wardrobe/internal/model"
	"eco-wardrobe/internal/stylist"
	"eco-wardrobe/internal/stylist/usecase"
	"eco-wardrobe/internal/wardrobe"
	"eco-wardrobe/internal/wardrobe/repository"
	"eco-wardrobe/internal/wardrobe/repository/kv"
	"eco-wardrobe/pkg/gemini"
	"eco-wardrobe/pkg/kvstore"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock Gemini client for testing
type mockGemini struct {
	generateFunc func(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error)
	calls        int
}

func (m *mockGemini) GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	m.calls++
	return m.generateFunc(ctx, req)
}

func textResponse(text string) *gemini.GenerateResponse {
	return &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{{
			Content: gemini.Content{Parts: []gemini.Part{{Text: text}}},
		}},
	}
}

func newTestRepo(t *testing.T) repository.Repository {
	t.Helper()
	return kv.New(kvstore.NewMemoryStore(), &mockLogger{})
}

func seedItem(t *testing.T, repo repository.Repository, id, name string) {
	t.Helper()
	err := repo.AddItem(context.Background(), model.Item{
		ID:       id,
		Name:     name,
		Category: model.CategoryTops,
		Texture:  "heavy-knit",
		Vibe:     "earthy-bohemian",
		AddedAt:  time.Now(),
	})
	if err != nil {
		t.Fatalf("AddItem(%s) error = %v", id, err)
	}
}

func TestAnalyze(t *testing.T) {
	t.Run("Parses Attributes", func(t *testing.T) {
		ai := &mockGemini{
			generateFunc: func(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
				return textResponse(`{"name":"Wool Cardigan","category":"Tops","color":"oat","material":"wool","texture":"heavy-knit","vibe":"soft-scandinavian","tags":["knit"],"materialScore":85,"sustainabilityTip":"Air out instead of washing."}`), nil
			},
		}
		uc := usecase.New(newTestRepo(t), ai, &mockLogger{}, usecase.Config{})

		out, err := uc.Analyze(context.Background(), stylist.AnalyzeInput{ImageData: "aGVsbG8="})
		if err != nil {
			t.Fatalf("Analyze() error = %v", err)
		}
		if out.Analysis.Name != "Wool Cardigan" {
			t.Errorf("Name = %q, want Wool Cardigan", out.Analysis.Name)
		}
		if out.Analysis.MaterialScore != 85 {
			t.Errorf("MaterialScore = %d, want 85", out.Analysis.MaterialScore)
		}
	})

	t.Run("Tolerates Fenced Reply", func(t *testing.T) {
		ai := &mockGemini{
			generateFunc: func(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
				return textResponse("```json\n{\"name\":\"Silk Scarf\",\"category\":\"Accessories\"}\n```"), nil
			},
		}
		uc := usecase.New(newTestRepo(t), ai, &mockLogger{}, usecase.Config{})

		out, err := uc.Analyze(context.Background(), stylist.AnalyzeInput{ImageData: "aGVsbG8="})
		if err != nil {
			t.Fatalf("Analyze() error = %v", err)
		}
		if out.Analysis.Name != "Silk Scarf" {
			t.Errorf("Name = %q, want Silk Scarf", out.Analysis.Name)
		}
	})

	t.Run("Empty Image", func(t *testing.T) {
		uc := usecase.New(newTestRepo(t), &mockGemini{}, &mockLogger{}, usecase.Config{})

		_, err := uc.Analyze(context.Background(), stylist.AnalyzeInput{})
		if !errors.Is(err, stylist.ErrEmptyImage) {
			t.Errorf("Analyze() error = %v, want ErrEmptyImage", err)
		}
	})

	t.Run("Upstream Failure", func(t *testing.T) {
		ai := &mockGemini{
			generateFunc: func(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
				return nil, errors.New("503 model overloaded")
			},
		}
		uc := usecase.New(newTestRepo(t), ai, &mockLogger{}, usecase.Config{})

		_, err := uc.Analyze(context.Background(), stylist.AnalyzeInput{ImageData: "aGVsbG8="})
		if !errors.Is(err, stylist.ErrStylistUnavailable) {
			t.Errorf("Analyze() error = %v, want ErrStylistUnavailable", err)
		}
	})

	t.Run("Unusable Reply", func(t *testing.T) {
		ai := &mockGemini{
			generateFunc: func(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
				return textResponse("sorry, I cannot see the image"), nil
			},
		}
		uc := usecase.New(newTestRepo(t), ai, &mockLogger{}, usecase.Config{})

		_, err := uc.Analyze(context.Background(), stylist.AnalyzeInput{ImageData: "aGVsbG8="})
		if !errors.Is(err, stylist.ErrBadStylistReply) {
			t.Errorf("Analyze() error = %v, want ErrBadStylistReply", err)
		}
	})
}

func TestRecommend(t *testing.T) {
	t.Run("Unknown Mood", func(t *testing.T) {
		uc := usecase.New(newTestRepo(t), &mockGemini{}, &mockLogger{}, usecase.Config{})

		_, err := uc.Recommend(context.Background(), stylist.RecommendInput{MoodID: "missing"})
		if !errors.Is(err, stylist.ErrMoodNotFound) {
			t.Errorf("Recommend() error = %v, want ErrMoodNotFound", err)
		}
	})

	t.Run("Resolves Known And Hallucinated IDs", func(t *testing.T) {
		repo := newTestRepo(t)
		seedItem(t, repo, "item-1", "Linen Shirt")
		if err := repo.AddMood(context.Background(), model.StyleMood{ID: "mood-1", Name: "Coastal"}); err != nil {
			t.Fatalf("AddMood() error = %v", err)
		}

		ai := &mockGemini{
			generateFunc: func(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
				return textResponse(`[{"id":"rec-1","title":"Shoreline Layers","description":"breezy","itemIds":["item-1","ghost"],"vibeAlignment":"soft textures","sustainabilityNote":"all reused"}]`), nil
			},
		}
		uc := usecase.New(repo, ai, &mockLogger{}, usecase.Config{})

		out, err := uc.Recommend(context.Background(), stylist.RecommendInput{MoodID: "mood-1"})
		if err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
		if len(out.Outfits) != 1 {
			t.Fatalf("len(Outfits) = %d, want 1", len(out.Outfits))
		}
		items := out.Outfits[0].Items
		if len(items) != 2 {
			t.Fatalf("len(Items) = %d, want 2", len(items))
		}
		if !items[0].Known || items[0].Name != "Linen Shirt" {
			t.Errorf("items[0] = %+v, want known Linen Shirt", items[0])
		}
		if items[1].Known || items[1].Name != wardrobe.UnknownItemName {
			t.Errorf("items[1] = %+v, want %q placeholder", items[1], wardrobe.UnknownItemName)
		}
	})

	t.Run("Caches Until Wardrobe Changes", func(t *testing.T) {
		repo := newTestRepo(t)
		seedItem(t, repo, "item-1", "Linen Shirt")
		if err := repo.AddMood(context.Background(), model.StyleMood{ID: "mood-1", Name: "Coastal"}); err != nil {
			t.Fatalf("AddMood() error = %v", err)
		}

		ai := &mockGemini{
			generateFunc: func(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
				return textResponse(`[{"id":"rec-1","title":"Shoreline Layers","description":"breezy","itemIds":["item-1"],"vibeAlignment":"soft","sustainabilityNote":"reused"}]`), nil
			},
		}
		uc := usecase.New(repo, ai, &mockLogger{}, usecase.Config{})

		first, err := uc.Recommend(context.Background(), stylist.RecommendInput{MoodID: "mood-1"})
		if err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
		if first.Cached {
			t.Error("first call reported Cached = true")
		}

		second, err := uc.Recommend(context.Background(), stylist.RecommendInput{MoodID: "mood-1"})
		if err != nil {
			t.Fatalf("repeat Recommend() error = %v", err)
		}
		if !second.Cached {
			t.Error("second call reported Cached = false")
		}
		if ai.calls != 1 {
			t.Errorf("gemini calls = %d, want 1", ai.calls)
		}

		// A new item changes the fingerprint and forces a fresh ask.
		seedItem(t, repo, "item-2", "Wool Trousers")
		third, err := uc.Recommend(context.Background(), stylist.RecommendInput{MoodID: "mood-1"})
		if err != nil {
			t.Fatalf("third Recommend() error = %v", err)
		}
		if third.Cached {
			t.Error("third call reported Cached = true after wardrobe change")
		}
		if ai.calls != 2 {
			t.Errorf("gemini calls = %d, want 2", ai.calls)
		}
	})
}

func TestTryOn(t *testing.T) {
	t.Run("Pairs Candidate With Wardrobe", func(t *testing.T) {
		repo := newTestRepo(t)
		seedItem(t, repo, "item-1", "Canvas Jacket")

		ai := &mockGemini{
			generateFunc: func(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
				return textResponse(`[{"id":"rec-1","title":"Utility Layers","description":"rugged","itemIds":["item-1"],"vibeAlignment":"matching stiffness","sustainabilityNote":"buy once"},{"id":"rec-2","title":"Soft Contrast","description":"airy","itemIds":["item-1"],"vibeAlignment":"contrast","sustainabilityNote":"none"}]`), nil
			},
		}
		uc := usecase.New(repo, ai, &mockLogger{}, usecase.Config{})

		out, err := uc.TryOn(context.Background(), stylist.TryOnInput{
			Name:    "Raw Denim Jeans",
			Texture: "stiff-utilitarian",
			Vibe:    "workwear",
		})
		if err != nil {
			t.Fatalf("TryOn() error = %v", err)
		}
		if len(out.Outfits) != 2 {
			t.Fatalf("len(Outfits) = %d, want 2", len(out.Outfits))
		}
		if out.Outfits[0].Recommendation.Title != "Utility Layers" {
			t.Errorf("Title = %q, want Utility Layers", out.Outfits[0].Recommendation.Title)
		}
	})
}
