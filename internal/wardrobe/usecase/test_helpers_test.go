package usecase_test

import (
	"context"
	"time"

	"eco-wardrobe/internal/wardrobe"
	"eco-wardrobe/internal/wardrobe/repository/kv"
	"eco-wardrobe/internal/wardrobe/usecase"
	"eco-wardrobe/pkg/ids"
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

// fixedToday is the deterministic "now" used by every usecase test.
var fixedToday = time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)

// newTestUseCase wires the usecase to a fresh in-memory repository with
// sequential ids and a frozen clock.
func newTestUseCase() wardrobe.UseCase {
	repo := kv.New(kvstore.NewMemoryStore(), &mockLogger{})
	return usecase.New(repo, ids.NewSequence("test"), &mockLogger{}, func() time.Time { return fixedToday })
}

func addTestItem(uc wardrobe.UseCase, name string) wardrobe.AddItemOutput {
	out, _ := uc.AddItem(context.Background(), wardrobe.AddItemInput{
		Name:          name,
		Category:      "Tops",
		Color:         "ecru",
		Material:      "linen",
		Texture:       "soft-woven",
		Vibe:          "earthy-minimal",
		MaterialScore: 80,
	})
	return out
}
