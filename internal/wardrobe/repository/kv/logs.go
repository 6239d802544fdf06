package kv

import (
	"context"

	"eco-wardrobe/internal/model"
	"eco-wardrobe/internal/wardrobe/repository"
)

// ListLogs returns outfit logs most-recent-first.
func (r *kvRepository) ListLogs(ctx context.Context) ([]model.OutfitLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return cloneLogs(r.logs), nil
}

// AppendLog front-inserts the log and, in the same critical section,
// increments the wear count of every referenced item still present and
// stamps its last-worn time. Ids that no longer resolve are skipped
// without error; they stay in the log as dangling references.
func (r *kvRepository) AppendLog(ctx context.Context, opt repository.AppendLogOptions) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	referenced := make(map[string]bool, len(opt.Log.ItemIDs))
	for _, id := range opt.Log.ItemIDs {
		referenced[id] = true
	}

	worn := 0
	for i := range r.items {
		if referenced[r.items[i].ID] {
			r.items[i].TimesWorn++
			wornAt := opt.WornAt
			r.items[i].LastWornAt = &wornAt
			worn++
		}
	}

	r.logs = append([]model.OutfitLog{opt.Log}, r.logs...)

	r.persist(ctx, repository.KeyLogs, r.logs)
	if worn > 0 {
		r.persist(ctx, repository.KeyItems, r.items)
	}
	return worn, nil
}
