package main

import (
	"context"
	"time"
)

// background runs fn in its own goroutine, turning a panic into a log
// line so a bad email template cannot take the server down.
func (app *application) background(fn func()) {
	go func() {
		defer func() {
			if err := recover(); err != nil {
				app.logger.Errorw("background task panicked", "error", err)
			}
		}()
		fn()
	}()
}

// warmSnapshotsEvery rebuilds the catalogue snapshots on a fixed cadence
// so storefront requests mostly hit warm cache entries.
func (app *application) warmSnapshotsEvery(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		// Run once immediately
		app.warmSnapshots()

		for range ticker.C {
			app.warmSnapshots()
		}
	}()
}

func (app *application) warmSnapshots() {
	// Without redis there is nowhere to keep the result.
	if app.snapshots == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	builders := map[string]func(context.Context) (any, error){
		snapshotToolCategories:     app.buildToolCategories,
		snapshotToolStats:          app.buildToolStats,
		snapshotToolDeals:          app.buildToolDeals,
		snapshotMaterialCategories: app.buildMaterialSummaries,
	}

	for key, build := range builders {
		data, err := build(ctx)
		if err != nil {
			app.logger.Errorw("warming snapshot", "key", key, "error", err)
			continue
		}
		app.cacheSnapshot(ctx, key, data)
	}
}
