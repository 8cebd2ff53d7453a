package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"toolhub/internal/catalog"
	"toolhub/internal/params"
)

// Raw source categories requested from storage. The upstream scraper only
// writes rows in these categories, but the classifier re-checks every row
// anyway so a rogue ingest cannot leak junk onto the storefront.
var toolSourceCategories = []string{"power-tools", "hand-tools", "test-equipment", "safety", "accessories"}

const (
	snapshotToolCategories = "snapshot:tools:categories"
	snapshotToolStats      = "snapshot:tools:stats"
	snapshotToolDeals      = "snapshot:tools:deals"
)

// ListTools godoc
//
//	@Summary		List tools
//	@Description	Paginated, display-ready tool listings
//	@Tags			tools
//	@Produce		json
//	@Param			page		query		int		false	"Page number"
//	@Param			limit		query		int		false	"Items per page (max 100)"
//	@Param			category	query		string	false	"Display category filter"
//	@Success		200			{object}	map[string]any
//	@Router			/tools [get]
func (app *application) listToolsHandler(w http.ResponseWriter, r *http.Request) {
	app.listCatalogueHandler(w, r, toolSourceCategories, app.pipeline.toolClassifier, "tools")
}

func (app *application) listCatalogueHandler(w http.ResponseWriter, r *http.Request, sourceCategories []string, cl *catalog.Classifier, field string) {
	p := params.ParsePagination(r.URL.Query())
	filter := catalog.DisplayCategory(r.URL.Query().Get("category"))

	var items []catalog.DisplayItem
	var total int

	if filter == "" {
		recs, n, err := app.store.Products.List(r.Context(), sourceCategories, p.Limit, p.Offset)
		if err != nil {
			// The storefront must keep rendering, so a storage outage
			// degrades to an empty page rather than a 500.
			app.logger.Errorw("listing catalogue rows", "field", field, "error", err)
			recs, n = nil, 0
		}
		items, total = catalog.BuildItems(recs, cl, app.pipeline.normaliser), n
	} else {
		// Display categories only exist after classification, so the
		// filtered listing is paged in memory over the full set.
		all, err := app.fetchCatalogue(r.Context(), sourceCategories, cl)
		if err != nil {
			app.logger.Errorw("listing catalogue rows", "field", field, "error", err)
			all = nil
		}
		filtered := make([]catalog.DisplayItem, 0, len(all))
		for _, item := range all {
			if item.Category == filter {
				filtered = append(filtered, item)
			}
		}
		total = len(filtered)
		items = pageOf(filtered, p.Offset, p.Limit)
	}

	if items == nil {
		items = []catalog.DisplayItem{}
	}
	p.ComputeMeta(total)

	resp := map[string]any{
		field:        items,
		"pagination": p,
	}

	if err := app.jsonResponse(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}

// ToolCategories godoc
//
//	@Summary		Tool category counts
//	@Description	Category cards with live counts and trending flags
//	@Tags			tools
//	@Produce		json
//	@Success		200	{array}	catalog.ToolCategory
//	@Router			/tools/categories [get]
func (app *application) toolCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	app.snapshotHandler(w, r, snapshotToolCategories, app.buildToolCategories, catalog.DefaultToolCategories)
}

// ToolStats godoc
//
//	@Summary		Catalogue statistics
//	@Description	Aggregate stats over the full tool catalogue
//	@Tags			tools
//	@Produce		json
//	@Success		200	{object}	catalog.StatsReport
//	@Router			/tools/stats [get]
func (app *application) toolStatsHandler(w http.ResponseWriter, r *http.Request) {
	app.snapshotHandler(w, r, snapshotToolStats, app.buildToolStats, app.pipeline.toolAggregator.Stats(nil))
}

// ToolDeals godoc
//
//	@Summary		Tool deals
//	@Description	Synthesised deals view over the full tool catalogue
//	@Tags			tools
//	@Produce		json
//	@Success		200	{object}	catalog.DealsResult
//	@Router			/tools/deals [get]
func (app *application) toolDealsHandler(w http.ResponseWriter, r *http.Request) {
	app.snapshotHandler(w, r, snapshotToolDeals, app.buildToolDeals, emptyDealsResult())
}

// snapshotHandler serves a cached snapshot when one is fresh, rebuilds it
// otherwise, and falls back to a static dataset when storage is down. These
// endpoints never return 500 for upstream failures.
func (app *application) snapshotHandler(w http.ResponseWriter, r *http.Request, key string, build func(context.Context) (any, error), fallback any) {
	ctx := r.Context()

	if payload, ok := app.snapshots.Get(ctx, key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(payload)
		return
	}

	data, err := build(ctx)
	if err != nil {
		app.logger.Errorw("building snapshot, serving fallback", "key", key, "error", err)
		if err := app.jsonResponse(w, http.StatusOK, fallback); err != nil {
			app.internalServerError(w, r, err)
		}
		return
	}

	app.cacheSnapshot(ctx, key, data)

	if err := app.jsonResponse(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}

// cacheSnapshot stores the full response envelope so cache hits can be
// written to the wire verbatim.
func (app *application) cacheSnapshot(ctx context.Context, key string, data any) {
	envelope := map[string]any{"data": data}
	payload, err := json.Marshal(envelope)
	if err != nil {
		app.logger.Errorw("marshalling snapshot", "key", key, "error", err)
		return
	}
	if err := app.snapshots.Set(ctx, key, payload); err != nil {
		app.logger.Warnw("caching snapshot", "key", key, "error", err)
	}
}

func (app *application) buildToolCategories(ctx context.Context) (any, error) {
	items, err := app.fetchCatalogue(ctx, toolSourceCategories, app.pipeline.toolClassifier)
	if err != nil {
		return nil, err
	}
	return app.pipeline.toolAggregator.ToolCategories(items), nil
}

func (app *application) buildToolStats(ctx context.Context) (any, error) {
	items, err := app.fetchCatalogue(ctx, toolSourceCategories, app.pipeline.toolClassifier)
	if err != nil {
		return nil, err
	}
	return app.pipeline.toolAggregator.Stats(items), nil
}

func (app *application) buildToolDeals(ctx context.Context) (any, error) {
	items, err := app.fetchCatalogue(ctx, toolSourceCategories, app.pipeline.toolClassifier)
	if err != nil {
		return nil, err
	}
	return app.pipeline.deals.Synthesise(items), nil
}

func (app *application) fetchCatalogue(ctx context.Context, sourceCategories []string, cl *catalog.Classifier) ([]catalog.DisplayItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	recs, err := app.store.Products.ListAll(ctx, sourceCategories)
	if err != nil {
		return nil, err
	}
	return catalog.BuildItems(recs, cl, app.pipeline.normaliser), nil
}

func pageOf(items []catalog.DisplayItem, offset, limit int) []catalog.DisplayItem {
	if offset >= len(items) {
		return []catalog.DisplayItem{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func emptyDealsResult() catalog.DealsResult {
	return catalog.DealsResult{
		Tools:        []catalog.DisplayItem{},
		Deals:        []catalog.DisplayItem{},
		TopDiscounts: []catalog.DisplayItem{},
	}
}
