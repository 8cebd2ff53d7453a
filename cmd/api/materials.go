package main

import (
	"context"
	"net/http"

	"toolhub/internal/catalog"
)

var materialSourceCategories = []string{"cable", "wiring", "lighting", "switches-sockets", "consumables"}

const snapshotMaterialCategories = "snapshot:materials:categories"

// ListMaterials godoc
//
//	@Summary		List materials
//	@Description	Paginated, display-ready material listings
//	@Tags			materials
//	@Produce		json
//	@Param			page		query		int		false	"Page number"
//	@Param			limit		query		int		false	"Items per page (max 100)"
//	@Param			category	query		string	false	"Display category filter"
//	@Success		200			{object}	map[string]any
//	@Router			/materials [get]
func (app *application) listMaterialsHandler(w http.ResponseWriter, r *http.Request) {
	app.listCatalogueHandler(w, r, materialSourceCategories, app.pipeline.materialClassifier, "materials")
}

// MaterialCategories godoc
//
//	@Summary		Material category summaries
//	@Description	Per-category material summaries with popular items
//	@Tags			materials
//	@Produce		json
//	@Success		200	{array}	catalog.CategorySummary
//	@Router			/materials/categories [get]
func (app *application) materialCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	app.snapshotHandler(w, r, snapshotMaterialCategories, app.buildMaterialSummaries, catalog.DefaultMaterialSummaries)
}

func (app *application) buildMaterialSummaries(ctx context.Context) (any, error) {
	items, err := app.fetchCatalogue(ctx, materialSourceCategories, app.pipeline.materialClassifier)
	if err != nil {
		return nil, err
	}
	return app.pipeline.materialAggregator.Summaries(items), nil
}
