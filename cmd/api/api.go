package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"toolhub/docs" //this is required to generate swagger docs
	"toolhub/internal/cache"
	"toolhub/internal/catalog"
	"toolhub/internal/domain/accidents"
	"toolhub/internal/domain/products"
	"toolhub/internal/mailer"
	"toolhub/internal/ratelimiter"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config      config
	logger      *zap.SugaredLogger
	store       storage
	pipeline    pipeline
	snapshots   *cache.Snapshots
	mailer      mailer.Client
	rateLimiter *ratelimiter.FixedWindowRateLimiter
}

// storage bundles the domain repositories, one field per domain.
type storage struct {
	Products  products.Store
	Accidents accidents.Store
}

// pipeline bundles the pure catalogue transforms. Everything here is
// stateless; the handlers thread fetched rows through it per request.
type pipeline struct {
	toolClassifier     *catalog.Classifier
	materialClassifier *catalog.Classifier
	normaliser         *catalog.Normaliser
	toolAggregator     *catalog.Aggregator
	materialAggregator *catalog.Aggregator
	deals              *catalog.DealSynthesiser
}

func newPipeline() pipeline {
	toolCl := catalog.NewClassifier(catalog.DefaultToolKeywordGroups, catalog.DefaultExcludedCategories, catalog.CategoryHandTools)
	matCl := catalog.NewClassifier(catalog.DefaultMaterialKeywordGroups, catalog.DefaultExcludedCategories, catalog.CategoryConsumables)
	return pipeline{
		toolClassifier:     toolCl,
		materialClassifier: matCl,
		normaliser:         catalog.NewNormaliser(catalog.DefaultSupplierDomains),
		toolAggregator:     catalog.NewAggregator(toolCl.Categories()),
		materialAggregator: catalog.NewAggregator(matCl.Categories()),
		deals:              catalog.NewDealSynthesiser(catalog.DefaultSaleKeywords, catalog.DefaultSaleEndings),
	}
}

type config struct {
	addr        string
	db          dbConfig
	env         string
	apiURL      string
	frontendURL string
	auth        authConfig
	mail        mailConfig
	redis       redisConfig
	rateLimiter ratelimiter.Config
}

type authConfig struct {
	basic basicConfig
}

type basicConfig struct {
	user string
	pass string
}

type mailConfig struct {
	fromEmail   string
	safetyEmail string
	smtp        smtpConfig
}

type smtpConfig struct {
	host     string
	port     int
	username string
	password string
}

type redisConfig struct {
	url       string
	staleTime time.Duration
}

type dbConfig struct {
	addr        string
	maxConns    int32
	maxIdleTime string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.RateLimiterMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Signals through ctx.Done() that the request has timed out and
	// further processing should be stopped.
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.With(app.BasicAuthMiddleware()).Get("/health", app.healthCheckHandler)
		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

		r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)

		r.Route("/tools", func(r chi.Router) {
			r.Get("/", app.listToolsHandler)
			r.Get("/categories", app.toolCategoriesHandler)
			r.Get("/stats", app.toolStatsHandler)
			r.Get("/deals", app.toolDealsHandler)
		})

		r.Route("/materials", func(r chi.Router) {
			r.Get("/", app.listMaterialsHandler)
			r.Get("/categories", app.materialCategoriesHandler)
		})

		r.Route("/accident-reports", func(r chi.Router) {
			r.Post("/", app.createAccidentReportHandler)

			// The book itself is only readable by the responsible person.
			r.With(app.BasicAuthMiddleware()).Get("/", app.listAccidentReportsHandler)
			r.With(app.BasicAuthMiddleware()).Get("/{reportID}", app.getAccidentReportHandler)
			r.With(app.BasicAuthMiddleware()).Patch("/{reportID}/status", app.updateAccidentReportStatusHandler)
		})
	})
	return r
}

func (app *application) run(mux http.Handler) error {
	// Docs
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/v1"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
