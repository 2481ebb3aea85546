package main

import (
	"context"
	"database/sql"
	"errors"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	v10validator "github.com/go-playground/validator/v10"
	_ "github.com/jackc/pgx/v5/stdlib"
	"log"
	"net/http"
	"shipdesk/internal/cache"
	"shipdesk/internal/client"
	"shipdesk/internal/config"
	"shipdesk/internal/entity"
	"shipdesk/internal/handler"
	"shipdesk/internal/migrations"
	"shipdesk/internal/repository"
	"shipdesk/internal/service"
	"shipdesk/internal/validator"
	"shipdesk/internal/worker"
	"sync"
	"time"
)

func main() {
	if err := Execute(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func Execute() error {
	cfg, err := config.NewBuilder().LoadDotenv().LoadFlags().LoadEnv().Build()
	if err != nil {
		return err
	}

	db, err := sql.Open("pgx", cfg.DatabaseURI())
	if err != nil {
		return err
	}

	defer func(db *sql.DB) {
		err = db.Close()
	}(db)

	if err := migrations.Up(db); err != nil {
		return err
	}

	validationEngine := v10validator.New()
	if err := validationEngine.RegisterValidation("reportstatus", validator.ReportStatus); err != nil {
		return err
	}

	var (
		ctx, cancel = context.WithCancel(context.Background())
		r           = chi.NewRouter()
		v           = validator.New(validationEngine)
		wg          = &sync.WaitGroup{}
		fj          = make(chan entity.FetchJob, 8)
		fr          = make(chan entity.FetchResult, 8)
		or          = repository.NewOrder(db)
		oc          = client.NewOrders(cfg.OrderAPIAddress(), cfg.OrderAPIToken())
		ps          = worker.NewScheduler(cfg.PollInterval(), fj, wg)
		fw          = worker.NewFetcher(oc, fj, fr, wg, 4)
		sw          = worker.NewStorer(or, fr, wg, 4)
		rc          = cache.NewReport(cfg.RedisAddress(), cfg.ReportCacheTTL())
		rs          = service.NewReport(or, rc, time.Now)
		rh          = handler.NewReport(rs, v)
	)

	defer func() {
		cancel()
		wg.Wait()
		close(fj)
		close(fr)
	}()

	ps.Do(ctx)
	fw.Do(ctx)
	sw.Do(ctx)

	r.Use(chimiddleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/report", rh.Get)
		r.Get("/orders", rh.GetOrders)
	})

	err = http.ListenAndServe(cfg.ServerAddress(), r)

	return err
}
