package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/teylo/teylo-backend/config"
	"github.com/teylo/teylo-backend/internal/bootstrap"
	"github.com/teylo/teylo-backend/internal/build/repository"
	"github.com/teylo/teylo-backend/internal/build/template"
	"github.com/teylo/teylo-backend/internal/janitor"
)

const serviceName = "teylo-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	redisClient, err := bootstrap.OpenRedis(ctx, cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer redisClient.Close()

	db, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN})
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if db != nil {
		defer db.Close()
	} else {
		log.Println("DB_DSN not set, build history archive disabled")
	}

	if err := template.EnsureDefaultTemplates(cfg.Build.TemplatesDir); err != nil {
		log.Fatalf("templates: %v", err)
	}

	router, orchestrator := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Cfg:         cfg,
		Redis:       redisClient,
		DB:          db,
	})

	sweeper := janitor.New(repository.NewJobRepository(redisClient), cfg.Build.BuildsDir)
	sweeper.Start()
	defer sweeper.Stop()

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Printf("%s listening on :%s", serviceName, cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}

	// Let running builds reach a terminal state before the process exits.
	orchestrator.Wait()
}
