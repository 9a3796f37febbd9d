// Package service wires the application together and runs the HTTP server.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arypfer/Proty-Content-Calendar/app/captions"
	"github.com/arypfer/Proty-Content-Calendar/app/config"
	"github.com/arypfer/Proty-Content-Calendar/app/models"
	"github.com/arypfer/Proty-Content-Calendar/app/repositories"
	"github.com/arypfer/Proty-Content-Calendar/app/routes"
	"github.com/arypfer/Proty-Content-Calendar/app/services"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Run builds the store, the caption collaborator and the router, then
// serves until interrupted. The store is in-memory only: everything resets
// when the process exits.
func Run(cfg config.Config) error {
	log, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer log.Sync()

	repo, err := repositories.NewRepository()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer repo.Close()

	postService := services.NewPostService(repo)

	if cfg.SeedFile != "" {
		n, err := seedPosts(postService, cfg.SeedFile)
		if err != nil {
			log.Warn("seed file not loaded", zap.String("file", cfg.SeedFile), zap.Error(err))
		} else {
			log.Info("seeded posts", zap.String("file", cfg.SeedFile), zap.Int("count", n))
		}
	}

	var suggester captions.Suggester = captions.DisabledSuggester{}
	if cfg.GenAIAPIKey != "" {
		s, err := captions.NewGenAISuggester(context.Background(), cfg.GenAIAPIKey, cfg.GenAIModel)
		if err != nil {
			log.Warn("caption suggestions disabled", zap.Error(err))
		} else {
			suggester = s
		}
	} else {
		log.Info("caption suggestions disabled, no API key configured")
	}

	router := routes.SetupRoutes(log, postService, suggester)
	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
	case sig := <-stop:
		log.Info("shutting down", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return err
		}
	}
	return nil
}

// seedPosts loads injected initial data: a JSON array of post inputs. Ids
// in the file are ignored, every seed becomes a fresh entry.
func seedPosts(postService *services.PostService, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var inputs []models.PostInput
	if err := json.Unmarshal(data, &inputs); err != nil {
		return 0, err
	}

	for i := range inputs {
		inputs[i].ID = ""
		if _, err := postService.Save(&inputs[i]); err != nil {
			return i, fmt.Errorf("seed entry %d: %w", i, err)
		}
	}
	return len(inputs), nil
}
