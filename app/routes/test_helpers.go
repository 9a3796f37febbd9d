package routes

import (
	"context"
	"testing"

	"github.com/arypfer/Proty-Content-Calendar/app/models"
	"github.com/arypfer/Proty-Content-Calendar/app/repositories"
	"github.com/arypfer/Proty-Content-Calendar/app/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubSuggester returns a canned suggestion so route tests never reach the
// real generative model.
type stubSuggester struct {
	text string
}

func (s stubSuggester) Suggest(ctx context.Context, images []models.Image) string {
	return s.text
}

func setupTestRouter(t *testing.T) (*mux.Router, *services.PostService) {
	repo, err := repositories.NewRepository()
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	postService := services.NewPostService(repo)
	router := SetupRoutes(zap.NewNop(), postService, stubSuggester{text: "A sunny caption"})
	return router, postService
}
