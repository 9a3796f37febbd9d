package routes

import (
	"github.com/arypfer/Proty-Content-Calendar/app/captions"
	"github.com/arypfer/Proty-Content-Calendar/app/controllers"
	"github.com/arypfer/Proty-Content-Calendar/app/middleware"
	"github.com/arypfer/Proty-Content-Calendar/app/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// SetupRoutes defines the application's routes and returns a router.
func SetupRoutes(log *zap.Logger, postService *services.PostService, suggester captions.Suggester) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recoverer(log))
	router.Use(middleware.ContentTypeJSON)

	postController := controllers.NewPostController(postService)
	calendarController := controllers.NewCalendarController(postService)
	captionController := controllers.NewCaptionController(suggester)
	imageController := controllers.NewImageController()

	api := router.PathPrefix("/api").Subrouter()

	// Posts API endpoints
	posts := api.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("", postController.Create).Methods("POST")
	posts.HandleFunc("/{id}", postController.Show).Methods("GET")
	posts.HandleFunc("/{id}", postController.Edit).Methods("PUT")
	posts.HandleFunc("/{id}", postController.Delete).Methods("DELETE")
	posts.HandleFunc("/{id}/comments", postController.CreateComment).Methods("POST")

	// Calendar, caption and upload endpoints
	api.HandleFunc("/calendar/{year:[0-9]+}/{month:[0-9]+}", calendarController.Month).Methods("GET")
	api.HandleFunc("/captions/suggest", captionController.Suggest).Methods("POST")
	api.HandleFunc("/images", imageController.Upload).Methods("POST")

	return router
}
