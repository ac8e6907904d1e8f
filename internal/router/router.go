package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/kanishkPamecha/Movies/config"
	"github.com/kanishkPamecha/Movies/internal/api"
	"github.com/kanishkPamecha/Movies/internal/api/auth"
	"github.com/kanishkPamecha/Movies/internal/api/genre"
	"github.com/kanishkPamecha/Movies/internal/api/movie"
	"github.com/kanishkPamecha/Movies/internal/api/upload"
	"github.com/kanishkPamecha/Movies/internal/api/user"
)

// Config contains dependencies needed for the router setup
type Config struct {
	AppConfig     *config.Config
	AuthHandler   *auth.AuthHandler
	UserHandler   *user.HandlerImpl
	GenreHandler  *genre.Handler
	MovieHandler  *movie.Handler
	UploadHandler *upload.Handler

	// Authenticate validates the session cookie; RequireAdmin layers the
	// admin check on top of it.
	Authenticate func(http.Handler) http.Handler
	RequireAdmin func(http.Handler) http.Handler
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (request ID, logger, recoverer) are applied before
// mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Descriptive 404 for unknown routes
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		api.ErrorResponse(w, req, http.StatusNotFound,
			fmt.Sprintf("Not Found - %s", req.URL.Path))
	})

	r.Get("/ping", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/users", func(r chi.Router) {
			// Public routes, rate limited to slow bruteforce attempts
			r.Group(func(r chi.Router) {
				r.Use(httprate.LimitByIP(20, 1*time.Minute))
				r.Post("/", cfg.AuthHandler.Register)
				r.Post("/auth", cfg.AuthHandler.Login)
			})
			r.Post("/logout", cfg.AuthHandler.Logout)

			r.Group(func(r chi.Router) {
				r.Use(cfg.Authenticate)
				r.Get("/profile", cfg.UserHandler.GetUserProfile)
				r.Put("/profile", cfg.UserHandler.UpdateUserProfile)

				r.Group(func(r chi.Router) {
					r.Use(cfg.RequireAdmin)
					r.Get("/", cfg.UserHandler.ListUsers)
				})
			})
		})

		r.Route("/genre", func(r chi.Router) {
			r.Get("/genres", cfg.GenreHandler.ListGenres)
			r.Get("/{id}", cfg.GenreHandler.GetGenre)

			r.Group(func(r chi.Router) {
				r.Use(cfg.Authenticate)
				r.Use(cfg.RequireAdmin)
				r.Post("/", cfg.GenreHandler.CreateGenre)
				r.Put("/{id}", cfg.GenreHandler.UpdateGenre)
				r.Delete("/{id}", cfg.GenreHandler.DeleteGenre)
			})
		})

		r.Route("/movies", func(r chi.Router) {
			r.Get("/all-movies", cfg.MovieHandler.ListMovies)
			r.Get("/specific-movie/{id}", cfg.MovieHandler.GetMovie)

			r.Group(func(r chi.Router) {
				r.Use(cfg.Authenticate)
				r.Use(cfg.RequireAdmin)
				r.Post("/create-movie", cfg.MovieHandler.CreateMovie)
				r.Put("/update-movie/{id}", cfg.MovieHandler.UpdateMovie)
				r.Delete("/delete-movie/{id}", cfg.MovieHandler.DeleteMovie)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(cfg.Authenticate)
			r.Use(cfg.RequireAdmin)
			r.Post("/upload", cfg.UploadHandler.UploadImage)
		})
	})

	// Serve locally stored images when the disk backend is active
	if cfg.AppConfig.Upload.Backend == "" || cfg.AppConfig.Upload.Backend == "disk" {
		fileServer := http.FileServer(http.Dir(cfg.AppConfig.Upload.Dir))
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", fileServer))
	}

	return r
}
