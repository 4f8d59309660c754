package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MariamElsayed172/Notes-Management-API/internal/api/handlers"
	"github.com/MariamElsayed172/Notes-Management-API/internal/auth"
	"github.com/MariamElsayed172/Notes-Management-API/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(tm *auth.TokenManager, userService services.UserServiceProvider, noteService services.NoteServiceProvider) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authHandler := handlers.NewAuthHandler(userService)
	noteHandler := handlers.NewNoteHandler(noteService)
	protect := auth.Middleware(tm)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)
		r.Group(func(r chi.Router) {
			r.Use(protect)
			r.Patch("/update", authHandler.Update)
			r.Delete("/delete", authHandler.Delete)
			r.Get("/search", authHandler.Me)
		})
	})

	r.Route("/note", func(r chi.Router) {
		r.Use(protect)
		r.Post("/", noteHandler.Create)
		r.Delete("/", noteHandler.DeleteAll)
		r.Patch("/all", noteHandler.UpdateAllTitles)
		r.Get("/paginate-sort", noteHandler.ListPaginated)
		r.Get("/note-by-content", noteHandler.FindByContent)
		r.Get("/note-with-user", noteHandler.ListWithOwner)
		r.Get("/aggregate", noteHandler.Aggregate)
		r.Route("/{noteId}", func(r chi.Router) {
			r.Get("/", noteHandler.Get)
			r.Patch("/", noteHandler.Update)
			r.Put("/", noteHandler.Replace)
			r.Delete("/", noteHandler.Delete)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"invalid routing"}`))
	})

	return r
}
