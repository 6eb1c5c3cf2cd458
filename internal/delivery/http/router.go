package http

import (
	"net/http"

	"clinic-records/internal/delivery/dto"
	"clinic-records/internal/delivery/http/handler"
	"clinic-records/internal/delivery/http/middleware"
	"clinic-records/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	authHandler       *handler.AuthHandler
	screenHandlers    []*handler.ScreenHandler
	authMiddleware    *middleware.AuthMiddleware
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	screenHandlers []*handler.ScreenHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		authHandler:       authHandler,
		screenHandlers:    screenHandlers,
		authMiddleware:    authMiddleware,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Operator management (admin)
	operators := api.PathPrefix("/auth/operators").Subrouter()
	operators.Use(r.authMiddleware.Authenticate)
	operators.Use(middleware.RequireAdmin)
	operators.HandleFunc("", r.authHandler.CreateOperator).Methods(http.MethodPost)

	// Entity screens (any operator)
	screens := api.NewRoute().Subrouter()
	screens.Use(r.authMiddleware.Authenticate)
	screens.Use(middleware.RequireOperator)
	screens.HandleFunc("/screens", r.listScreens).Methods(http.MethodGet)

	for _, h := range r.screenHandlers {
		base := "/" + h.Name()
		// Fixed paths first so they are not read as ids.
		screens.HandleFunc(base+"/form", h.NewForm).Methods(http.MethodGet)
		screens.HandleFunc(base+"/filters", h.Filters).Methods(http.MethodGet)
		screens.HandleFunc(base, h.List).Methods(http.MethodGet)
		screens.HandleFunc(base, h.Create).Methods(http.MethodPost)
		screens.HandleFunc(base+"/{id}", h.Get).Methods(http.MethodGet)
		screens.HandleFunc(base+"/{id}/form", h.EditForm).Methods(http.MethodGet)
		screens.HandleFunc(base+"/{id}", h.Update).Methods(http.MethodPut)
		screens.Handle(base+"/{id}", middleware.RequireAdmin(http.HandlerFunc(h.Delete))).Methods(http.MethodDelete)
	}

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) listScreens(w http.ResponseWriter, req *http.Request) {
	out := make([]dto.ScreenResponse, len(r.screenHandlers))
	for i, h := range r.screenHandlers {
		out[i] = h.Describe()
	}
	response.Success(w, http.StatusOK, "Screens retrieved successfully", out)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
