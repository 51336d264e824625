package stubapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/inohub/prospect-console/internal/config"
	"github.com/inohub/prospect-console/internal/logger"
)

// Handler serves the stub routes over in-memory state.
type Handler struct {
	cfg   *config.ServerConfig
	store *memoryStore

	logger *logger.Logger
}

// NewHandler constructs the stub handler and seeds the store with the default
// operator account.
func NewHandler(cfg *config.ServerConfig, logger *logger.Logger) (*Handler, error) {
	store, err := newMemoryStore(cfg.ReadyAfter)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("username", seedUsername).
		Str("password", seedPassword).
		Msg("stub api seeded with default operator")

	return &Handler{
		cfg:    cfg,
		store:  store,
		logger: logger,
	}, nil
}

// Init wires the route tree the console expects.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/login", h.login)
		r.Post("/auth/register", h.register)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/auth/users", h.listUsers)
		r.Post("/auth/edit", h.editUser)

		r.Get("/prospect/list", h.listProspects)
		r.Post("/prospect", h.createProspect)
		r.Get("/prospect/{id}", h.downloadProspect)

		r.Get("/dashboard", h.dashboard)
	})

	return router
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Err(err).Str("func", "*Handler.writeJSON").Msg("error encoding response")
	}
}
