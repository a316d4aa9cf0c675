package handlers

import (
	"encoding/json"
	"net/http"

	"aquarium/internal/aquarium"
	"aquarium/internal/infra"
	"aquarium/internal/middleware"
)

// App holds what the HTTP handlers share.
type App struct {
	Service *aquarium.Service
	Logger  *infra.Logger
}

// NewApp builds the handler set. A nil logger discards output.
func NewApp(svc *aquarium.Service, logger *infra.Logger) *App {
	if logger == nil {
		logger = infra.NopLogger()
	}
	return &App{Service: svc, Logger: logger}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// Aquarium serves one invocation of the activity aquarium.
func (a *App) Aquarium(w http.ResponseWriter, r *http.Request) {
	resp := a.Service.Invoke(r.Context(), middleware.LocaleFromContext(r.Context()))
	if err := resp.Write(w); err != nil {
		a.Logger.Warn().Err(err).Msg("aquarium: write response")
	}
}
