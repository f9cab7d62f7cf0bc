package main

import (
	"context"
	"net/http"

	"mockdata/internal/provisioning/loader"
	"mockdata/pkg/platform/httputil"
)

type stateReporter interface {
	State() loader.State
}

type pinger interface {
	Health(ctx context.Context) error
}

type healthResponse struct {
	Status  string `json:"status"`
	Dataset string `json:"dataset"`
	Redis   string `json:"redis,omitempty"`
}

// healthHandler reports liveness plus the dataset cache state. The process is
// healthy while it can serve; a failed load is reported, not fatal.
func healthHandler(coord stateReporter, redis pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := healthResponse{Status: "ok", Dataset: coord.State().String()}
		if redis != nil {
			resp.Redis = "up"
			if err := redis.Health(r.Context()); err != nil {
				resp.Redis = "down"
			}
		}
		httputil.WriteJSON(w, http.StatusOK, resp)
	}
}
