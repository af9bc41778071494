package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brightcart/shopchat/internal/usecase/dispatch"
)

// GatewayServer exposes the single-endpoint method dispatch surface.
type GatewayServer struct {
	dispatcher *dispatch.Service
}

// NewGatewayServer creates the gateway handler set.
func NewGatewayServer(dispatcher *dispatch.Service) *GatewayServer {
	return &GatewayServer{dispatcher: dispatcher}
}

// Mount registers the gateway routes.
func (s *GatewayServer) Mount(r chi.Router) {
	r.Post("/mcp", s.handleDispatch)
}

type dispatchRequest struct {
	Method string         `json:"method"`
	Params map[string]any `json:"params"`
}

// handleDispatch decodes {method, params} and always answers 200 with
// a result-or-error envelope; only an undecodable body is a 400.
func (s *GatewayServer) handleDispatch(w http.ResponseWriter, r *http.Request) {
	var req dispatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	env := s.dispatcher.Dispatch(r.Context(), req.Method, req.Params)
	writeJSON(w, r, http.StatusOK, env)
}
