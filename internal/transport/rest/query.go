package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brightcart/shopchat/internal/usecase/query"
)

// QueryServer exposes the top-level query endpoint.
type QueryServer struct {
	service *query.Service
}

// NewQueryServer creates the query handler set.
func NewQueryServer(service *query.Service) *QueryServer {
	return &QueryServer{service: service}
}

// Mount registers the query routes.
func (s *QueryServer) Mount(r chi.Router) {
	r.Post("/process", s.handleProcess)
}

type processRequest struct {
	Query        string `json:"query"`
	IsStructured bool   `json:"is_structured"`
}

func (s *QueryServer) handleProcess(w http.ResponseWriter, r *http.Request) {
	var req processRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Query == "" {
		writeError(w, r, http.StatusBadRequest, "query must not be empty")
		return
	}

	reply := s.service.Answer(r.Context(), req.Query, req.IsStructured)
	writeJSON(w, r, http.StatusOK, reply)
}
