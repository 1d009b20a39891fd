package http

import (
	"context"
	"net/http"
)

type categoryRequest struct {
	Name   string `json:"name"`
	Color  string `json:"color"`
	Budget string `json:"budget"` // decimal string, empty for no limit
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"categories": s.categories.List(),
	})
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	budget, err := parseOptionalMoney(req.Budget)
	if err != nil {
		writeError(w, err)
		return
	}

	c, err := s.categories.Add(ctx, req.Name, req.Color, budget)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	budget, err := parseOptionalMoney(req.Budget)
	if err != nil {
		writeError(w, err)
		return
	}

	c, err := s.categories.Update(ctx, r.PathValue("id"), req.Name, req.Color, budget)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	if err := s.categories.Delete(ctx, r.PathValue("id"), parseConfirm(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleResetCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	if err := s.categories.Reset(ctx, parseConfirm(r)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"categories": s.categories.List(),
	})
}
