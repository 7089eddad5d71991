// Package server exposes the wish-list HTTP API. Every item route exists in
// two spellings: unscoped (the default list, the pre-share context) and
// share-scoped under /api/lists/{share}. The share identifier is the only
// access control there is.
package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/dori/wisht/internal/category"
	"github.com/dori/wisht/internal/db"
	"github.com/dori/wisht/internal/model"
)

// Server handles the wish-list API
type Server struct {
	db  *db.DB
	log *log.Logger
	mux *http.ServeMux
}

// New creates a server and registers its routes
func New(database *db.DB, logger *log.Logger) *Server {
	s := &Server{
		db:  database,
		log: logger,
		mux: http.NewServeMux(),
	}

	s.mux.HandleFunc("GET /api/categories", s.handleCategories)
	s.mux.HandleFunc("POST /api/lists", s.handleCreateList)

	// Default-list routes
	s.mux.HandleFunc("GET /api/todos", s.handlePending)
	s.mux.HandleFunc("POST /api/todos", s.handleCreate)
	s.mux.HandleFunc("PUT /api/todos/{id}", s.handleUpdate)
	s.mux.HandleFunc("POST /api/todos/{id}/complete", s.handleComplete)
	s.mux.HandleFunc("GET /api/done", s.handleDone)
	s.mux.HandleFunc("PUT /api/done/{id}/comment", s.handleUpdateComment)

	// Share-scoped routes
	s.mux.HandleFunc("GET /api/lists/{share}/todos", s.handlePending)
	s.mux.HandleFunc("POST /api/lists/{share}/todos", s.handleCreate)
	s.mux.HandleFunc("PUT /api/lists/{share}/todos/{id}", s.handleUpdate)
	s.mux.HandleFunc("POST /api/lists/{share}/todos/{id}/complete", s.handleComplete)
	s.mux.HandleFunc("GET /api/lists/{share}/done", s.handleDone)
	s.mux.HandleFunc("PUT /api/lists/{share}/done/{id}/comment", s.handleUpdateComment)

	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	if status >= 500 {
		s.log.Printf("server error: %s", msg)
	}
	writeJSON(w, status, map[string]string{"error": msg})
}

// resolveList maps the request's share path segment (absent means the
// default list) to a list row. Writes a 404 and returns nil on a miss.
func (s *Server) resolveList(w http.ResponseWriter, r *http.Request) *model.List {
	share := r.PathValue("share")
	l, err := s.db.GetListByShareID(share)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return nil
	}
	if l == nil {
		s.writeError(w, http.StatusNotFound, "list not found")
		return nil
	}
	return l
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, category.Defaults)
}

func (s *Server) handleCreateList(w http.ResponseWriter, r *http.Request) {
	l, err := s.db.CreateList()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"share_id": l.ShareID})
}

func (s *Server) handlePending(w http.ResponseWriter, r *http.Request) {
	l := s.resolveList(w, r)
	if l == nil {
		return
	}
	items, err := s.db.GetPendingItems(l.ID)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleDone(w http.ResponseWriter, r *http.Request) {
	l := s.resolveList(w, r)
	if l == nil {
		return
	}
	items, err := s.db.GetDoneItems(l.ID)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}

type itemRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
}

type commentRequest struct {
	Comment string `json:"comment"`
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	l := s.resolveList(w, r)
	if l == nil {
		return
	}
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		s.writeError(w, http.StatusBadRequest, "title must not be empty")
		return
	}
	if req.Category == "" {
		req.Category = category.Defaults[0]
	}

	item, err := s.db.CreateItem(l.ID, req.Title, req.Category)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	l := s.resolveList(w, r)
	if l == nil {
		return
	}
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		s.writeError(w, http.StatusBadRequest, "title must not be empty")
		return
	}
	if req.Category == "" {
		req.Category = category.Defaults[0]
	}

	item, err := s.db.UpdateItem(l.ID, r.PathValue("id"), req.Title, req.Category)
	if errors.Is(err, db.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "item not found")
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleComplete(w http.ResponseWriter, r *http.Request) {
	l := s.resolveList(w, r)
	if l == nil {
		return
	}
	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := s.db.CompleteItem(l.ID, r.PathValue("id"), req.Comment)
	if errors.Is(err, db.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "item not found")
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleUpdateComment(w http.ResponseWriter, r *http.Request) {
	l := s.resolveList(w, r)
	if l == nil {
		return
	}
	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := s.db.UpdateComment(l.ID, r.PathValue("id"), req.Comment)
	if errors.Is(err, db.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "item not found")
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, item)
}
