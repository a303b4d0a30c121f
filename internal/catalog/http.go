package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"Isfahan/pkg/kit"
)

type Server struct {
	Store Store
	Log   *zap.Logger
}

// Routes is mounted at /books; the featured shelf for the home view is
// exposed separately via FeaturedHandler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.list)
	r.Get("/facets", s.facets)
	r.Get("/{id}", s.get)

	return r
}

func (s *Server) FeaturedHandler() http.HandlerFunc { return s.featured }

// AdminRoutes is mounted at /admin/books behind the admin gate.
func (s *Server) AdminRoutes() http.Handler {
	r := chi.NewRouter()

	r.Patch("/{id}/featured", s.setFeatured)
	r.Delete("/{id}", s.delete)
	r.Post("/delete", s.bulkDelete)

	return r
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	books, err := s.Store.List(r.Context())
	if err != nil {
		s.serverError(w, r, "list books failed", err)
		return
	}

	c, err := criteriaFromQuery(r)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad filter", map[string]any{"cause": err.Error()})
		return
	}

	kit.WriteJSON(w, http.StatusOK, Filter(books, c))
}

func criteriaFromQuery(r *http.Request) (Criteria, error) {
	q := r.URL.Query()

	c := Criteria{
		Search: q.Get("q"),
		Facets: q["category"],
	}

	if v := q.Get("price_min"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return Criteria{}, err
		}
		c.PriceMin = d
	}
	if v := q.Get("price_max"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return Criteria{}, err
		}
		c.PriceMax = d
	}

	return c, nil
}

func (s *Server) facets(w http.ResponseWriter, r *http.Request) {
	books, err := s.Store.List(r.Context())
	if err != nil {
		s.serverError(w, r, "list books failed", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, CollectFacets(books))
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	b, ok, err := s.Store.Get(r.Context(), id)
	if err != nil {
		s.serverError(w, r, "get book failed", err)
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
		return
	}
	kit.WriteJSON(w, http.StatusOK, b)
}

func (s *Server) featured(w http.ResponseWriter, r *http.Request) {
	books, err := s.Store.Featured(r.Context())
	if err != nil {
		s.serverError(w, r, "featured books failed", err)
		return
	}
	if books == nil {
		books = []Book{}
	}
	kit.WriteJSON(w, http.StatusOK, books)
}

type setFeaturedReq struct {
	Featured bool `json:"featured"`
}

func (s *Server) setFeatured(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req setFeaturedReq
	if !kit.DecodeJSON(w, r, &req) {
		return
	}

	ok, err := s.Store.SetFeatured(r.Context(), id, req.Featured)
	if err != nil {
		s.serverError(w, r, "set featured failed", err)
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ok, err := s.Store.Delete(r.Context(), id)
	if err != nil {
		s.serverError(w, r, "delete book failed", err)
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type bulkDeleteReq struct {
	IDs []string `json:"ids"`
}

func (s *Server) bulkDelete(w http.ResponseWriter, r *http.Request) {
	var req bulkDeleteReq
	if !kit.DecodeJSON(w, r, &req) {
		return
	}

	deleted := 0
	for _, id := range req.IDs {
		ok, err := s.Store.Delete(r.Context(), id)
		if err != nil {
			s.serverError(w, r, "delete book failed", err)
			return
		}
		if ok {
			deleted++
		}
	}

	kit.WriteJSON(w, http.StatusOK, map[string]any{"deleted": deleted})
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if s.Log != nil {
		s.Log.Error(msg, zap.Error(err))
	}
	kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
}
