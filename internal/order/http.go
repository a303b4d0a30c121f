package order

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"Isfahan/internal/session"
	"Isfahan/pkg/kit"
)

type Server struct {
	Svc   *Service
	Store Store
	Log   *zap.Logger
}

// CheckoutHandler and Routes are mounted behind the login gate by the
// composition root; Routes goes under /orders.
func (s *Server) CheckoutHandler() http.HandlerFunc { return s.checkout }

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.listMine)
	r.Get("/{id}", s.get)

	return r
}

// AdminRoutes is mounted under /admin/orders.
func (s *Server) AdminRoutes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.listAll)
	r.Get("/{id}/slip", s.slip)

	return r
}

func (s *Server) checkout(w http.ResponseWriter, r *http.Request) {
	who, ok := session.IdentityFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "login required", nil)
		return
	}

	res, err := s.Svc.Checkout(r.Context(), who)
	if err != nil {
		if errors.Is(err, ErrEmptyCart) {
			kit.WriteError(w, r, http.StatusBadRequest, "cart is empty", nil)
			return
		}
		s.serverError(w, r, "checkout failed", err)
		return
	}

	kit.WriteJSON(w, http.StatusCreated, res)
}

func (s *Server) listMine(w http.ResponseWriter, r *http.Request) {
	who, ok := session.IdentityFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "login required", nil)
		return
	}

	orders, err := s.Store.ListByUser(r.Context(), who.ID)
	if err != nil {
		s.serverError(w, r, "list orders failed", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, orders)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	who, ok := session.IdentityFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "login required", nil)
		return
	}

	id := chi.URLParam(r, "id")
	o, found, err := s.Store.Get(r.Context(), id)
	if err != nil {
		s.serverError(w, r, "get order failed", err)
		return
	}
	if !found {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
		return
	}
	if o.UserID != who.ID && !who.IsAdmin {
		kit.WriteError(w, r, http.StatusForbidden, "forbidden", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, o)
}

func (s *Server) listAll(w http.ResponseWriter, r *http.Request) {
	orders, err := s.Store.ListAll(r.Context())
	if err != nil {
		s.serverError(w, r, "list orders failed", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, orders)
}

func (s *Server) slip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	slip, found, err := s.Store.SlipByOrder(r.Context(), id)
	if err != nil {
		s.serverError(w, r, "get slip failed", err)
		return
	}
	if !found {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"order_id": id})
		return
	}
	kit.WriteJSON(w, http.StatusOK, slip)
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if s.Log != nil {
		s.Log.Error(msg, zap.Error(err))
	}
	kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
}
