package cart

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"Isfahan/internal/catalog"
	"Isfahan/pkg/kit"
)

type Server struct {
	Cart    *Engine
	Catalog catalog.Store
	Log     *zap.Logger
}

// Routes is mounted at /cart by the composition root.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.get)
	r.Post("/items", s.addItem)
	r.Put("/items/{bookID}", s.updateItem)
	r.Delete("/items/{bookID}", s.removeItem)
	r.Delete("/", s.clear)

	return r
}

type cartView struct {
	Items     []LineItem      `json:"items"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"itemCount"`
}

func (s *Server) view() cartView {
	return cartView{
		Items:     s.Cart.Items(),
		Total:     s.Cart.Total(),
		ItemCount: s.Cart.ItemCount(),
	}
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.view())
}

type addItemReq struct {
	BookID   string `json:"book_id"`
	Quantity int    `json:"quantity"`
}

func (s *Server) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemReq
	if !kit.DecodeJSON(w, r, &req) {
		return
	}

	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 0 {
		kit.WriteError(w, r, http.StatusBadRequest, "quantity must be positive", nil)
		return
	}

	b, ok, err := s.Catalog.Get(r.Context(), req.BookID)
	if err != nil {
		s.serverError(w, r, "get book failed", err)
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": req.BookID})
		return
	}

	if err := s.Cart.Add(r.Context(), b, req.Quantity); err != nil {
		s.serverError(w, r, "add to cart failed", err)
		return
	}

	kit.WriteJSON(w, http.StatusOK, s.view())
}

type updateItemReq struct {
	Quantity int `json:"quantity"`
}

func (s *Server) updateItem(w http.ResponseWriter, r *http.Request) {
	var req updateItemReq
	if !kit.DecodeJSON(w, r, &req) {
		return
	}

	if err := s.Cart.UpdateQuantity(r.Context(), chi.URLParam(r, "bookID"), req.Quantity); err != nil {
		s.serverError(w, r, "update quantity failed", err)
		return
	}

	kit.WriteJSON(w, http.StatusOK, s.view())
}

func (s *Server) removeItem(w http.ResponseWriter, r *http.Request) {
	if err := s.Cart.Remove(r.Context(), chi.URLParam(r, "bookID")); err != nil {
		s.serverError(w, r, "remove from cart failed", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, s.view())
}

func (s *Server) clear(w http.ResponseWriter, r *http.Request) {
	if err := s.Cart.Clear(r.Context()); err != nil {
		s.serverError(w, r, "clear cart failed", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, s.view())
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if s.Log != nil {
		s.Log.Error(msg, zap.Error(err))
	}
	kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
}
