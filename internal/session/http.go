package session

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"Isfahan/pkg/kit"
)

const sessionTTL = 12 * time.Hour

type Server struct {
	Log   *zap.Logger
	Store *Store
	JWT   *TokenMaker
}

// Handler accessors let the composition root attach per-route rate
// limiting before mounting.
func (s *Server) LoginHandler() http.HandlerFunc      { return s.handleLogin }
func (s *Server) AdminLoginHandler() http.HandlerFunc { return s.handleAdminLogin }
func (s *Server) RegisterHandler() http.HandlerFunc   { return s.handleRegister }
func (s *Server) LogoutHandler() http.HandlerFunc     { return s.handleLogout }
func (s *Server) WhoAmIHandler() http.HandlerFunc     { return s.handleWhoAmI }

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResp struct {
	AccessToken string   `json:"access_token"`
	User        Identity `json:"user"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	s.login(w, r, false)
}

// handleAdminLogin is the admin entrance: same identity list, but a
// matching non-admin account is turned away.
func (s *Server) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	s.login(w, r, true)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request, wantAdmin bool) {
	req, ok := decodeLogin(w, r)
	if !ok {
		return
	}

	id, err := s.Store.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeAuthError(w, r, err)
		return
	}

	if wantAdmin && !id.IsAdmin {
		_ = s.Store.Logout(r.Context())
		kit.WriteError(w, r, http.StatusForbidden, "admin only", nil)
		return
	}

	s.respondWithToken(w, r, id)
}

func decodeLogin(w http.ResponseWriter, r *http.Request) (loginReq, bool) {
	var req loginReq
	if !kit.DecodeJSON(w, r, &req) {
		return loginReq{}, false
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "email/password required", nil)
		return loginReq{}, false
	}

	return req, true
}

type registerReq struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if !kit.DecodeJSON(w, r, &req) {
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	if req.Email == "" || req.Name == "" || req.Password == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "email/name/password required", nil)
		return
	}

	id, err := s.Store.Register(r.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		s.writeAuthError(w, r, err)
		return
	}

	s.respondWithToken(w, r, id)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.Store.Logout(r.Context()); err != nil {
		if s.Log != nil {
			s.Log.Error("logout failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleWhoAmI(w http.ResponseWriter, r *http.Request) {
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, "Bearer ") {
		kit.WriteError(w, r, http.StatusUnauthorized, "missing token", nil)
		return
	}

	claims, err := s.JWT.Parse(strings.TrimPrefix(authz, "Bearer "))
	if err != nil {
		kit.WriteError(w, r, http.StatusUnauthorized, "invalid token", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, Identity{
		ID:      claims.UserID,
		Email:   claims.Email,
		Name:    claims.Name,
		IsAdmin: claims.IsAdmin,
	})
}

func (s *Server) respondWithToken(w http.ResponseWriter, r *http.Request, id Identity) {
	tok, err := s.JWT.New(id, sessionTTL)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("token issue", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, loginResp{AccessToken: tok, User: id})
}

func (s *Server) writeAuthError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		kit.WriteError(w, r, http.StatusUnauthorized, err.Error(), nil)
	case errors.Is(err, ErrEmailExists):
		kit.WriteError(w, r, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, ErrBusy):
		kit.WriteError(w, r, http.StatusTooManyRequests, err.Error(), nil)
	default:
		if s.Log != nil {
			s.Log.Error("auth failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
	}
}
