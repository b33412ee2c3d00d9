package httpapi

import (
	"net/http"

	"github.com/example/restorun-backoffice/internal/domain"
)

type credentials struct {
	Username string      `json:"username"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role,omitempty"`
}

type loginResponse struct {
	Token string         `json:"token"`
	User  domain.Session `json:"user"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, s.Log, r, err)
		return
	}
	sess, err := s.UC.Login.Execute(r.Context(), in.Username, in.Password)
	if err != nil {
		writeError(w, s.Log, r, err)
		return
	}
	s.Log.Infow("user logged in", "username", sess.Username, "role", sess.Role)
	writeJSON(w, http.StatusOK, loginResponse{Token: sess.Token, User: sess})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	sess, _ := sessionFrom(r.Context())
	if err := s.UC.Logout.Execute(r.Context(), sess.Token); err != nil {
		writeError(w, s.Log, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	sess, _ := sessionFrom(r.Context())
	writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, s.Log, r, err)
		return
	}
	if in.Role == "" {
		in.Role = domain.RoleWaiter
	}
	u, err := s.UC.Register.Execute(r.Context(), in.Username, in.Password, in.Role)
	if err != nil {
		writeError(w, s.Log, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}
