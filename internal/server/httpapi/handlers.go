package httpapi

import (
	"encoding/json"
	"net/http"
)

// handleRegister creates a new account and returns its outward projection.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, validationMessages(err)...)
		return
	}

	user, err := s.users.Register(r.Context(), req.ToParams())
	if err != nil {
		s.logger.Error(r.Context(), "registration failed", "error", err.Error())
		respondServiceError(w, err)
		return
	}

	s.logger.Info(r.Context(), "registered", "user_id", user.ID)
	respondData(w, http.StatusCreated, toUserDTO(user))
}

// handleLogin verifies credentials, sets the session cookie, and returns the
// user. Unknown email and wrong password produce byte-identical responses.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, validationMessages(err)...)
		return
	}

	user, err := s.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	token, err := s.users.IssueToken(user.ID)
	if err != nil {
		s.logger.Error(r.Context(), "token issuance failed", "error", err.Error())
		respondError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	http.SetCookie(w, s.users.CookieDirective().Cookie(token))
	respondData(w, http.StatusOK, toUserDTO(user))
}

// handleLogout clears the session cookie. The token itself stays valid until
// its TTL runs out; there is no server-side revocation list.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, s.users.CookieDirective().ClearCookie())
	w.WriteHeader(http.StatusNoContent)
}

// handleMe returns the profile of the authenticated user.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	user, err := s.users.GetByID(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondData(w, http.StatusOK, toUserDTO(user))
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, "OK")
}
