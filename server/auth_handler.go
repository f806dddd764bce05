package server

import (
	"errors"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"placement_portal/service"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, "index.html", map[string]any{
		"User": currentUser(r),
	})
}

func (s *Server) handleRegisterPage(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, "register.html", map[string]any{
		"Flashes": s.popFlashes(w, r),
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderError(w, http.StatusBadRequest, "Could not read the form.")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	role := r.FormValue("role")

	if name == "" || email == "" || password == "" {
		s.renderRegisterError(w, http.StatusBadRequest, "Name, email and password are required.", name, email)
		return
	}

	_, err := s.auth.Register(name, email, password, role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			s.renderRegisterError(w, http.StatusConflict, "Email already registered.", name, email)
		case errors.Is(err, service.ErrInvalidRole), errors.Is(err, service.ErrAdminRegistration):
			s.renderRegisterError(w, http.StatusBadRequest, "Pick either the student or the company role.", name, email)
		default:
			log.WithError(err).Error("registration failed")
			renderError(w, http.StatusInternalServerError, "Something went wrong.")
		}
		return
	}

	s.addFlash(w, r, "Account created, you can log in now.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (s *Server) renderRegisterError(w http.ResponseWriter, status int, message, name, email string) {
	render(w, status, "register.html", map[string]any{
		"Error": message,
		"Form":  map[string]string{"name": name, "email": email},
	})
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if user := currentUser(r); user != nil {
		http.Redirect(w, r, roleLanding(user.Role), http.StatusSeeOther)
		return
	}
	render(w, http.StatusOK, "login.html", map[string]any{
		"Flashes": s.popFlashes(w, r),
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderError(w, http.StatusBadRequest, "Could not read the form.")
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	user, session, err := s.auth.Login(email, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// one message for both unknown email and wrong password
			render(w, http.StatusUnauthorized, "login.html", map[string]any{
				"Error": "Invalid credentials.",
				"Form":  map[string]string{"email": email},
			})
			return
		}
		log.WithError(err).Error("login failed")
		renderError(w, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, roleLanding(user.Role), http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(s.cookieName); err == nil {
		if err := s.auth.Logout(cookie.Value); err != nil {
			log.WithError(err).Warn("logout failed to delete session")
		}
	}
	s.clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
