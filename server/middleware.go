package server

import (
	"context"
	"errors"
	"net/http"

	"placement_portal/model"
	"placement_portal/service"
)

type contextKey string

const userKey contextKey = "user"

// currentUser returns the authenticated user, nil outside withUser.
func currentUser(r *http.Request) *model.User {
	if u, ok := r.Context().Value(userKey).(*model.User); ok {
		return u
	}
	return nil
}

// withUser resolves the session cookie into a user on the request context.
// Requests without a valid session pass through with no user; the require*
// wrappers decide what that means per route.
func (s *Server) withUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(s.cookieName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		user, err := s.auth.Authenticate(cookie.Value)
		if err != nil {
			if errors.Is(err, service.ErrNoSession) {
				s.clearSessionCookie(w)
				next.ServeHTTP(w, r)
				return
			}
			renderError(w, http.StatusInternalServerError, "Something went wrong.")
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireUser redirects anonymous requests to the login form.
func (s *Server) requireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if currentUser(r) == nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

// requireRole gates a route to one role. Wrong-role requests get 403, not a
// redirect: the caller is logged in, just not entitled.
func (s *Server) requireRole(role model.Role, next http.HandlerFunc) http.HandlerFunc {
	return s.requireUser(func(w http.ResponseWriter, r *http.Request) {
		if currentUser(r).Role != role {
			renderError(w, http.StatusForbidden, "You do not have access to this page.")
			return
		}
		next(w, r)
	})
}

// requireApproved layers the approval gate on top of requireRole. Admins
// and students always pass; unapproved companies see the pending view.
// Profile completion deliberately does NOT use this wrapper, so a company
// can submit the information the admin needs to approve it.
func (s *Server) requireApproved(role model.Role, next http.HandlerFunc) http.HandlerFunc {
	return s.requireRole(role, func(w http.ResponseWriter, r *http.Request) {
		if currentUser(r).NeedsApproval() {
			render(w, http.StatusForbidden, "pending_approval.html", map[string]any{
				"User": currentUser(r),
			})
			return
		}
		next(w, r)
	})
}

func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
