package web

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const sessionName = "showdown-session"

// userID pulls the logged-in user out of the session cookie, or "" when the
// request is anonymous.
func userID(store *sessions.CookieStore, r *http.Request) string {
	session, err := store.Get(r, sessionName)
	if err != nil {
		// A bad or tampered cookie is the same as no cookie.
		return ""
	}
	id, _ := session.Values["userID"].(string)
	return id
}

func saveUserSession(store *sessions.CookieStore, w http.ResponseWriter, r *http.Request, id string) error {
	session, _ := store.Get(r, sessionName)
	session.Values["userID"] = id
	return session.Save(r, w)
}

func clearUserSession(store *sessions.CookieStore, w http.ResponseWriter, r *http.Request) error {
	session, _ := store.Get(r, sessionName)
	delete(session.Values, "userID")
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// requireAuth redirects anonymous requests to the login page.
func requireAuth(store *sessions.CookieStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID(store, r) == "" {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
