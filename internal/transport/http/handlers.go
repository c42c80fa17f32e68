package http

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/robotcarousel/internal/app"
)

type pageData[R any] struct {
	Title string
	Base  string
	View  app.Snapshot[R]
}

// component serves one registry: an HTML page with form-driven navigation and
// a JSON mirror under /api. The browser session is tied to a view by cookie.
type component[R any] struct {
	base     string
	cookie   string
	title    string
	registry *app.Registry[R]
	page     *template.Template
}

func newComponent[R any](base, cookie, title string, registry *app.Registry[R], page *template.Template) *component[R] {
	return &component[R]{
		base:     base,
		cookie:   cookie,
		title:    title,
		registry: registry,
		page:     page,
	}
}

func (c *component[R]) register(r *mux.Router) {
	r.HandleFunc(c.base, c.showPage).Methods("GET")
	r.HandleFunc(c.base+"/next", c.navigate((*app.View[R]).Advance)).Methods("POST")
	r.HandleFunc(c.base+"/prev", c.navigate((*app.View[R]).Retreat)).Methods("POST")
	r.HandleFunc(c.base+"/remount", c.remount).Methods("POST")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc(c.base, c.apiSnapshot).Methods("GET")
	api.HandleFunc(c.base+"/next", c.apiNavigate((*app.View[R]).Advance)).Methods("POST")
	api.HandleFunc(c.base+"/prev", c.apiNavigate((*app.View[R]).Retreat)).Methods("POST")
}

// view returns the session's view, mounting a new one when the cookie is
// missing or points at a view that no longer exists.
func (c *component[R]) view(w http.ResponseWriter, r *http.Request) (*app.View[R], error) {
	if ck, err := r.Cookie(c.cookie); err == nil {
		if v, ok := c.registry.Get(ck.Value); ok {
			return v, nil
		}
	}
	v, err := c.registry.Mount()
	if err != nil {
		return nil, err
	}
	c.setCookie(w, v.ID())
	return v, nil
}

func (c *component[R]) setCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.cookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (c *component[R]) showPage(w http.ResponseWriter, r *http.Request) {
	v, err := c.view(w, r)
	if err != nil {
		c.fail(w, err)
		return
	}

	data := pageData[R]{Title: c.title, Base: c.base, View: v.Snapshot()}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.page.ExecuteTemplate(w, "layout", data); err != nil {
		slog.Error("Failed to render page", "component", c.registry.Component(), "error", err)
	}
}

func (c *component[R]) navigate(move func(*app.View[R]) app.Snapshot[R]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := c.view(w, r)
		if err != nil {
			c.fail(w, err)
			return
		}
		move(v)
		http.Redirect(w, r, c.base, http.StatusSeeOther)
	}
}

func (c *component[R]) remount(w http.ResponseWriter, r *http.Request) {
	var (
		v   *app.View[R]
		err error
	)
	if ck, cerr := r.Cookie(c.cookie); cerr == nil {
		v, err = c.registry.Remount(ck.Value)
	} else {
		v, err = c.registry.Mount()
	}
	if err != nil {
		c.fail(w, err)
		return
	}
	c.setCookie(w, v.ID())
	http.Redirect(w, r, c.base, http.StatusSeeOther)
}

func (c *component[R]) apiSnapshot(w http.ResponseWriter, r *http.Request) {
	v, err := c.view(w, r)
	if err != nil {
		c.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v.Snapshot())
}

func (c *component[R]) apiNavigate(move func(*app.View[R]) app.Snapshot[R]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := c.view(w, r)
		if err != nil {
			c.fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, move(v))
	}
}

func (c *component[R]) fail(w http.ResponseWriter, err error) {
	slog.Error("Failed to mount view", "component", c.registry.Component(), "error", err)
	http.Error(w, "view unavailable", http.StatusServiceUnavailable)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("Failed to encode response", "error", err)
	}
}
