package routes

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

func setupTestTemplates(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	viewsDir := filepath.Join(tmpDir, "app", "views")
	require.NoError(t, os.MkdirAll(viewsDir, 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "static"), 0755))

	// Minimal templates exposing the fields the tests assert on.
	templates := map[string]string{
		"layout.html":      `{{define "layout"}}<html><body>{{if .CurrentUser}}<span class="whoami">{{.CurrentUser.Name}}</span>{{end}}{{template "content" .}}</body></html>{{end}}`,
		"front.html":       `{{define "content"}}{{range .Posts}}<h2>{{.Subject}}</h2><span class="likes">{{.LikesCounter}}</span>{{end}}{{end}}`,
		"permalink.html":   `{{define "content"}}<h1>{{.Post.Subject}}</h1><div>{{linebreaks .Post.Content}}</div>{{range .Post.Comments}}<p>{{.AuthorName}}: {{.Comment}}</p>{{end}}{{end}}`,
		"newpost.html":     `{{define "content"}}<p class="form-error">{{.Error}}</p>{{end}}`,
		"editpost.html":    `{{define "content"}}<p class="form-error">{{.Error}}</p><input value="{{.Subject}}">{{end}}`,
		"signup-form.html": `{{define "content"}}<p class="form-error">{{.ErrorUsername}} {{.ErrorPassword}} {{.ErrorVerify}} {{.ErrorEmail}}</p>{{end}}`,
		"login-form.html":  `{{define "content"}}<p class="form-error">{{.Error}}</p>{{end}}`,
		"notauth.html":     `{{define "content"}}<p>Sorry {{.Username}}</p>{{end}}`,
	}
	for name, content := range templates {
		require.NoError(t, os.WriteFile(filepath.Join(viewsDir, name), []byte(content), 0644))
	}

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "static", "main.css"), []byte("body {}"), 0644))
	return tmpDir
}

func setupTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return SetupRoutes(db, []byte("test-secret"), setupTestTemplates(t))
}

func postFormReq(path string, form url.Values, session *http.Cookie) *http.Request {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if session != nil {
		req.AddCookie(session)
	}
	return req
}

func getReq(path string, session *http.Cookie) *http.Request {
	req := httptest.NewRequest("GET", path, nil)
	if session != nil {
		req.AddCookie(session)
	}
	return req
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == "user_id" && c.Value != "" {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

// signupUser registers a user through the signup form and returns the
// session cookie issued for it.
func signupUser(t *testing.T, router *mux.Router, name string) *http.Cookie {
	t.Helper()
	form := url.Values{
		"username": {name},
		"password": {"hunter2"},
		"verify":   {"hunter2"},
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, postFormReq("/signup", form, nil))
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/blog", w.Header().Get("Location"))
	return sessionCookie(t, w)
}

// createPost submits the new-post form and returns the id-bearing
// redirect target, e.g. "/blog/1".
func createPost(t *testing.T, router *mux.Router, session *http.Cookie, subject, content string) string {
	t.Helper()
	form := url.Values{"subject": {subject}, "content": {content}}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, postFormReq("/blog/newpost", form, session))
	require.Equal(t, http.StatusSeeOther, w.Code)
	location := w.Header().Get("Location")
	require.True(t, strings.HasPrefix(location, "/blog/"))
	return location
}
