package controllers

import (
	"encoding/json"
	"html/template"
	"net/http"
	"path/filepath"
	"strings"
)

var viewPages = []string{
	"front",
	"permalink",
	"newpost",
	"editpost",
	"signup-form",
	"login-form",
	"notauth",
}

// LoadTemplates loads and parses all page templates against the shared layout
func LoadTemplates(basePath string) map[string]*template.Template {
	funcs := template.FuncMap{
		"linebreaks": linebreaks,
	}

	templates := make(map[string]*template.Template)
	for _, page := range viewPages {
		templates[page] = template.Must(template.New("layout.html").Funcs(funcs).ParseFiles(
			filepath.Join(basePath, "app/views/layout.html"),
			filepath.Join(basePath, "app/views/"+page+".html"),
		))
	}
	return templates
}

// linebreaks escapes s and turns newlines into <br> tags for display.
func linebreaks(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

func sendJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func sendJSONError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
