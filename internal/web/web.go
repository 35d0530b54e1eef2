package web

import (
	"embed"
	"encoding/json"
	"html/template"
	"io"
	"net/http"
	"strings"

	"github.com/Joseda-hg/demoboard/internal/model"
	"github.com/Joseda-hg/demoboard/internal/state"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.tmpl"))

type Server struct {
	store *state.Store
}

func NewServer(store *state.Store) *Server {
	return &Server{store: store}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.indexHandler)
	mux.HandleFunc("/api/users", s.apiUsersHandler)
	mux.HandleFunc("/api/todos", s.apiTodosHandler)
	mux.HandleFunc("/api/stats", s.apiStatsHandler)
	mux.HandleFunc("/api/export", s.apiExportHandler)
	mux.HandleFunc("/api/import", s.apiImportHandler)
	return mux
}

func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := struct {
		Theme      model.Theme
		Users      []model.User
		Todos      []model.Todo
		Filter     model.TodoFilter
		Stats      model.Statistics
		Counter    int64
		SearchTerm string
	}{
		Theme:      s.store.Theme(),
		Users:      s.store.SearchUsers(),
		Todos:      s.store.FilteredTodos(),
		Filter:     s.store.TodoFilter(),
		Stats:      s.store.Statistics(),
		Counter:    s.store.Counter(),
		SearchTerm: s.store.UserSearchTerm(),
	}

	if err := indexTemplate.Execute(w, data); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
}

func (s *Server) apiUsersHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.store.Users())
}

func (s *Server) apiTodosHandler(w http.ResponseWriter, r *http.Request) {
	todos := s.store.Todos()
	switch model.TodoFilter(strings.TrimSpace(r.URL.Query().Get("filter"))) {
	case model.FilterActive:
		todos = selectTodos(todos, false)
	case model.FilterCompleted:
		todos = selectTodos(todos, true)
	}
	writeJSON(w, todos)
}

func selectTodos(todos []model.Todo, completed bool) []model.Todo {
	result := make([]model.Todo, 0, len(todos))
	for _, todo := range todos {
		if todo.Completed == completed {
			result = append(result, todo)
		}
	}
	return result
}

func (s *Server) apiStatsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.store.Statistics())
}

func (s *Server) apiExportHandler(w http.ResponseWriter, r *http.Request) {
	payload, err := s.store.ExportData()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, payload)
}

func (s *Server) apiImportHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if !s.store.ImportData(string(body)) {
		w.WriteHeader(http.StatusBadRequest)
		writeJSON(w, map[string]string{"error": s.store.ErrorMessage()})
		return
	}

	writeJSON(w, s.store.Statistics())
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.WriteHeader(status)
	_, _ = w.Write([]byte(err.Error()))
}
