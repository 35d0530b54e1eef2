package state

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Joseda-hg/demoboard/internal/model"
)

type exportPayload struct {
	Users      []model.User `json:"users"`
	Todos      []model.Todo `json:"todos"`
	Theme      model.Theme  `json:"theme"`
	ExportDate time.Time    `json:"exportDate"`
}

// ExportData renders the current collections and theme as pretty-printed
// JSON. It never mutates state.
func (s *Store) ExportData() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload := exportPayload{
		Users:      s.users,
		Todos:      s.todos,
		Theme:      s.theme,
		ExportDate: s.now(),
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("export data: %w", err)
	}
	return string(data), nil
}

// ImportData replaces collections and theme from a JSON payload. Each
// recognized field is adopted independently; a field that does not decode
// as the expected shape is skipped. Unparseable input sets the error
// message and leaves all state untouched. The theme is adopted verbatim,
// without the light/dark check the persisted theme gets.
func (s *Store) ImportData(text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := []byte(text)
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		if !json.Valid(data) {
			s.errorMessage = "Invalid JSON data for import"
			return false
		}
		// Valid JSON that is not an object carries no recognized fields.
		raw = nil
	}

	if users, ok := decodeUsers(raw["users"]); ok {
		s.users = users
	}
	if todos, ok := decodeTodos(raw["todos"]); ok {
		s.todos = todos
	}
	if theme, ok := decodeTheme(raw["theme"]); ok {
		s.theme = theme
	}

	s.recompute()
	s.errorMessage = ""
	return true
}

func decodeUsers(msg json.RawMessage) ([]model.User, bool) {
	if len(msg) == 0 || string(msg) == "null" {
		return nil, false
	}
	var users []model.User
	if err := json.Unmarshal(msg, &users); err != nil {
		return nil, false
	}
	if users == nil {
		users = []model.User{}
	}
	return users, true
}

func decodeTodos(msg json.RawMessage) ([]model.Todo, bool) {
	if len(msg) == 0 || string(msg) == "null" {
		return nil, false
	}
	var todos []model.Todo
	if err := json.Unmarshal(msg, &todos); err != nil {
		return nil, false
	}
	if todos == nil {
		todos = []model.Todo{}
	}
	return todos, true
}

func decodeTheme(msg json.RawMessage) (model.Theme, bool) {
	if len(msg) == 0 {
		return "", false
	}
	var theme string
	if err := json.Unmarshal(msg, &theme); err != nil {
		return "", false
	}
	if theme == "" {
		return "", false
	}
	return model.Theme(theme), true
}
