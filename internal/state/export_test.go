package state

import (
	"strings"
	"testing"

	"github.com/Joseda-hg/demoboard/internal/model"
)

func TestExportDataShape(t *testing.T) {
	store, _, _ := newTestStore(t)

	payload, err := store.ExportData()
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	for _, field := range []string{`"users"`, `"todos"`, `"theme"`, `"exportDate"`} {
		if !strings.Contains(payload, field) {
			t.Fatalf("expected payload to contain %s", field)
		}
	}
	if !strings.Contains(payload, "\n  \"users\"") {
		t.Fatalf("expected two-space indentation")
	}
	if len(store.Users()) != 5 || len(store.Todos()) != 5 {
		t.Fatalf("expected export to leave state untouched")
	}
}

func TestImportExportRoundTrip(t *testing.T) {
	store, _, _ := newTestStore(t)

	store.ToggleTheme()
	store.ToggleTodo(2)
	payload, err := store.ExportData()
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	originalUsers := store.Users()
	originalTodos := store.Todos()

	store.ResetAllData()
	if !store.ImportData(payload) {
		t.Fatalf("import: %q", store.ErrorMessage())
	}

	users := store.Users()
	if len(users) != len(originalUsers) {
		t.Fatalf("expected %d users, got %d", len(originalUsers), len(users))
	}
	for i, user := range originalUsers {
		if users[i] != user {
			t.Fatalf("user %d mismatch: %+v vs %+v", i, users[i], user)
		}
	}

	todos := store.Todos()
	if len(todos) != len(originalTodos) {
		t.Fatalf("expected %d todos, got %d", len(originalTodos), len(todos))
	}
	for i, todo := range originalTodos {
		got := todos[i]
		if got.ID != todo.ID || got.Title != todo.Title || got.Completed != todo.Completed || got.Priority != todo.Priority {
			t.Fatalf("todo %d mismatch: %+v vs %+v", i, got, todo)
		}
		if !got.CreatedAt.Equal(todo.CreatedAt) {
			t.Fatalf("todo %d timestamp mismatch: %v vs %v", i, got.CreatedAt, todo.CreatedAt)
		}
	}

	if store.Theme() != model.ThemeDark {
		t.Fatalf("expected imported theme dark, got %q", store.Theme())
	}
	if stats := store.Statistics(); stats.TotalUsers != 5 || stats.TotalTodos != 5 {
		t.Fatalf("expected statistics to be recomputed, got %+v", stats)
	}
}

func TestImportInvalidJSON(t *testing.T) {
	store, _, _ := newTestStore(t)

	if store.ImportData("not json") {
		t.Fatalf("expected import to fail")
	}
	if msg := store.ErrorMessage(); msg != "Invalid JSON data for import" {
		t.Fatalf("expected invalid-json message, got %q", msg)
	}
	if len(store.Users()) != 5 || len(store.Todos()) != 5 {
		t.Fatalf("expected state to be untouched")
	}
	if store.Theme() != model.ThemeLight {
		t.Fatalf("expected theme to be untouched, got %q", store.Theme())
	}
}

func TestImportThemeOnly(t *testing.T) {
	store, _, _ := newTestStore(t)

	store.ImportData("bad payload")
	if !store.ImportData(`{"theme":"dark"}`) {
		t.Fatalf("import: %q", store.ErrorMessage())
	}

	if store.Theme() != model.ThemeDark {
		t.Fatalf("expected theme dark, got %q", store.Theme())
	}
	if len(store.Users()) != 5 || len(store.Todos()) != 5 {
		t.Fatalf("expected collections to be untouched")
	}
	if msg := store.ErrorMessage(); msg != "" {
		t.Fatalf("expected error message to be cleared, got %q", msg)
	}
}

func TestImportAdoptsThemeVerbatim(t *testing.T) {
	store, _, _ := newTestStore(t)

	// Unlike the persisted theme, imports skip the light/dark check.
	if !store.ImportData(`{"theme":"sepia"}`) {
		t.Fatalf("import: %q", store.ErrorMessage())
	}
	if store.Theme() != model.Theme("sepia") {
		t.Fatalf("expected verbatim theme, got %q", store.Theme())
	}
}

func TestImportSkipsWrongShapeFields(t *testing.T) {
	store, _, _ := newTestStore(t)

	if !store.ImportData(`{"users":"nope","todos":42,"theme":""}`) {
		t.Fatalf("import: %q", store.ErrorMessage())
	}

	if len(store.Users()) != 5 || len(store.Todos()) != 5 {
		t.Fatalf("expected wrong-shape fields to be skipped")
	}
	if store.Theme() != model.ThemeLight {
		t.Fatalf("expected empty theme to be skipped, got %q", store.Theme())
	}
}

func TestImportEmptyObjectStillClearsError(t *testing.T) {
	store, _, _ := newTestStore(t)

	store.ImportData("bad payload")
	if !store.ImportData(`{"exportDate":"2026-01-01T00:00:00Z","extra":true}`) {
		t.Fatalf("import: %q", store.ErrorMessage())
	}

	if msg := store.ErrorMessage(); msg != "" {
		t.Fatalf("expected error message to be cleared, got %q", msg)
	}
	if len(store.Users()) != 5 || len(store.Todos()) != 5 {
		t.Fatalf("expected collections to be untouched")
	}
}

func TestImportReplacesCollectionsWholesale(t *testing.T) {
	store, _, _ := newTestStore(t)

	payload := `{
  "users": [{"id": 10, "name": "Solo", "email": "solo@example.com", "isActive": false}],
  "todos": []
}`
	if !store.ImportData(payload) {
		t.Fatalf("import: %q", store.ErrorMessage())
	}

	users := store.Users()
	if len(users) != 1 || users[0].ID != 10 || users[0].Name != "Solo" {
		t.Fatalf("expected wholesale user replacement, got %+v", users)
	}
	if len(store.Todos()) != 0 {
		t.Fatalf("expected todos to be replaced with empty list")
	}
	if stats := store.Statistics(); stats.TotalUsers != 1 || stats.ActiveUsers != 0 || stats.TotalTodos != 0 {
		t.Fatalf("expected recomputed statistics, got %+v", stats)
	}
}

func TestCalculateStatisticsEmpty(t *testing.T) {
	if got := calculateStatistics(nil, nil); got != (model.Statistics{}) {
		t.Fatalf("expected all-zero statistics, got %+v", got)
	}
}
