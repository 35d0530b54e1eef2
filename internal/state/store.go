package state

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Joseda-hg/demoboard/internal/clock"
	"github.com/Joseda-hg/demoboard/internal/model"
)

// ThemeKey is the settings key the selected theme is persisted under.
const ThemeKey = "demo-theme"

// KeyValueStore is the persistence surface the store needs: a single
// string value per key, with explicit absence.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Store owns the users and todos collections and all UI state derived from
// them. Ticks arrive on the scheduler goroutine while views call in from
// theirs, so every entry point serializes on the internal mutex.
type Store struct {
	mu sync.Mutex

	settings KeyValueStore
	ticks    clock.TickSource
	now      func() time.Time

	users []model.User
	todos []model.Todo

	selectedUserID   int
	userSearchTerm   string
	showUserForm     bool
	newTodoTitle     string
	selectedPriority model.Priority
	todoFilter       model.TodoFilter
	isLoading        bool
	errorMessage     string
	theme            model.Theme
	currentTime      time.Time
	counter          int64
	stats            model.Statistics

	unsubscribe func()
	onTick      func()
}

func New(settings KeyValueStore, ticks clock.TickSource) *Store {
	return &Store{
		settings:         settings,
		ticks:            ticks,
		now:              time.Now,
		users:            []model.User{},
		todos:            []model.Todo{},
		selectedPriority: model.PriorityMedium,
		todoFilter:       model.FilterAll,
		theme:            model.ThemeLight,
	}
}

// Start loads the persisted theme, subscribes to the tick source and seeds
// the default collections.
func (s *Store) Start() error {
	s.mu.Lock()
	s.loadTheme()
	s.recompute()
	s.mu.Unlock()

	unsubscribe, err := s.ticks.Subscribe(s.handleTick)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.unsubscribe = unsubscribe
	s.seedUsers()
	s.recompute()
	s.seedTodos()
	s.recompute()
	s.mu.Unlock()

	return nil
}

// Stop cancels the tick subscription. Safe to call more than once.
func (s *Store) Stop() {
	s.mu.Lock()
	unsubscribe := s.unsubscribe
	s.unsubscribe = nil
	s.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// SetOnTick registers a callback invoked after each timer tick, outside the
// store lock. The view layer uses it to schedule redraws.
func (s *Store) SetOnTick(fn func()) {
	s.mu.Lock()
	s.onTick = fn
	s.mu.Unlock()
}

func (s *Store) handleTick() {
	s.mu.Lock()
	s.currentTime = s.now()
	s.counter++
	fn := s.onTick
	s.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// AddUser validates and appends a new user. A false return means the input
// was rejected and ErrorMessage explains why.
func (s *Store) AddUser(name, email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		s.errorMessage = "Name and email are required"
		return false
	}
	if !validEmail(email) {
		s.errorMessage = "Please enter a valid email address"
		return false
	}

	s.users = append(s.users, model.User{
		ID:       nextUserID(s.users),
		Name:     name,
		Email:    email,
		IsActive: true,
	})
	s.recompute()
	s.errorMessage = ""
	s.showUserForm = false
	return true
}

func (s *Store) DeleteUser(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := userIndex(s.users, id)
	if index < 0 {
		return
	}

	s.users = append(s.users[:index], s.users[index+1:]...)
	if s.selectedUserID == id {
		s.selectedUserID = 0
	}
	s.recompute()
}

func (s *Store) ToggleUserStatus(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := userIndex(s.users, id)
	if index < 0 {
		return
	}

	s.users[index].IsActive = !s.users[index].IsActive
	s.recompute()
}

// SelectUser records the selection by id; the user is resolved live on
// read so later mutation and deletion stay visible.
func (s *Store) SelectUser(id int) {
	s.mu.Lock()
	s.selectedUserID = id
	s.mu.Unlock()
}

func (s *Store) SelectedUser() (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := userIndex(s.users, s.selectedUserID)
	if index < 0 {
		return model.User{}, false
	}
	return s.users[index], true
}

// SearchUsers filters by the current search term, case-insensitively over
// name and email. A blank term returns all users in stored order.
func (s *Store) SearchUsers() []model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	term := strings.ToLower(strings.TrimSpace(s.userSearchTerm))
	if term == "" {
		return append([]model.User(nil), s.users...)
	}

	result := make([]model.User, 0, len(s.users))
	for _, user := range s.users {
		if strings.Contains(strings.ToLower(user.Name), term) ||
			strings.Contains(strings.ToLower(user.Email), term) {
			result = append(result, user)
		}
	}
	return result
}

// AddTodo appends a todo built from the pending title and selected
// priority. A false return means the title was rejected.
func (s *Store) AddTodo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	title := strings.TrimSpace(s.newTodoTitle)
	if title == "" {
		s.errorMessage = "Todo title is required"
		return false
	}

	s.todos = append(s.todos, model.Todo{
		ID:        nextTodoID(s.todos),
		Title:     title,
		Completed: false,
		Priority:  s.selectedPriority,
		CreatedAt: s.now(),
	})
	s.newTodoTitle = ""
	s.errorMessage = ""
	s.recompute()
	return true
}

func (s *Store) ToggleTodo(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := todoIndex(s.todos, id)
	if index < 0 {
		return
	}

	s.todos[index].Completed = !s.todos[index].Completed
	s.recompute()
}

func (s *Store) DeleteTodo(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := todoIndex(s.todos, id)
	if index < 0 {
		return
	}

	s.todos = append(s.todos[:index], s.todos[index+1:]...)
	s.recompute()
}

func (s *Store) UpdateTodoPriority(id int, priority model.Priority) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := todoIndex(s.todos, id)
	if index < 0 {
		return
	}

	s.todos[index].Priority = priority
	s.recompute()
}

// FilteredTodos applies the current todo filter. Unknown filter values
// behave like "all".
func (s *Store) FilteredTodos() []model.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.todoFilter {
	case model.FilterActive:
		result := make([]model.Todo, 0, len(s.todos))
		for _, todo := range s.todos {
			if !todo.Completed {
				result = append(result, todo)
			}
		}
		return result
	case model.FilterCompleted:
		result := make([]model.Todo, 0, len(s.todos))
		for _, todo := range s.todos {
			if todo.Completed {
				result = append(result, todo)
			}
		}
		return result
	default:
		return append([]model.Todo(nil), s.todos...)
	}
}

func (s *Store) ActiveTodosCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, todo := range s.todos {
		if !todo.Completed {
			count++
		}
	}
	return count
}

func (s *Store) CompletedTodosCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, todo := range s.todos {
		if todo.Completed {
			count++
		}
	}
	return count
}

func (s *Store) ClearCompletedTodos() {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining := make([]model.Todo, 0, len(s.todos))
	for _, todo := range s.todos {
		if !todo.Completed {
			remaining = append(remaining, todo)
		}
	}
	s.todos = remaining
	s.recompute()
}

func (s *Store) MarkAllTodosComplete() {
	s.setAllTodosCompleted(true)
}

func (s *Store) MarkAllTodosIncomplete() {
	s.setAllTodosCompleted(false)
}

func (s *Store) setAllTodosCompleted(completed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.todos {
		s.todos[i].Completed = completed
	}
	s.recompute()
}

func (s *Store) ActivateAllUsers() {
	s.setAllUsersActive(true)
}

func (s *Store) DeactivateAllUsers() {
	s.setAllUsersActive(false)
}

func (s *Store) setAllUsersActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		s.users[i].IsActive = active
	}
	s.recompute()
}

func (s *Store) SortUsersByName() {
	s.mu.Lock()
	defer s.mu.Unlock()

	collator := collate.New(language.Und)
	sort.SliceStable(s.users, func(i, j int) bool {
		return collator.CompareString(s.users[i].Name, s.users[j].Name) < 0
	})
}

func (s *Store) SortUsersByEmail() {
	s.mu.Lock()
	defer s.mu.Unlock()

	collator := collate.New(language.Und)
	sort.SliceStable(s.users, func(i, j int) bool {
		return collator.CompareString(s.users[i].Email, s.users[j].Email) < 0
	})
}

func (s *Store) SortTodosByPriority() {
	s.mu.Lock()
	defer s.mu.Unlock()

	sort.SliceStable(s.todos, func(i, j int) bool {
		return s.todos[i].Priority.Rank() > s.todos[j].Priority.Rank()
	})
}

func (s *Store) SortTodosByDate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	sort.SliceStable(s.todos, func(i, j int) bool {
		return s.todos[i].CreatedAt.After(s.todos[j].CreatedAt)
	})
}

// ResetAllData empties both collections and clears transient UI state.
func (s *Store) ResetAllData() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = []model.User{}
	s.todos = []model.Todo{}
	s.clearTransient()
	s.recompute()
}

// ResetToDefaults restores the seed collections and default UI settings.
func (s *Store) ResetToDefaults() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seedUsers()
	s.recompute()
	s.seedTodos()
	s.recompute()
	s.clearTransient()
	s.theme = model.ThemeLight
	s.todoFilter = model.FilterAll
	s.selectedPriority = model.PriorityMedium
}

func (s *Store) clearTransient() {
	s.selectedUserID = 0
	s.userSearchTerm = ""
	s.newTodoTitle = ""
	s.errorMessage = ""
}

// ToggleTheme flips light/dark and persists the result.
func (s *Store) ToggleTheme() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.theme == model.ThemeDark {
		s.theme = model.ThemeLight
	} else {
		s.theme = model.ThemeDark
	}
	s.saveTheme()
}

// loadTheme adopts the persisted value only when it is exactly light or
// dark; anything else, including a read error, leaves the theme as is.
func (s *Store) loadTheme() {
	value, found, err := s.settings.Get(context.Background(), ThemeKey)
	if err != nil || !found {
		return
	}
	switch model.Theme(value) {
	case model.ThemeLight, model.ThemeDark:
		s.theme = model.Theme(value)
	}
}

func (s *Store) saveTheme() {
	_ = s.settings.Set(context.Background(), ThemeKey, string(s.theme))
}

func (s *Store) recompute() {
	s.stats = calculateStatistics(s.users, s.todos)
}

func (s *Store) Users() []model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.User(nil), s.users...)
}

func (s *Store) Todos() []model.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Todo(nil), s.todos...)
}

func (s *Store) Statistics() model.Statistics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

func (s *Store) Theme() model.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

func (s *Store) ErrorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errorMessage
}

func (s *Store) CurrentTime() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentTime
}

func (s *Store) Counter() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counter
}

func (s *Store) TodoFilter() model.TodoFilter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.todoFilter
}

func (s *Store) SetTodoFilter(filter model.TodoFilter) {
	s.mu.Lock()
	s.todoFilter = filter
	s.mu.Unlock()
}

func (s *Store) SelectedPriority() model.Priority {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedPriority
}

func (s *Store) SetSelectedPriority(priority model.Priority) {
	s.mu.Lock()
	s.selectedPriority = priority
	s.mu.Unlock()
}

func (s *Store) NewTodoTitle() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.newTodoTitle
}

func (s *Store) SetNewTodoTitle(title string) {
	s.mu.Lock()
	s.newTodoTitle = title
	s.mu.Unlock()
}

func (s *Store) UserSearchTerm() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userSearchTerm
}

func (s *Store) SetUserSearchTerm(term string) {
	s.mu.Lock()
	s.userSearchTerm = term
	s.mu.Unlock()
}

func (s *Store) ShowUserForm() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showUserForm
}

func (s *Store) SetShowUserForm(show bool) {
	s.mu.Lock()
	s.showUserForm = show
	s.mu.Unlock()
}

func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoading
}

func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	s.isLoading = loading
	s.mu.Unlock()
}

func userIndex(users []model.User, id int) int {
	for i, user := range users {
		if user.ID == id {
			return i
		}
	}
	return -1
}

func todoIndex(todos []model.Todo, id int) int {
	for i, todo := range todos {
		if todo.ID == id {
			return i
		}
	}
	return -1
}

func nextUserID(users []model.User) int {
	next := 1
	for _, user := range users {
		if user.ID >= next {
			next = user.ID + 1
		}
	}
	return next
}

func nextTodoID(todos []model.Todo) int {
	next := 1
	for _, todo := range todos {
		if todo.ID >= next {
			next = todo.ID + 1
		}
	}
	return next
}

func validEmail(email string) bool {
	if strings.ContainsAny(email, " \t\r\n") {
		return false
	}
	at := strings.IndexByte(email, '@')
	if at <= 0 || at != strings.LastIndexByte(email, '@') {
		return false
	}
	domain := email[at+1:]
	if !strings.Contains(domain, ".") {
		return false
	}
	for _, part := range strings.Split(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}
