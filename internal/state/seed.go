package state

import (
	"time"

	"github.com/Joseda-hg/demoboard/internal/model"
)

func (s *Store) seedUsers() {
	s.users = []model.User{
		{ID: 1, Name: "John Doe", Email: "john@example.com", IsActive: true},
		{ID: 2, Name: "Jane Smith", Email: "jane@example.com", IsActive: true},
		{ID: 3, Name: "Bob Johnson", Email: "bob@example.com", IsActive: false},
		{ID: 4, Name: "Alice Williams", Email: "alice@example.com", IsActive: true},
		{ID: 5, Name: "Charlie Davis", Email: "charlie@example.com", IsActive: true},
	}
}

func (s *Store) seedTodos() {
	now := s.now()
	s.todos = []model.Todo{
		{ID: 1, Title: "Set up the project board", Completed: true, Priority: model.PriorityHigh, CreatedAt: now.Add(-96 * time.Hour)},
		{ID: 2, Title: "Review open pull requests", Completed: false, Priority: model.PriorityMedium, CreatedAt: now.Add(-72 * time.Hour)},
		{ID: 3, Title: "Write release notes", Completed: false, Priority: model.PriorityHigh, CreatedAt: now.Add(-48 * time.Hour)},
		{ID: 4, Title: "Update dependency versions", Completed: false, Priority: model.PriorityLow, CreatedAt: now.Add(-24 * time.Hour)},
		{ID: 5, Title: "Plan the next sprint", Completed: true, Priority: model.PriorityMedium, CreatedAt: now},
	}
}
