package tui

import (
	"fmt"

	"github.com/Joseda-hg/demoboard/internal/model"
)

func formatUserSummary(user model.User) string {
	status := "inactive"
	if user.IsActive {
		status = "active"
	}
	return fmt.Sprintf("%s | %s | %s", user.Name, user.Email, status)
}

func formatTodoSummary(todo model.Todo) string {
	marker := "[ ]"
	if todo.Completed {
		marker = "[x]"
	}
	return fmt.Sprintf("%s %s | %s | %s", marker, todo.Title, todo.Priority, todo.CreatedAt.Format("2006-01-02"))
}

func nextPriority(current model.Priority) model.Priority {
	return cyclePriorities(current, 1)
}

func prevPriority(current model.Priority) model.Priority {
	return cyclePriorities(current, -1)
}

func cyclePriorities(current model.Priority, delta int) model.Priority {
	order := []model.Priority{model.PriorityLow, model.PriorityMedium, model.PriorityHigh}
	index := 0
	for i, priority := range order {
		if priority == current {
			index = i
			break
		}
	}
	index = (index + delta + len(order)) % len(order)
	return order[index]
}

func nextFilter(current model.TodoFilter) model.TodoFilter {
	order := []model.TodoFilter{model.FilterAll, model.FilterActive, model.FilterCompleted}
	index := 0
	for i, filter := range order {
		if filter == current {
			index = i
			break
		}
	}
	return order[(index+1)%len(order)]
}
