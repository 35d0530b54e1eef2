package state

import "github.com/Joseda-hg/demoboard/internal/model"

// calculateStatistics derives the counts wholesale from the current
// collections. Empty or nil inputs yield all zeros.
func calculateStatistics(users []model.User, todos []model.Todo) model.Statistics {
	stats := model.Statistics{
		TotalUsers: len(users),
		TotalTodos: len(todos),
	}

	for _, user := range users {
		if user.IsActive {
			stats.ActiveUsers++
		}
	}

	for _, todo := range todos {
		if todo.Completed {
			stats.CompletedTodos++
		}
		if todo.Priority == model.PriorityHigh {
			stats.HighPriorityTodos++
		}
	}

	return stats
}
