package grid

import (
	"time"

	"caretrack/internal/core/domain"
)

// Stats summarizes one set of records for the statistics panel.
type Stats struct {
	Total      int
	Completed  int
	Overdue    int
	ByStatus   map[domain.Status]int
	ByPriority map[domain.Priority]int
	ByCategory map[domain.Category]int
}

// Collect counts records per status, priority and category. A record is
// overdue when its due date has passed and it is not completed.
func Collect(tasks []domain.Task, now time.Time) Stats {
	s := Stats{
		ByStatus:   make(map[domain.Status]int),
		ByPriority: make(map[domain.Priority]int),
		ByCategory: make(map[domain.Category]int),
	}

	for _, task := range tasks {
		s.Total++
		s.ByStatus[task.Status]++
		s.ByPriority[task.Priority]++
		s.ByCategory[task.Category]++

		if task.Status == domain.StatusCompleted {
			s.Completed++
		} else if !task.DueDate.IsZero() && task.DueDate.Before(now) {
			s.Overdue++
		}
	}
	return s
}
