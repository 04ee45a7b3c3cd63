package digest

import (
	"cmp"
	"slices"

	"github.com/tarefasapp/tarefas/internal/models"
)

// SortOpenTasks orders tasks by priority descending, then deadline
// ascending, then id ascending.
func SortOpenTasks(tasks []models.Task) {
	slices.SortStableFunc(tasks, func(a, b models.Task) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Deadline, b.Deadline); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
