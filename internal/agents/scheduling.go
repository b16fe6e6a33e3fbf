package agents

import (
	"strings"
	"time"

	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
)

// RunSchedulingLogistics derives due-dated logistics tasks from the case.
// now anchors the fallback service date (14 days out) when no preferred date
// was collected.
func RunSchedulingLogistics(c entities.Case, now time.Time) []entities.SchedulingTask {
	serviceDate := now.AddDate(0, 0, 14)
	if c.PreferredServiceDate != nil {
		serviceDate = *c.PreferredServiceDate
	}

	venue := "chapel"
	if c.VenuePreference != nil {
		venue = *c.VenuePreference
	}
	urgency := ""
	if c.Urgency != nil {
		urgency = strings.ToLower(*c.Urgency)
	}

	daysBefore := 7
	if strings.Contains(urgency, "24") || strings.Contains(urgency, "48") {
		daysBefore = 2
	}

	tasks := []entities.SchedulingTask{
		{
			Title:    titleCase(venue) + " booking confirmation",
			DueDate:  datePtr(serviceDate.AddDate(0, 0, -daysBefore)),
			Category: entities.TaskCategoryVenue,
		},
	}

	if c.IsCremation() {
		tasks = append(tasks, entities.SchedulingTask{
			Title:    "Crematorium notification and paperwork",
			DueDate:  datePtr(serviceDate.AddDate(0, 0, -daysBefore)),
			Category: entities.TaskCategoryLogistics,
		})
	}

	transferLead := daysBefore - 2
	if transferLead < 1 {
		transferLead = 1
	}
	tasks = append(tasks,
		entities.SchedulingTask{
			Title:    "Transfer of remains arrangement",
			DueDate:  datePtr(serviceDate.AddDate(0, 0, -transferLead)),
			Category: entities.TaskCategoryLogistics,
		},
		entities.SchedulingTask{
			Title:    "Director review of documents",
			DueDate:  datePtr(serviceDate.AddDate(0, 0, -daysBefore)),
			Category: entities.TaskCategoryCompliance,
		},
		entities.SchedulingTask{
			Title:    "Final confirmation with family",
			DueDate:  datePtr(serviceDate.AddDate(0, 0, -1)),
			Category: entities.TaskCategoryOther,
		},
	)

	return tasks
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func datePtr(t time.Time) *time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}
