package model

import "time"

// Ticket status constants.
const (
	StatusOpen       = "open"
	StatusInProgress = "in-progress"
	StatusResolved   = "resolved"
	StatusClosed     = "closed"
	StatusPending    = "pending"
)

// Ticket priority constants.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Categories lists the suggested ticket categories offered by the form.
// The field itself is free-form text; these are only the defaults shown.
var Categories = []string{"General", "Technical", "Academic", "Financial", "Other"}

// Ticket is a single support request raised by a student.
type Ticket struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Draft holds the editable field values submitted through the ticket form,
// before validation. ID, status, and timestamps are never part of a draft.
type Draft struct {
	Title       string
	Description string
	Priority    string
	Category    string
}

// ApplyDefaults fills in the priority and category when the form left
// them empty.
func (d *Draft) ApplyDefaults() {
	if d.Priority == "" {
		d.Priority = PriorityMedium
	}
	if d.Category == "" {
		d.Category = Categories[0]
	}
}
