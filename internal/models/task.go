// Package models defines the data structures for the CRM insights engine.
package models

import (
	"time"
)

// TaskPriority represents the urgency of a task.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

// Task represents a CRM task. The recommendation generator accepts tasks
// alongside leads and deals; the current rule set does not consult them,
// but the signature keeps parity with the rest of the population scan.
type Task struct {
	ID        string       `json:"id"`
	Title     string       `json:"title,omitempty"`
	DueDate   *time.Time   `json:"due_date,omitempty"`
	Completed bool         `json:"completed,omitempty"`
	Priority  TaskPriority `json:"priority,omitempty"`
}

// Account represents a company record consumed by the sales analytics.
type Account struct {
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	Industry string `json:"industry,omitempty"`
}
