package domain

import "time"

// RawTask is a task-tracker record as returned by the tracker provider
type RawTask struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Priority     string     `json:"priority"`
	Status       string     `json:"status"`
	Assignee     string     `json:"assignee"`
	DueDate      *time.Time `json:"due_date"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Labels       []string   `json:"labels"`
	SubtaskCount int        `json:"subtask_count"`
	URL          string     `json:"url"`
}

// RawPage is a knowledge-base page as returned by the wiki provider,
// body may contain HTML
type RawPage struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Author    string    `json:"author"`
	UpdatedAt time.Time `json:"updated_at"`
	Labels    []string  `json:"labels"`
	Version   int       `json:"version"`
	URL       string    `json:"url"`
}

// RawMessage is an inbox message as returned by the mail provider
type RawMessage struct {
	ID         string    `json:"id"`
	Subject    string    `json:"subject"`
	Preview    string    `json:"preview"`
	Sender     string    `json:"sender"`
	SenderRole string    `json:"sender_role"`
	ReceivedAt time.Time `json:"received_at"`
	Unread     bool      `json:"unread"`
	Flagged    bool      `json:"flagged"`
	Importance string    `json:"importance"`
	URL        string    `json:"url"`
}
