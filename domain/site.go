package domain

import "time"

const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
	StatusWatched   = "Watched"
)

// Task is a dated to-do item; higher Priority comes first.
type Task struct {
	ID          string `json:"_id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
	Status      string `json:"status"`
	Date        string `json:"date"` // YYYY-MM-DD
}

type Video struct {
	ID        string    `json:"_id,omitempty"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Status    string    `json:"status,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`

	// Thumbnail is derived from URL for YouTube links; the backend never stores it.
	Thumbnail string `json:"thumbnail,omitempty"`
}

// VideoQuery mirrors the watch-later filters. Sort is "desc" (newest first) or "asc".
type VideoQuery struct {
	Search string
	Status string
	Sort   string
}

type Quote struct {
	ID     string `json:"_id,omitempty"`
	Text   string `json:"text"`
	Author string `json:"author"`
}

type BlogLink struct {
	ID    string `json:"_id,omitempty"`
	Title string `json:"title"`
	Link  string `json:"link"`
}
