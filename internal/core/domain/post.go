package domain

import "time"

// Post is a piece of content written by a single user. AuthorID must refer to
// a user that existed when the post was created; deleting that user later
// leaves the reference dangling.
type Post struct {
	ID        string
	Title     string
	Content   string
	AuthorID  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PostView is a post with its author reference expanded at read time.
// Author is nil when the referenced user no longer exists.
type PostView struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Content   string         `json:"content"`
	Author    *AuthorSummary `json:"author"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
