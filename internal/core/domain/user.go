package domain

import "time"

// User is a registered person who can author posts.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       *float64  `json:"age,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserPatch carries the fields of a partial update. Nil fields are left
// unchanged in the store.
type UserPatch struct {
	Name  *string
	Email *string
	Age   *float64
}

// IsEmpty reports whether the patch changes no user field.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Age == nil
}

// AuthorSummary is the expanded form of a post's author reference.
type AuthorSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Summary projects the user onto the fields exposed when expanding a reference.
func (u *User) Summary() *AuthorSummary {
	if u == nil {
		return nil
	}
	return &AuthorSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}
