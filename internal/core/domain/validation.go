package domain

import "strings"

// NormalizeName trims surrounding whitespace from a user name or post title.
func NormalizeName(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeEmail trims and lower-cases an email so uniqueness is
// case-insensitive.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NewUser builds a normalized user from raw input, rejecting blank name or
// email and negative age. Timestamps and ID are left to the caller.
func NewUser(name, email string, age *float64) (*User, error) {
	u := &User{
		Name:  NormalizeName(name),
		Email: NormalizeEmail(email),
		Age:   age,
	}

	ve := &ValidationError{}
	if u.Name == "" {
		ve.add("name", "name is required")
	}
	if u.Email == "" {
		ve.add("email", "email is required")
	}
	checkAge(ve, age)
	if err := ve.orNil(); err != nil {
		return nil, err
	}
	return u, nil
}

// NormalizePatch applies the same rules as NewUser to the fields present in p.
func NormalizePatch(p UserPatch) (UserPatch, error) {
	out := UserPatch{Age: p.Age}
	ve := &ValidationError{}

	if p.Name != nil {
		name := NormalizeName(*p.Name)
		if name == "" {
			ve.add("name", "name cannot be empty")
		}
		out.Name = &name
	}
	if p.Email != nil {
		email := NormalizeEmail(*p.Email)
		if email == "" {
			ve.add("email", "email cannot be empty")
		}
		out.Email = &email
	}
	checkAge(ve, p.Age)
	if err := ve.orNil(); err != nil {
		return UserPatch{}, err
	}
	return out, nil
}

// NewPost builds a normalized post from raw input. Content is kept verbatim;
// only blank-ness is checked.
func NewPost(title, content, authorID string) (*Post, error) {
	p := &Post{
		Title:    NormalizeName(title),
		Content:  content,
		AuthorID: strings.TrimSpace(authorID),
	}

	ve := &ValidationError{}
	if p.Title == "" {
		ve.add("title", "title is required")
	}
	if strings.TrimSpace(p.Content) == "" {
		ve.add("content", "content is required")
	}
	if p.AuthorID == "" {
		ve.add("author", "author is required")
	}
	if err := ve.orNil(); err != nil {
		return nil, err
	}
	return p, nil
}

func checkAge(ve *ValidationError, age *float64) {
	if age != nil && *age < 0 {
		ve.add("age", "age must be a non-negative number")
	}
}
