package handler

import "github.com/mernapp/mern-api/internal/core/ports"

type createPostRequest struct {
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
	// Author is the hex id of an existing user.
	Author string `json:"author" validate:"required" example:"64b7f0c2a1b2c3d4e5f60718"`
}

func (r createPostRequest) toInput() ports.CreatePostInput {
	return ports.CreatePostInput{Title: r.Title, Content: r.Content, AuthorID: r.Author}
}
