package handler

import (
	"github.com/mernapp/mern-api/internal/core/domain"
	"github.com/mernapp/mern-api/internal/core/ports"
)

type createUserRequest struct {
	Name  string   `json:"name"  validate:"required"`
	Email string   `json:"email" validate:"required"`
	Age   *float64 `json:"age"   validate:"omitempty,gte=0"`
}

// updateUserRequest leaves omitted fields untouched.
type updateUserRequest struct {
	Name  *string  `json:"name"`
	Email *string  `json:"email"`
	Age   *float64 `json:"age" validate:"omitempty,gte=0"`
}

func (r createUserRequest) toInput() ports.CreateUserInput {
	return ports.CreateUserInput{Name: r.Name, Email: r.Email, Age: r.Age}
}

func (r updateUserRequest) toPatch() domain.UserPatch {
	return domain.UserPatch{Name: r.Name, Email: r.Email, Age: r.Age}
}
