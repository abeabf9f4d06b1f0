package handler

import (
	"time"

	"github.com/savir-sistemas/backoffice-api/internal/core/domain"
)

// --- Request / Response types ---

type createUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Login    string `json:"login"    validate:"required"`
	Password string `json:"password" validate:"required"`
	Profile  string `json:"profile"  validate:"omitempty,oneof=Administrator StandardUser"`
}

// updateUserRequest is a partial update: absent fields stay untouched.
type updateUserRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=1"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Login    *string `json:"login"    validate:"omitempty,min=1"`
	Password *string `json:"password" validate:"omitempty,min=1"`
	Profile  *string `json:"profile"  validate:"omitempty,oneof=Administrator StandardUser"`
}

// userResponse is the JSON contract for a user. The password never leaves
// the server.
type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Login     string    `json:"login"`
	Profile   string    `json:"profile"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Login:     u.Login,
		Profile:   u.Profile,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// deletedRecord identifies the removed document in delete responses so the
// front-end can confirm what was dropped.
type deletedRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type deleteResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Deleted deletedRecord `json:"deleted"`
}
