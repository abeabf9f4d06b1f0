package handler

import (
	"time"

	"github.com/savir-sistemas/backoffice-api/internal/core/domain"
)

type createClientRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// updateClientRequest is a partial update: absent fields stay untouched.
type updateClientRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

type clientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedBy string    `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toClientResponse(cl *domain.Client) clientResponse {
	return clientResponse{
		ID:        cl.ID,
		Name:      cl.Name,
		Email:     cl.Email,
		Phone:     cl.Phone,
		Address:   cl.Address,
		CreatedBy: cl.CreatedBy,
		CreatedAt: cl.CreatedAt,
		UpdatedAt: cl.UpdatedAt,
	}
}
