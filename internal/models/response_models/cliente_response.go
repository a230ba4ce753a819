package response_models

import (
	"time"

	"favoritos/internal/models/db_models"
)

type ClienteDetalhar struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewClienteDetalhar(cliente *db_models.Cliente) ClienteDetalhar {
	return ClienteDetalhar{
		ID:        cliente.ID.String(),
		Nome:      cliente.Nome,
		Email:     cliente.Email,
		CreatedAt: cliente.CreatedAt,
		UpdatedAt: cliente.UpdatedAt,
	}
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
