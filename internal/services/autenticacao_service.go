package services

import (
	"context"
	"time"

	"favoritos/internal/repositories"
	"favoritos/pkg/utils"
)

type AutenticacaoServiceInterface interface {
	Login(ctx context.Context, email string, senha string) (string, error)
}

type AutenticacaoService struct {
	clienteRepo repositories.ClienteRepository
	chaveJWT    []byte
	tempoToken  time.Duration
}

func NewAutenticacaoService(clienteRepo repositories.ClienteRepository, chaveJWT []byte, tempoToken time.Duration) AutenticacaoServiceInterface {
	return &AutenticacaoService{
		clienteRepo: clienteRepo,
		chaveJWT:    chaveJWT,
		tempoToken:  tempoToken,
	}
}

// Login verifies the credentials and issues a token bound to the cliente id.
// An unknown e-mail and a wrong password produce the same error, so the
// response never reveals whether the address is registered.
func (a *AutenticacaoService) Login(ctx context.Context, email string, senha string) (string, error) {
	cliente, err := a.clienteRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if cliente == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(cliente.HashSenha, senha); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(cliente.ID, a.chaveJWT, a.tempoToken)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return token, nil
}
