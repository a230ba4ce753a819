package services

import (
	"context"
	"errors"

	"favoritos/internal/models/db_models"
	"favoritos/internal/models/request_models"
	"favoritos/internal/repositories"
	"favoritos/pkg/utils"
)

type ClienteServiceInterface interface {
	Create(ctx context.Context, request request_models.ClienteCadastrar) (*db_models.Cliente, error)
	FindByID(ctx context.Context, id string) (*db_models.Cliente, error)
	Update(ctx context.Context, cliente *db_models.Cliente, request request_models.ClienteAtualizar) (*db_models.Cliente, error)
	Delete(ctx context.Context, cliente *db_models.Cliente) error
}

type ClienteService struct {
	clienteRepo repositories.ClienteRepository
}

func NewClienteService(clienteRepo repositories.ClienteRepository) ClienteServiceInterface {
	return &ClienteService{
		clienteRepo: clienteRepo,
	}
}

// Create hashes the password and inserts the cliente. There is no pre-check on
// the e-mail: the partial unique index decides, so concurrent registrations of
// the same address end with exactly one winner.
func (s *ClienteService) Create(ctx context.Context, request request_models.ClienteCadastrar) (*db_models.Cliente, error) {
	hashSenha, err := utils.HashPassword(request.Senha)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	cliente := &db_models.Cliente{
		Nome:      request.Nome,
		Email:     request.Email,
		HashSenha: hashSenha,
	}

	if err := s.clienteRepo.Insert(ctx, cliente); err != nil {
		if errors.Is(err, utils.ErrEmailTaken) {
			return nil, err
		}
		return nil, utils.ErrDatabaseError
	}

	return cliente, nil
}

func (s *ClienteService) FindByID(ctx context.Context, id string) (*db_models.Cliente, error) {
	cliente, err := s.clienteRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if cliente == nil {
		return nil, utils.ErrClienteNotFound
	}
	return cliente, nil
}

func (s *ClienteService) Update(ctx context.Context, cliente *db_models.Cliente, request request_models.ClienteAtualizar) (*db_models.Cliente, error) {
	cliente.Nome = request.Nome
	cliente.Email = request.Email

	if err := s.clienteRepo.Update(ctx, cliente); err != nil {
		if errors.Is(err, utils.ErrEmailTaken) {
			return nil, err
		}
		return nil, utils.ErrDatabaseError
	}

	return cliente, nil
}

func (s *ClienteService) Delete(ctx context.Context, cliente *db_models.Cliente) error {
	if err := s.clienteRepo.SoftDelete(ctx, cliente); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
