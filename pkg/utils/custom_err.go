package utils

import "errors"

var (
	ErrInvalidCredentials = errors.New("e-mail ou senha inválidos")
	ErrTokenInvalid       = errors.New("não foi possível validar as credenciais do usuário")
	ErrForbidden          = errors.New("não tem permissão para realizar esta ação neste recurso")

	ErrEmailTaken      = errors.New("já existe um cliente registrado com o e-mail fornecido")
	ErrClienteNotFound = errors.New("cliente não encontrado")

	ErrFavoritoExists   = errors.New("este produto já está na lista de favoritos do cliente")
	ErrFavoritoNotFound = errors.New("produto não encontrado na lista de favoritos do cliente")

	ErrProdutoNotFound    = errors.New("produto não encontrado na API externa")
	ErrProdutoUnavailable = errors.New("o serviço externo de produtos está indisponível")

	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")
)
