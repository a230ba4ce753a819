package request_models

import (
	"errors"
	"strings"
)

type ClienteCadastrar struct {
	Nome  string `json:"nome" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}

type ClienteAtualizar struct {
	Nome  string `json:"nome" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// Validate trims the name and enforces the field rules the binding tags cannot
// express: nome 2-100 characters after trimming, senha 8-100 characters.
func (r *ClienteCadastrar) Validate() error {
	if err := validarNome(&r.Nome); err != nil {
		return err
	}
	return validarSenha(r.Senha)
}

func (r *ClienteAtualizar) Validate() error {
	return validarNome(&r.Nome)
}

func validarNome(nome *string) error {
	tratado := strings.TrimSpace(*nome)
	if len(tratado) < 2 {
		return errors.New("o nome deve ter no mínimo 2 caracteres")
	}
	if len(tratado) > 100 {
		return errors.New("o nome deve ter no máximo 100 caracteres")
	}
	*nome = tratado
	return nil
}

func validarSenha(senha string) error {
	if len(senha) < 8 {
		return errors.New("a senha deve ter no mínimo 8 caracteres")
	}
	if len(senha) > 100 {
		return errors.New("a senha deve ter no máximo 100 caracteres")
	}
	return nil
}
