package db_models

// Cliente is a customer account. The unique index on email is partial: it only
// covers rows that are not soft-deleted, so a deleted account frees its e-mail
// for re-registration.
type Cliente struct {
	BaseModel
	Nome      string `gorm:"size:100;not null"`
	Email     string `gorm:"size:100;not null;index:idx_cliente_email_unico_ativo,unique,where:deleted_at IS NULL"`
	HashSenha string `gorm:"not null"`

	Favoritos []Favorito `gorm:"constraint:OnDelete:CASCADE"`
}

func (Cliente) TableName() string {
	return "cliente"
}
