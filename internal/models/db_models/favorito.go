package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favorito links a cliente to an external product id. Rows are removed for
// real on delete; the composite unique index makes the pair idempotent under
// concurrent inserts.
type Favorito struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClienteID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cliente_produto"`
	ProdutoID string    `gorm:"not null;index;uniqueIndex:idx_cliente_produto"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Favorito) TableName() string {
	return "produto_favorito"
}

func (f *Favorito) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
