package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"favoritos/internal/models/db_models"
	"favoritos/pkg/utils"
)

type FavoritoRepository interface {
	Insert(ctx context.Context, favorito *db_models.Favorito) error
	Delete(ctx context.Context, clienteID uuid.UUID, produtoID string) error
	CountByCliente(ctx context.Context, clienteID uuid.UUID) (int64, error)
	ListProdutoIDs(ctx context.Context, clienteID uuid.UUID, pagina int, tamanho int) ([]string, error)
}

type favoritoRepository struct {
	db *gorm.DB
}

func NewFavoritoRepository(db *gorm.DB) FavoritoRepository {
	return &favoritoRepository{
		db: db,
	}
}

func (f *favoritoRepository) Insert(ctx context.Context, favorito *db_models.Favorito) error {
	err := f.db.WithContext(ctx).Create(favorito).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.ErrFavoritoExists
	}
	return err
}

func (f *favoritoRepository) Delete(ctx context.Context, clienteID uuid.UUID, produtoID string) error {
	result := f.db.WithContext(ctx).
		Where("cliente_id = ? AND produto_id = ?", clienteID, produtoID).
		Delete(&db_models.Favorito{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.ErrFavoritoNotFound
	}
	return nil
}

func (f *favoritoRepository) CountByCliente(ctx context.Context, clienteID uuid.UUID) (int64, error) {
	var total int64
	err := f.db.WithContext(ctx).
		Model(&db_models.Favorito{}).
		Where("cliente_id = ?", clienteID).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (f *favoritoRepository) ListProdutoIDs(ctx context.Context, clienteID uuid.UUID, pagina int, tamanho int) ([]string, error) {
	var ids []string
	err := f.db.WithContext(ctx).
		Model(&db_models.Favorito{}).
		Where("cliente_id = ?", clienteID).
		Order("created_at").
		Scopes(func(db *gorm.DB) *gorm.DB {
			offset := (pagina - 1) * tamanho
			return db.Offset(offset).Limit(tamanho)
		}).
		Pluck("produto_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
