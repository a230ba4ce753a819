package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"favoritos/internal/models/db_models"
	"favoritos/pkg/utils"
)

type ClienteRepository interface {
	Insert(ctx context.Context, cliente *db_models.Cliente) error
	FindByID(ctx context.Context, id string) (*db_models.Cliente, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Cliente, error)
	Update(ctx context.Context, cliente *db_models.Cliente) error
	SoftDelete(ctx context.Context, cliente *db_models.Cliente) error
}

type clienteRepository struct {
	db *gorm.DB
}

func NewClienteRepository(db *gorm.DB) ClienteRepository {
	return &clienteRepository{
		db: db,
	}
}

// Insert relies on the partial unique index for the active-email invariant;
// a racing duplicate surfaces here as a translated duplicate-key error.
func (c *clienteRepository) Insert(ctx context.Context, cliente *db_models.Cliente) error {
	err := c.db.WithContext(ctx).Create(cliente).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.ErrEmailTaken
	}
	return err
}

func (c *clienteRepository) FindByID(ctx context.Context, id string) (*db_models.Cliente, error) {
	var cliente db_models.Cliente
	err := c.db.WithContext(ctx).First(&cliente, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &cliente, nil
}

func (c *clienteRepository) FindByEmail(ctx context.Context, email string) (*db_models.Cliente, error) {
	var cliente db_models.Cliente
	err := c.db.WithContext(ctx).First(&cliente, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &cliente, nil
}

func (c *clienteRepository) Update(ctx context.Context, cliente *db_models.Cliente) error {
	err := c.db.WithContext(ctx).Save(cliente).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.ErrEmailTaken
	}
	return err
}

// SoftDelete sets deleted_at; gorm's DeletedAt scope hides the row from every
// later lookup.
func (c *clienteRepository) SoftDelete(ctx context.Context, cliente *db_models.Cliente) error {
	return c.db.WithContext(ctx).Delete(cliente).Error
}
