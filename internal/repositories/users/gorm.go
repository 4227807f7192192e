package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amrit110/moonshot-ui/internal/common"
	"github.com/amrit110/moonshot-ui/internal/models"
	"gorm.io/gorm"
)

// GormRepository stores users through the gorm ORM. The *gorm.DB should be
// opened with TranslateError so duplicate keys surface as gorm.ErrDuplicatedKey.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isDuplicate(err) {
			return nil, fmt.Errorf("db error: %w: %w", common.ErrorAlreadyExists, err)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func isDuplicate(err error) bool {
	// untranslated sqlite errors only carry the message
	return errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed")
}
