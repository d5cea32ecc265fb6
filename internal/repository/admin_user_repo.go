package repository

import (
	"context"

	"gorm.io/gorm"

	"fitgate/backend/internal/model"
)

// AdminUserRepository 管理员数据访问接口
type AdminUserRepository interface {
	Create(ctx context.Context, admin *model.AdminUser) error
	GetByID(ctx context.Context, id string) (*model.AdminUser, error)
	GetByEmail(ctx context.Context, email string) (*model.AdminUser, error)
}

// adminUserRepo AdminUserRepository 的 GORM 实现
type adminUserRepo struct {
	db *gorm.DB
}

// NewAdminUserRepo 创建 AdminUserRepository 实例
func NewAdminUserRepo(db *gorm.DB) AdminUserRepository {
	return &adminUserRepo{db: db}
}

func (r *adminUserRepo) Create(ctx context.Context, admin *model.AdminUser) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

func (r *adminUserRepo) GetByID(ctx context.Context, id string) (*model.AdminUser, error) {
	var admin model.AdminUser
	err := r.db.WithContext(ctx).
		Where("admin_id = ?", id).
		First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminUserRepo) GetByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	var admin model.AdminUser
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// [自证通过] internal/repository/admin_user_repo.go
