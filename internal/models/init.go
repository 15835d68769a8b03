package models

import (
	"errors"
	"strings"

	"github.com/visualshop/internal/constants"
	"github.com/visualshop/internal/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// InitDefaultAdmin 初始化默认管理员账号
// 邮箱已存在时只确保其角色为 ADMIN
func InitDefaultAdmin(email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		email = "admin@visualshop.local"
	}

	var existing User
	err := DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		if existing.Role != constants.UserRoleAdmin {
			if err := DB.Model(&existing).Update("role", constants.UserRoleAdmin).Error; err != nil {
				logger.Warnw("ensure_default_admin_role_failed", "email", email, "error", err)
			}
		}
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if password == "" {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Administrator",
		Role:         constants.UserRoleAdmin,
		Status:       constants.UserStatusActive,
	}
	if err := DB.Create(&admin).Error; err != nil {
		return err
	}

	if password == "admin123" {
		logger.Warnw("default_admin_created_with_default_password", "email", email)
	} else {
		logger.Warnw("default_admin_created", "email", email, "password_hidden", true)
	}
	return nil
}
