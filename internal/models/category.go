package models

import (
	"time"

	"gorm.io/gorm"
)

// Category 分类表
type Category struct {
	ID           uint           `gorm:"primarykey" json:"id"`                               // 主键
	Name         string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"` // 分类名称（商品按名称归类）
	Image        string         `gorm:"type:varchar(500)" json:"image"`                     // 分类图片
	SortOrder    int            `gorm:"default:0;index" json:"sort_order"`                  // 排序权重
	ProductCount int64          `gorm:"-" json:"count"`                                     // 商品数量（仅结构，不写入数据库）
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                            // 创建时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                     // 软删除时间
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
