package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID            uint           `gorm:"primarykey" json:"id"`                               // 主键
	Name          string         `gorm:"type:varchar(255);not null;index" json:"name"`       // 商品名称
	Description   string         `gorm:"type:text" json:"description"`                       // 商品描述
	Price         Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 当前售价
	OriginalPrice *Money         `gorm:"type:decimal(20,2)" json:"original_price,omitempty"` // 划线价
	Image         string         `gorm:"type:varchar(500)" json:"image"`                     // 主图
	Images        StringArray    `gorm:"type:json" json:"images"`                            // 图片数组
	Category      string         `gorm:"type:varchar(100);index" json:"category"`            // 分类名称
	Rating        float64        `gorm:"not null;default:0" json:"rating"`                   // 评分
	Reviews       int            `gorm:"not null;default:0" json:"reviews"`                  // 评价数
	Badge         string         `gorm:"type:varchar(50)" json:"badge,omitempty"`            // 角标
	Colors        StringArray    `gorm:"type:json" json:"colors"`                            // 可选颜色
	Sizes         StringArray    `gorm:"type:json" json:"sizes"`                             // 可选尺码
	InStock       bool           `gorm:"not null;default:true" json:"in_stock"`              // 是否有货
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`                            // 创建时间
	UpdatedAt     time.Time      `json:"updated_at"`                                         // 更新时间
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                                     // 软删除时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
