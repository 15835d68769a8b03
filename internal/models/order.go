package models

import (
	"time"
)

// Order 订单表
// 订单创建后不可修改，total = subtotal + shipping - discount 仅在下单时计算一次
type Order struct {
	ID             uint        `gorm:"primarykey" json:"id"`                                             // 主键
	OrderNo        string      `gorm:"type:varchar(32);uniqueIndex;not null" json:"order_no"`            // 订单号
	UserID         uint        `gorm:"not null;index:idx_orders_user_created,priority:1" json:"user_id"` // 用户ID
	Status         string      `gorm:"type:varchar(20);not null" json:"status"`                          // 订单状态
	Subtotal       Money       `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`            // 商品小计
	Shipping       Money       `gorm:"type:decimal(20,2);not null;default:0" json:"shipping"`            // 运费
	Discount       Money       `gorm:"type:decimal(20,2);not null;default:0" json:"discount"`            // 优惠金额（预留）
	Total          Money       `gorm:"type:decimal(20,2);not null;default:0" json:"total"`               // 应付金额
	ShippingName   string      `gorm:"type:varchar(100);not null;default:''" json:"shipping_name"`       // 收货人
	ShippingPhone  string      `gorm:"type:varchar(50);not null;default:''" json:"shipping_phone"`       // 联系电话
	ShippingStreet string      `gorm:"type:varchar(255);not null;default:''" json:"shipping_street"`     // 街道地址
	ShippingCity   string      `gorm:"type:varchar(100);not null;default:''" json:"shipping_city"`       // 城市
	ShippingState  string      `gorm:"type:varchar(100);not null;default:''" json:"shipping_state"`      // 省/州
	ShippingZip    string      `gorm:"type:varchar(20);not null;default:''" json:"shipping_zip"`         // 邮编
	CreatedAt      time.Time   `gorm:"index:idx_orders_user_created,priority:2" json:"created_at"`       // 创建时间
	Items          []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`      // 订单项（按下单时购物车顺序）
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
