package models

// OrderItem 订单项表（下单时的商品快照，不随商品变更）
type OrderItem struct {
	ID            uint   `gorm:"primarykey" json:"id"`                                       // 主键
	OrderID       uint   `gorm:"index;not null" json:"order_id"`                             // 订单ID
	ProductID     uint   `gorm:"index;not null" json:"product_id"`                           // 商品ID
	ProductName   string `gorm:"type:varchar(255);not null" json:"product_name"`             // 商品名称快照
	ProductImage  string `gorm:"type:varchar(500);not null;default:''" json:"product_image"` // 商品图片快照
	UnitPrice     Money  `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`    // 下单时单价
	Quantity      int    `gorm:"not null" json:"quantity"`                                   // 数量
	LineTotal     Money  `gorm:"type:decimal(20,2);not null;default:0" json:"line_total"`    // 单价 × 数量
	SelectedColor string `gorm:"type:varchar(50);not null;default:''" json:"selected_color"` // 已选颜色
	SelectedSize  string `gorm:"type:varchar(50);not null;default:''" json:"selected_size"`  // 已选尺码
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
