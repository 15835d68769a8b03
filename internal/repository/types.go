package repository

import "time"

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page     int
	PageSize int
	Category string
	Search   string
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page        int
	PageSize    int
	UserID      uint
	Status      string
	OrderNo     string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// CartLineVersion 购物车行快照（行 ID + 读取时的版本）
type CartLineVersion struct {
	ID      uint
	Version uint64
}

// CategoryCount 分类商品数量
type CategoryCount struct {
	Category string
	Count    int64
}
