package constants

// 订单状态常量
const (
	OrderStatusPlaced = "PLACED"
)

// 用户状态常量
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// 用户角色常量
const (
	UserRoleCustomer = "CUSTOMER"
	UserRoleAdmin    = "ADMIN"
	UserRoleSupport  = "SUPPORT"
)

// 队列常量
const (
	QueueDefault  = "default"
	QueueCritical = "critical"
)

// 异步任务类型
const (
	TaskCartClearSnapshot = "cart:clear_snapshot"
)

// 运费默认值
const (
	DefaultFreeShippingThreshold = "200"
	DefaultFlatShippingFee       = "15"
)
