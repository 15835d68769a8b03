package i18n

var messages = map[string]map[string]string{
	LocaleZH: {
		"error.bad_request":            "请求参数错误",
		"error.unauthorized":           "未登录或登录已失效",
		"error.forbidden":              "无权访问",
		"error.not_found":              "资源不存在",
		"error.internal_error":         "服务器内部错误",
		"error.too_many_requests":      "请求过于频繁，请 %d 秒后再试",
		"error.login_too_many":         "登录尝试过多，请 %d 秒后再试",
		"error.order_too_many":         "下单过于频繁，请 %d 秒后再试",
		"error.user_id_invalid":        "用户ID无效",
		"error.user_id_type_invalid":   "用户ID类型错误",
		"error.token_invalid":          "登录凭证无效",
		"error.token_revoked":          "登录凭证已失效，请重新登录",
		"error.jwt_secret_missing":     "服务未配置登录密钥",
		"error.auth_header_missing":    "缺少 Authorization 请求头",
		"error.auth_header_invalid":    "Authorization 请求头格式错误",
		"error.rate_limit_unavailable": "限流服务不可用",
		"error.product_not_found":      "商品不存在",
		"error.product_fetch_failed":   "获取商品失败",
		"error.category_fetch_failed":  "获取分类失败",
		"error.cart_item_not_found":    "购物车中没有该商品",
		"error.cart_item_invalid":      "购物车参数无效",
		"error.cart_fetch_failed":      "获取购物车失败",
		"error.cart_update_failed":     "更新购物车失败",
		"error.cart_empty":             "购物车为空",
		"error.cart_conflict":          "购物车已被修改，请刷新后重试",
		"error.cart_busy":              "购物车正在处理其他请求，请稍后再试",
		"cart.item_removed":            "已从购物车移除",
		"error.order_not_found":        "订单不存在",
		"error.order_create_failed":    "下单失败",
		"error.order_fetch_failed":     "获取订单失败",
		"error.email_invalid":          "邮箱格式不正确",
		"error.email_exists":           "邮箱已被注册",
		"error.login_invalid":          "邮箱或密码错误",
		"error.user_disabled":          "账号已被禁用",
		"error.user_not_found":         "用户不存在",
		"error.register_failed":        "注册失败",
		"error.login_failed":           "登录失败",
		"error.password_weak":          "密码强度不足",
		"error.password_too_short":     "密码长度不能少于 %d 位",
		"error.password_require_upper": "密码需包含大写字母",
		"error.password_require_lower": "密码需包含小写字母",
		"error.password_require_digit": "密码需包含数字",
		"error.password_require_char":  "密码需包含特殊字符",
	},
	LocaleEN: {
		"error.bad_request":            "Invalid request parameters",
		"error.unauthorized":           "Not signed in or session expired",
		"error.forbidden":              "Access denied",
		"error.not_found":              "Resource not found",
		"error.internal_error":         "Internal server error",
		"error.too_many_requests":      "Too many requests, please retry in %d seconds",
		"error.login_too_many":         "Too many login attempts, please retry in %d seconds",
		"error.order_too_many":         "Too many orders placed, please retry in %d seconds",
		"error.user_id_invalid":        "Invalid user id",
		"error.user_id_type_invalid":   "Invalid user id type",
		"error.token_invalid":          "Invalid credentials",
		"error.token_revoked":          "Session revoked, please sign in again",
		"error.jwt_secret_missing":     "Signing secret is not configured",
		"error.auth_header_missing":    "Missing Authorization header",
		"error.auth_header_invalid":    "Malformed Authorization header",
		"error.rate_limit_unavailable": "Rate limiter unavailable",
		"error.product_not_found":      "Product not found",
		"error.product_fetch_failed":   "Failed to load product",
		"error.category_fetch_failed":  "Failed to load categories",
		"error.cart_item_not_found":    "Item is not in the cart",
		"error.cart_item_invalid":      "Invalid cart item",
		"error.cart_fetch_failed":      "Failed to load cart",
		"error.cart_update_failed":     "Failed to update cart",
		"error.cart_empty":             "Cart is empty",
		"error.cart_conflict":          "Cart changed during checkout, please retry",
		"error.cart_busy":              "Cart is busy, please try again later",
		"cart.item_removed":            "Item removed from cart",
		"error.order_not_found":        "Order not found",
		"error.order_create_failed":    "Failed to place order",
		"error.order_fetch_failed":     "Failed to load orders",
		"error.email_invalid":          "Invalid email address",
		"error.email_exists":           "Email is already registered",
		"error.login_invalid":          "Invalid email or password",
		"error.user_disabled":          "Account is disabled",
		"error.user_not_found":         "User not found",
		"error.register_failed":        "Registration failed",
		"error.login_failed":           "Login failed",
		"error.password_weak":          "Password is too weak",
		"error.password_too_short":     "Password must be at least %d characters",
		"error.password_require_upper": "Password must contain an uppercase letter",
		"error.password_require_lower": "Password must contain a lowercase letter",
		"error.password_require_digit": "Password must contain a digit",
		"error.password_require_char":  "Password must contain a special character",
	},
}
