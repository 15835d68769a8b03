package admin

import "github.com/visualshop/internal/provider"

// Handler 后台只读接口处理器入口
// 说明：该处理器仅用于管理端 API，访问由 casbin 策略控制。
type Handler struct {
	*provider.Container
}

// New 创建后台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
