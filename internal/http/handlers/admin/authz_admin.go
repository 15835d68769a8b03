package admin

import (
	handlershared "github.com/visualshop/internal/http/handlers/shared"
	"github.com/visualshop/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetAuthzMe 当前后台用户的角色与直连策略
func (h *Handler) GetAuthzMe(c *gin.Context) {
	role := handlershared.GetUserRole(c)
	policies, err := h.AuthzService.GetRolePolicies(role)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal_error", err)
		return
	}
	response.Success(c, gin.H{
		"role":     role,
		"policies": policies,
	})
}
