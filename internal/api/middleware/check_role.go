package middleware

import (
	"Marketplace/internal/pkg/consts"
	"Marketplace/internal/pkg/response"
	"slices"

	"github.com/gin-gonic/gin"
)

// CheckRoles 当前用户至少拥有 allowed 中的一个角色，管理员始终放行
func CheckRoles(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roles := c.GetStringSlice(consts.RolesKey)
		if slices.Contains(roles, consts.RoleAdmin) || slices.ContainsFunc(roles, func(r string) bool {
			return slices.Contains(allowed, r)
		}) {
			c.Next()
			return
		}

		response.Fail(c, response.Forbidden, "权限不足：无权访问该资源")
		c.Abort()
	}
}
