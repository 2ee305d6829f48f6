package middleware

import (
	"shiftHub/pkg/response"

	"github.com/gin-gonic/gin"
)

// TenantIDHeaderKey 租户ID请求头
const TenantIDHeaderKey = "TenantID"

// ParseTenant 解析租户ID中间件，所有业务接口按租户隔离
func ParseTenant() gin.HandlerFunc {
	return func(context *gin.Context) {
		tid := context.Request.Header.Get(TenantIDHeaderKey)
		if tid == "" || tid == "null" {
			response.Fail(context, "租户ID不能为空", "failed")
			context.Abort()
			return
		}

		context.Set("TenantID", tid)
		context.Next()
	}
}
