package middleware

import (
	"shiftHub/pkg/response"
	"shiftHub/pkg/tools"

	"github.com/gin-gonic/gin"
)

// Auth Token校验中间件
func Auth() gin.HandlerFunc {
	return func(context *gin.Context) {
		tokenStr := context.Request.Header.Get("Authorization")
		if tokenStr == "" {
			response.TokenFail(context)
			context.Abort()
			return
		}

		claims, err := tools.ParseToken(tokenStr)
		if err != nil {
			response.TokenFail(context)
			context.Abort()
			return
		}

		context.Set("UserId", claims.UserId)
		context.Set("UserName", claims.UserName)
		context.Next()
	}
}
