package api

import (
	"shiftHub/pkg/response"

	"github.com/gin-gonic/gin"
)

// BindJson 解析JSON请求体，失败直接返回错误响应
func BindJson(ctx *gin.Context, req interface{}) {
	if err := ctx.ShouldBindJSON(req); err != nil {
		response.Fail(ctx, "参数解析失败: "+err.Error(), "failed")
		ctx.Abort()
	}
}

// BindQuery 解析Query参数，失败直接返回错误响应
func BindQuery(ctx *gin.Context, req interface{}) {
	if err := ctx.ShouldBindQuery(req); err != nil {
		response.Fail(ctx, "参数解析失败: "+err.Error(), "failed")
		ctx.Abort()
	}
}

// Service 统一的服务调用出口，业务错误按类型映射响应码
func Service(ctx *gin.Context, fn func() (interface{}, interface{})) {
	if ctx.IsAborted() {
		return
	}

	data, err := fn()
	if err != nil {
		if e, ok := err.(error); ok {
			response.FailWithError(ctx, e)
			return
		}
		response.Fail(ctx, "服务处理失败", "failed")
		return
	}

	response.Success(ctx, data, "success")
}
