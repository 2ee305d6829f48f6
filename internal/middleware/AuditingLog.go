package middleware

import (
	"bytes"
	"io"
	"strings"
	"time"

	"shiftHub/internal/ctx"
	"shiftHub/internal/models"
	"shiftHub/pkg/response"
	"shiftHub/pkg/tools"

	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logc"
)

func AuditingLog() gin.HandlerFunc {
	return func(context *gin.Context) {
		// Operation user
		var username string
		createBy := tools.GetUser(context.Request.Header.Get("Authorization"))
		if createBy != "" {
			username = createBy
		} else {
			username = "用户未登录"
		}

		body := context.Request.Body
		readBody, err := io.ReadAll(body)
		if err != nil {
			logc.Error(ctx.DO().Ctx, err)
			return
		}
		// 将 body 数据放回请求中
		context.Request.Body = io.NopCloser(bytes.NewBuffer(readBody))

		tid := context.Request.Header.Get(TenantIDHeaderKey)
		if tid == "" {
			response.Fail(context, "租户ID不能为空", "failed")
			context.Abort()
			return
		}

		// 当请求处理完成后才会执行 Next() 后面的代码
		context.Next()

		auditLog := models.AuditLog{
			TenantId:   tid,
			ID:         "Trace" + tools.RandId(),
			Username:   username,
			IPAddress:  context.ClientIP(),
			Method:     context.Request.Method,
			Path:       context.Request.URL.Path,
			CreatedAt:  time.Now().Unix(),
			StatusCode: context.Writer.Status(),
			Body:       string(readBody),
			AuditType:  generateActionDescription(context.Request.Method, context.Request.URL.Path),
		}

		c := ctx.DO()
		if err := c.DB.AuditLog().Create(auditLog); err != nil {
			logc.Errorf(c.Ctx, "审计日志写入数据库失败, %s", err.Error())
		}
	}
}

// generateActionDescription 生成操作描述
func generateActionDescription(method, path string) string {
	pathSegments := strings.Split(path, "/")
	var actionName string
	if len(pathSegments) > 0 {
		actionName = pathSegments[len(pathSegments)-1]
	}

	switch method {
	case "POST":
		return "创建" + actionName
	case "PUT":
		return "更新" + actionName
	case "DELETE":
		return "删除" + actionName
	case "GET":
		return "查看" + actionName
	default:
		return method + " " + actionName
	}
}
