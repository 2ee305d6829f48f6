package response

import (
	"errors"
	"net/http"

	"shiftHub/internal/models"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Code int         `json:"code"`
	Data interface{} `json:"data"`
	Msg  string      `json:"msg"`
}

func Success(ctx *gin.Context, data interface{}, msg string) {
	ctx.JSON(http.StatusOK, Response{
		Code: 200,
		Data: data,
		Msg:  msg,
	})
}

func Fail(ctx *gin.Context, msg string, data interface{}) {
	ctx.JSON(http.StatusOK, Response{
		Code: 400,
		Data: data,
		Msg:  msg,
	})
}

func TokenFail(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, Response{
		Code: 401,
		Data: "",
		Msg:  "Token无效或已过期",
	})
}

func PermissionFail(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, Response{
		Code: 403,
		Data: "",
		Msg:  "无操作权限",
	})
}

// FailWithError 业务错误按类型映射响应码，非业务错误按500处理
func FailWithError(ctx *gin.Context, err error) {
	code := 500

	var ae *models.AppError
	if errors.As(err, &ae) {
		switch ae.Kind {
		case models.ErrKindNotFound:
			code = 404
		case models.ErrKindConflict:
			code = 409
		case models.ErrKindInvalidSchedule,
			models.ErrKindInvalidManager,
			models.ErrKindPreconditionFailed,
			models.ErrKindCycleDetected,
			models.ErrKindSelfReference,
			models.ErrKindDepthLimitExceeded:
			code = 400
		}
	}

	ctx.JSON(http.StatusOK, Response{
		Code: code,
		Data: "",
		Msg:  err.Error(),
	})
}
