package api

import (
	middleware "shiftHub/internal/middleware"
	"shiftHub/internal/services"
	"shiftHub/internal/types"

	"github.com/gin-gonic/gin"
)

type userController struct{}

var UserController = new(userController)

/*
用户 API
/api/sh/user
*/
func (userController userController) API(gin *gin.RouterGroup) {
	a := gin.Group("user")
	a.Use(
		middleware.Auth(),
		middleware.ParseTenant(),
		middleware.AuditingLog(),
	)
	{
		a.POST("userUpdate", userController.Update)
		a.POST("userDelete", userController.Delete)
	}

	b := gin.Group("user")
	b.Use(
		middleware.Auth(),
		middleware.ParseTenant(),
	)
	{
		b.GET("userList", userController.List)
		b.GET("userInfo", userController.Get)
	}
}

// Public 登录注册接口，不经过认证中间件
func (userController userController) Public(gin *gin.RouterGroup) {
	a := gin.Group("user")
	{
		a.POST("login", userController.Login)
		a.POST("register", userController.Register)
	}
}

func (userController userController) List(ctx *gin.Context) {
	r := new(types.RequestUserQuery)
	BindQuery(ctx, r)

	tid, _ := ctx.Get("TenantID")
	r.TenantId = tid.(string)

	Service(ctx, func() (interface{}, interface{}) {
		return services.UserService.List(r)
	})
}

func (userController userController) Get(ctx *gin.Context) {
	r := new(types.RequestUserQuery)
	BindQuery(ctx, r)

	Service(ctx, func() (interface{}, interface{}) {
		return services.UserService.Get(r)
	})
}

func (userController userController) Login(ctx *gin.Context) {
	r := new(types.RequestUserLogin)
	BindJson(ctx, r)

	Service(ctx, func() (interface{}, interface{}) {
		return services.UserService.Login(r)
	})
}

func (userController userController) Register(ctx *gin.Context) {
	r := new(types.RequestUserRegister)
	BindJson(ctx, r)

	Service(ctx, func() (interface{}, interface{}) {
		return services.UserService.Register(r)
	})
}

func (userController userController) Update(ctx *gin.Context) {
	r := new(types.RequestUserUpdate)
	BindJson(ctx, r)

	Service(ctx, func() (interface{}, interface{}) {
		return services.UserService.Update(r)
	})
}

func (userController userController) Delete(ctx *gin.Context) {
	r := new(types.RequestUserQuery)
	BindJson(ctx, r)

	Service(ctx, func() (interface{}, interface{}) {
		return services.UserService.Delete(r)
	})
}
