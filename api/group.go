package api

import (
	middleware "shiftHub/internal/middleware"
	"shiftHub/internal/services"
	"shiftHub/internal/types"
	jwtUtils "shiftHub/pkg/tools"

	"github.com/gin-gonic/gin"
)

type groupController struct{}

var GroupController = new(groupController)

/*
路由组 API
/api/sh/group
*/
func (groupController groupController) API(gin *gin.RouterGroup) {
	a := gin.Group("group")
	a.Use(
		middleware.Auth(),
		middleware.ParseTenant(),
		middleware.AuditingLog(),
	)
	{
		a.POST("groupCreate", groupController.Create)
		a.POST("groupUpdate", groupController.Update)
		a.POST("groupDelete", groupController.Delete)
	}

	b := gin.Group("group")
	b.Use(
		middleware.Auth(),
		middleware.ParseTenant(),
	)
	{
		b.GET("groupList", groupController.List)
	}
}

func (groupController groupController) Create(ctx *gin.Context) {
	r := new(types.RequestGroupCreate)
	BindJson(ctx, r)

	tid, _ := ctx.Get("TenantID")
	r.TenantId = tid.(string)
	r.CreateBy = jwtUtils.GetUser(ctx.Request.Header.Get("Authorization"))

	Service(ctx, func() (interface{}, interface{}) {
		return services.GroupService.Create(r)
	})
}

func (groupController groupController) Update(ctx *gin.Context) {
	r := new(types.RequestGroupUpdate)
	BindJson(ctx, r)

	tid, _ := ctx.Get("TenantID")
	r.TenantId = tid.(string)

	Service(ctx, func() (interface{}, interface{}) {
		return services.GroupService.Update(r)
	})
}

func (groupController groupController) Delete(ctx *gin.Context) {
	r := new(types.RequestGroupDelete)
	BindJson(ctx, r)

	tid, _ := ctx.Get("TenantID")
	r.TenantId = tid.(string)

	Service(ctx, func() (interface{}, interface{}) {
		return services.GroupService.Delete(r)
	})
}

func (groupController groupController) List(ctx *gin.Context) {
	r := new(types.RequestGroupQuery)
	BindQuery(ctx, r)

	tid, _ := ctx.Get("TenantID")
	r.TenantId = tid.(string)

	Service(ctx, func() (interface{}, interface{}) {
		return services.GroupService.List(r)
	})
}
