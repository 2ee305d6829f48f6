package api

import (
	middleware "shiftHub/internal/middleware"
	"shiftHub/internal/services"
	"shiftHub/internal/types"
	jwtUtils "shiftHub/pkg/tools"

	"github.com/gin-gonic/gin"
)

type tenantController struct{}

var TenantController = new(tenantController)

/*
租户 API
/api/sh/tenant
*/
func (tenantController tenantController) API(gin *gin.RouterGroup) {
	a := gin.Group("tenant")
	a.Use(
		middleware.Auth(),
	)
	{
		a.POST("tenantCreate", tenantController.Create)
		a.POST("tenantUpdate", tenantController.Update)
		a.POST("tenantDelete", tenantController.Delete)
		a.GET("tenantList", tenantController.List)
		a.GET("tenantInfo", tenantController.Get)
	}
}

func (tenantController tenantController) Create(ctx *gin.Context) {
	r := new(types.RequestTenantCreate)
	BindJson(ctx, r)

	r.CreateBy = jwtUtils.GetUser(ctx.Request.Header.Get("Authorization"))

	Service(ctx, func() (interface{}, interface{}) {
		return services.TenantService.Create(r)
	})
}

func (tenantController tenantController) Update(ctx *gin.Context) {
	r := new(types.RequestTenantUpdate)
	BindJson(ctx, r)

	Service(ctx, func() (interface{}, interface{}) {
		return services.TenantService.Update(r)
	})
}

func (tenantController tenantController) Delete(ctx *gin.Context) {
	r := new(types.RequestTenantDelete)
	BindJson(ctx, r)

	Service(ctx, func() (interface{}, interface{}) {
		return services.TenantService.Delete(r)
	})
}

func (tenantController tenantController) List(ctx *gin.Context) {
	r := new(types.RequestTenantQuery)
	BindQuery(ctx, r)

	Service(ctx, func() (interface{}, interface{}) {
		return services.TenantService.List(r)
	})
}

func (tenantController tenantController) Get(ctx *gin.Context) {
	r := new(types.RequestTenantQuery)
	BindQuery(ctx, r)

	Service(ctx, func() (interface{}, interface{}) {
		return services.TenantService.Get(r)
	})
}
