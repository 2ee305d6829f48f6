package api

import (
	middleware "shiftHub/internal/middleware"
	"shiftHub/internal/services"
	"shiftHub/internal/types"

	"github.com/gin-gonic/gin"
)

type orgTreeController struct{}

var OrgTreeController = new(orgTreeController)

/*
汇报关系 API
/api/sh/org
*/
func (orgTreeController orgTreeController) API(gin *gin.RouterGroup) {
	a := gin.Group("org")
	a.Use(
		middleware.Auth(),
		middleware.ParseTenant(),
		middleware.AuditingLog(),
	)
	{
		a.POST("setManager", orgTreeController.SetManager)
	}

	b := gin.Group("org")
	b.Use(
		middleware.Auth(),
		middleware.ParseTenant(),
	)
	{
		b.GET("orgTree", orgTreeController.GetForest)
	}
}

func (orgTreeController orgTreeController) SetManager(ctx *gin.Context) {
	r := new(types.RequestSetManager)
	BindJson(ctx, r)

	tid, _ := ctx.Get("TenantID")
	r.TenantId = tid.(string)

	Service(ctx, func() (interface{}, interface{}) {
		return services.OrgTreeService.SetManager(r)
	})
}

func (orgTreeController orgTreeController) GetForest(ctx *gin.Context) {
	r := new(types.RequestOrgTreeQuery)
	BindQuery(ctx, r)

	tid, _ := ctx.Get("TenantID")
	r.TenantId = tid.(string)

	Service(ctx, func() (interface{}, interface{}) {
		return services.OrgTreeService.GetForest(r)
	})
}
