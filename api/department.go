package api

import (
	middleware "shiftHub/internal/middleware"
	"shiftHub/internal/services"
	"shiftHub/internal/types"
	jwtUtils "shiftHub/pkg/tools"

	"github.com/gin-gonic/gin"
)

type departmentController struct{}

var DepartmentController = new(departmentController)

/*
部门 API
/api/sh/department
*/
func (departmentController departmentController) API(gin *gin.RouterGroup) {
	a := gin.Group("department")
	a.Use(
		middleware.Auth(),
		middleware.ParseTenant(),
		middleware.AuditingLog(),
	)
	{
		a.POST("departmentCreate", departmentController.Create)
		a.POST("departmentUpdate", departmentController.Update)
		a.POST("departmentDelete", departmentController.Delete)
		a.POST("departmentAddMember", departmentController.AddMember)
		a.POST("departmentRemoveMember", departmentController.RemoveMember)
	}

	b := gin.Group("department")
	b.Use(
		middleware.Auth(),
		middleware.ParseTenant(),
	)
	{
		b.GET("departmentList", departmentController.List)
		b.GET("departmentMembers", departmentController.ListMembers)
	}
}

func (departmentController departmentController) Create(ctx *gin.Context) {
	r := new(types.RequestDepartmentCreate)
	BindJson(ctx, r)

	tid, _ := ctx.Get("TenantID")
	r.TenantId = tid.(string)
	r.CreateBy = jwtUtils.GetUser(ctx.Request.Header.Get("Authorization"))

	Service(ctx, func() (interface{}, interface{}) {
		return services.DepartmentService.Create(r)
	})
}

func (departmentController departmentController) Update(ctx *gin.Context) {
	r := new(types.RequestDepartmentUpdate)
	BindJson(ctx, r)

	tid, _ := ctx.Get("TenantID")
	r.TenantId = tid.(string)

	Service(ctx, func() (interface{}, interface{}) {
		return services.DepartmentService.Update(r)
	})
}

func (departmentController departmentController) Delete(ctx *gin.Context) {
	r := new(types.RequestDepartmentDelete)
	BindJson(ctx, r)

	tid, _ := ctx.Get("TenantID")
	r.TenantId = tid.(string)

	Service(ctx, func() (interface{}, interface{}) {
		return services.DepartmentService.Delete(r)
	})
}

func (departmentController departmentController) AddMember(ctx *gin.Context) {
	r := new(types.RequestDepartmentMemberChange)
	BindJson(ctx, r)

	tid, _ := ctx.Get("TenantID")
	r.TenantId = tid.(string)

	Service(ctx, func() (interface{}, interface{}) {
		return services.DepartmentService.AddMember(r)
	})
}

func (departmentController departmentController) RemoveMember(ctx *gin.Context) {
	r := new(types.RequestDepartmentMemberChange)
	BindJson(ctx, r)

	tid, _ := ctx.Get("TenantID")
	r.TenantId = tid.(string)

	Service(ctx, func() (interface{}, interface{}) {
		return services.DepartmentService.RemoveMember(r)
	})
}

func (departmentController departmentController) List(ctx *gin.Context) {
	r := new(types.RequestDepartmentQuery)
	BindQuery(ctx, r)

	tid, _ := ctx.Get("TenantID")
	r.TenantId = tid.(string)

	Service(ctx, func() (interface{}, interface{}) {
		return services.DepartmentService.List(r)
	})
}

func (departmentController departmentController) ListMembers(ctx *gin.Context) {
	r := new(types.RequestDepartmentQuery)
	BindQuery(ctx, r)

	tid, _ := ctx.Get("TenantID")
	r.TenantId = tid.(string)

	Service(ctx, func() (interface{}, interface{}) {
		return services.DepartmentService.ListMembers(r)
	})
}
