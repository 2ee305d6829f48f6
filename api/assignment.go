package api

import (
	middleware "shiftHub/internal/middleware"
	"shiftHub/internal/services"
	"shiftHub/internal/types"
	jwtUtils "shiftHub/pkg/tools"

	"github.com/gin-gonic/gin"
)

type assignmentController struct{}

var AssignmentController = new(assignmentController)

/*
排班分配 API
/api/sh/assignment
*/
func (assignmentController assignmentController) API(gin *gin.RouterGroup) {
	a := gin.Group("assignment")
	a.Use(
		middleware.Auth(),
		middleware.ParseTenant(),
		middleware.AuditingLog(),
	)
	{
		a.POST("assignmentCreate", assignmentController.Create)
		a.POST("assignmentUpdateSchedule", assignmentController.UpdateSchedule)
		a.POST("assignmentDelete", assignmentController.Delete)
	}

	b := gin.Group("assignment")
	b.Use(
		middleware.Auth(),
		middleware.ParseTenant(),
	)
	{
		b.GET("assignmentList", assignmentController.List)
	}
}

func (assignmentController assignmentController) Create(ctx *gin.Context) {
	r := new(types.RequestAssignmentCreate)
	BindJson(ctx, r)

	tid, _ := ctx.Get("TenantID")
	r.TenantId = tid.(string)
	r.UpdateBy = jwtUtils.GetUser(ctx.Request.Header.Get("Authorization"))

	Service(ctx, func() (interface{}, interface{}) {
		return services.AssignmentService.Create(r)
	})
}

func (assignmentController assignmentController) UpdateSchedule(ctx *gin.Context) {
	r := new(types.RequestAssignmentScheduleUpdate)
	BindJson(ctx, r)

	tid, _ := ctx.Get("TenantID")
	r.TenantId = tid.(string)
	r.UpdateBy = jwtUtils.GetUser(ctx.Request.Header.Get("Authorization"))

	Service(ctx, func() (interface{}, interface{}) {
		return services.AssignmentService.UpdateSchedule(r)
	})
}

func (assignmentController assignmentController) Delete(ctx *gin.Context) {
	r := new(types.RequestAssignmentDelete)
	BindJson(ctx, r)

	tid, _ := ctx.Get("TenantID")
	r.TenantId = tid.(string)

	Service(ctx, func() (interface{}, interface{}) {
		return services.AssignmentService.Delete(r)
	})
}

func (assignmentController assignmentController) List(ctx *gin.Context) {
	r := new(types.RequestAssignmentQuery)
	BindQuery(ctx, r)

	tid, _ := ctx.Get("TenantID")
	r.TenantId = tid.(string)

	Service(ctx, func() (interface{}, interface{}) {
		return services.AssignmentService.List(r)
	})
}
