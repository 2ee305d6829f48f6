package services

import (
	"shiftHub/internal/ctx"
)

var (
	AssignmentService InterAssignmentService
	OrgTreeService    InterOrgTreeService
	UserService       InterUserService
	DepartmentService InterDepartmentService
	GroupService      InterGroupService
	TenantService     InterTenantService
)

func NewServices(ctx *ctx.Context) {
	AssignmentService = newInterAssignmentService(ctx)
	OrgTreeService = newInterOrgTreeService(ctx)
	UserService = newInterUserService(ctx)
	DepartmentService = newInterDepartmentService(ctx)
	GroupService = newInterGroupService(ctx)
	TenantService = newInterTenantService(ctx)
}
