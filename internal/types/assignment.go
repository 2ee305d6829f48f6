package types

import (
	"shiftHub/pkg/schedule"
)

// RequestAssignmentCreate 创建排班分配
// 一次请求可分配多个路由组，逐组独立校验，允许部分成功
type RequestAssignmentCreate struct {
	TenantId     string              `json:"-"`
	UserId       string              `json:"userId" binding:"required"`
	GroupIds     []string            `json:"groupIds" binding:"required"`
	DepartmentId string              `json:"departmentId" binding:"required"`
	Schedule     []schedule.RawEntry `json:"schedule" binding:"required"`
	UpdateBy     string              `json:"-"`
}

// RequestAssignmentScheduleUpdate 更新用户在租户内全部分配行的排班
type RequestAssignmentScheduleUpdate struct {
	TenantId string              `json:"-"`
	UserId   string              `json:"userId" binding:"required"`
	Schedule []schedule.RawEntry `json:"schedule" binding:"required"`
	UpdateBy string              `json:"-"`
}

// RequestAssignmentDelete 删除指定四元组的分配
type RequestAssignmentDelete struct {
	TenantId     string `json:"-"`
	UserId       string `json:"userId" form:"userId" binding:"required"`
	GroupId      string `json:"groupId" form:"groupId" binding:"required"`
	DepartmentId string `json:"departmentId" form:"departmentId" binding:"required"`
}

// RequestAssignmentQuery 查询分配列表
type RequestAssignmentQuery struct {
	TenantId string `json:"-" form:"-"`
	UserId   string `json:"userId" form:"userId"`
}

// AssignmentResult 批量分配中单个路由组的处理结果
type AssignmentResult struct {
	GroupId string `json:"groupId"`
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
}

// ResponseAssignmentCreate 批量分配结果，部分成功为一等公民
type ResponseAssignmentCreate struct {
	Results []AssignmentResult `json:"results"`
}
