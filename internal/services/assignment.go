package services

import (
	"fmt"
	"time"

	"shiftHub/internal/ctx"
	"shiftHub/internal/models"
	"shiftHub/internal/types"
	"shiftHub/pkg/schedule"

	"github.com/zeromicro/go-zero/core/logc"
)

type assignmentService struct {
	ctx *ctx.Context
}

type InterAssignmentService interface {
	Create(req interface{}) (interface{}, interface{})
	UpdateSchedule(req interface{}) (interface{}, interface{})
	Delete(req interface{}) (interface{}, interface{})
	List(req interface{}) (interface{}, interface{})
}

func newInterAssignmentService(ctx *ctx.Context) InterAssignmentService {
	return &assignmentService{
		ctx: ctx,
	}
}

// assignmentGuard 创建分配前的资格检查链
// 检查顺序即业务顺序，逐项短路并给出独立的错误类型：
// 路由组存在 -> 部门存在 -> 用户存在 -> 部门成员 -> 四元组不重复
// 成员检查必须先于重复检查："先入部门，后排班"
type assignmentGuard struct {
	groupExists func() (bool, error)
	deptExists  func() (bool, error)
	userExists  func() (bool, error)
	isMember    func() (bool, error)
	assigned    func() (bool, error)
}

func (g assignmentGuard) check() error {
	ok, err := g.groupExists()
	if err != nil {
		return err
	}
	if !ok {
		return models.NewNotFoundError(models.EntityGroup, "路由组不存在")
	}

	ok, err = g.deptExists()
	if err != nil {
		return err
	}
	if !ok {
		return models.NewNotFoundError(models.EntityDepartment, "部门不存在")
	}

	ok, err = g.userExists()
	if err != nil {
		return err
	}
	if !ok {
		return models.NewNotFoundError(models.EntityUser, "用户不存在")
	}

	ok, err = g.isMember()
	if err != nil {
		return err
	}
	if !ok {
		return models.NewPreconditionError("用户未加入该部门, 请先加入部门再分配路由组")
	}

	ok, err = g.assigned()
	if err != nil {
		return err
	}
	if ok {
		return models.NewConflictError("该用户在此路由组与部门下已存在分配")
	}

	return nil
}

func (as assignmentService) newGuard(tenantId, userId, groupId, departmentId string) assignmentGuard {
	return assignmentGuard{
		groupExists: func() (bool, error) {
			_, ok, err := as.ctx.DB.Group().Get(tenantId, groupId)
			return ok, err
		},
		deptExists: func() (bool, error) {
			_, ok, err := as.ctx.DB.Department().Get(tenantId, departmentId)
			return ok, err
		},
		userExists: func() (bool, error) {
			_, ok, err := as.ctx.DB.User().Get(userId, "")
			return ok, err
		},
		isMember: func() (bool, error) {
			return as.ctx.DB.Department().IsMember(tenantId, departmentId, userId)
		},
		assigned: func() (bool, error) {
			_, ok, err := as.ctx.DB.Assignment().Get(tenantId, userId, groupId, departmentId)
			return ok, err
		},
	}
}

// Create 创建排班分配
// 排班表只规范化校验一次；多个路由组逐个独立走检查链，
// 单组失败不影响其余组，逐组结果原样返回
func (as assignmentService) Create(req interface{}) (interface{}, interface{}) {
	r := req.(*types.RequestAssignmentCreate)

	ws, err := schedule.Normalize(r.Schedule)
	if err != nil {
		return nil, err
	}
	if err := schedule.Validate(ws); err != nil {
		return nil, err
	}

	now := time.Now().Unix()
	results := make([]types.AssignmentResult, 0, len(r.GroupIds))
	for _, groupId := range r.GroupIds {
		result := types.AssignmentResult{GroupId: groupId, Status: "success"}

		err := as.createOne(r.TenantId, r.UserId, groupId, r.DepartmentId, ws, r.UpdateBy, now)
		if err != nil {
			logc.Errorf(as.ctx.Ctx, "分配失败, user: %s, group: %s, err: %s", r.UserId, groupId, err.Error())
			result.Status = "failed"
			result.Error = err.Error()
		}
		results = append(results, result)
	}

	return types.ResponseAssignmentCreate{Results: results}, nil
}

func (as assignmentService) createOne(tenantId, userId, groupId, departmentId string, ws models.WeekSchedule, updateBy string, now int64) error {
	if err := as.newGuard(tenantId, userId, groupId, departmentId).check(); err != nil {
		return err
	}

	// 并发下同四元组的重复写入由唯一索引兜底
	err := as.ctx.DB.Assignment().Create(models.Assignment{
		TenantId:     tenantId,
		UserId:       userId,
		GroupId:      groupId,
		DepartmentId: departmentId,
		Schedule:     ws,
		AddedAt:      now,
		UpdateBy:     updateBy,
		UpdateAt:     now,
	})
	if err != nil {
		return fmt.Errorf("分配记录写入失败: %w", err)
	}

	return nil
}

// UpdateSchedule 更新用户排班
// 只校验一次，然后套用到该用户在租户内的全部分配行；无分配行时报错
func (as assignmentService) UpdateSchedule(req interface{}) (interface{}, interface{}) {
	r := req.(*types.RequestAssignmentScheduleUpdate)

	ws, err := schedule.Normalize(r.Schedule)
	if err != nil {
		return nil, err
	}
	if err := schedule.Validate(ws); err != nil {
		return nil, err
	}

	rows, err := as.ctx.DB.Assignment().ListByUser(r.TenantId, r.UserId)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, models.NewNotFoundError(models.EntityNoAssignments, "该用户当前没有任何分配记录")
	}

	err = as.ctx.DB.Assignment().UpdateScheduleByUser(r.TenantId, r.UserId, ws, r.UpdateBy, time.Now().Unix())
	if err != nil {
		return nil, err
	}

	return nil, nil
}

// Delete 删除分配，先做存在性检查，缺失按 NotFound 返回
func (as assignmentService) Delete(req interface{}) (interface{}, interface{}) {
	r := req.(*types.RequestAssignmentDelete)

	_, exist, err := as.ctx.DB.Assignment().Get(r.TenantId, r.UserId, r.GroupId, r.DepartmentId)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, models.NewNotFoundError(models.EntityAssignment, "分配记录不存在")
	}

	err = as.ctx.DB.Assignment().Delete(r.TenantId, r.UserId, r.GroupId, r.DepartmentId)
	if err != nil {
		return nil, err
	}

	return nil, nil
}

func (as assignmentService) List(req interface{}) (interface{}, interface{}) {
	r := req.(*types.RequestAssignmentQuery)

	data, err := as.ctx.DB.Assignment().List(r.TenantId, r.UserId)
	if err != nil {
		return nil, err
	}

	return data, nil
}
