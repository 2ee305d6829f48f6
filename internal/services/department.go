package services

import (
	"time"

	"shiftHub/internal/ctx"
	"shiftHub/internal/models"
	"shiftHub/internal/types"
	"shiftHub/pkg/tools"
)

type departmentService struct {
	ctx *ctx.Context
}

type InterDepartmentService interface {
	List(req interface{}) (interface{}, interface{})
	Create(req interface{}) (interface{}, interface{})
	Update(req interface{}) (interface{}, interface{})
	Delete(req interface{}) (interface{}, interface{})
	AddMember(req interface{}) (interface{}, interface{})
	RemoveMember(req interface{}) (interface{}, interface{})
	ListMembers(req interface{}) (interface{}, interface{})
}

func newInterDepartmentService(ctx *ctx.Context) InterDepartmentService {
	return &departmentService{
		ctx: ctx,
	}
}

func (ds departmentService) List(req interface{}) (interface{}, interface{}) {
	r := req.(*types.RequestDepartmentQuery)

	data, err := ds.ctx.DB.Department().List(r.TenantId)
	if err != nil {
		return nil, err
	}

	return data, nil
}

func (ds departmentService) Create(req interface{}) (interface{}, interface{}) {
	r := req.(*types.RequestDepartmentCreate)

	err := ds.ctx.DB.Department().Create(models.Department{
		TenantId:    r.TenantId,
		ID:          "dept-" + tools.RandId(),
		Name:        r.Name,
		Description: r.Description,
		CreateBy:    r.CreateBy,
		CreateAt:    time.Now().Unix(),
	})
	if err != nil {
		return nil, err
	}

	return nil, nil
}

func (ds departmentService) Update(req interface{}) (interface{}, interface{}) {
	r := req.(*types.RequestDepartmentUpdate)

	data, exist, err := ds.ctx.DB.Department().Get(r.TenantId, r.ID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, models.NewNotFoundError(models.EntityDepartment, "部门不存在")
	}

	if r.Name != "" {
		data.Name = r.Name
	}
	if r.Description != "" {
		data.Description = r.Description
	}

	err = ds.ctx.DB.Department().Update(data)
	if err != nil {
		return nil, err
	}

	return nil, nil
}

func (ds departmentService) Delete(req interface{}) (interface{}, interface{}) {
	r := req.(*types.RequestDepartmentDelete)

	_, exist, err := ds.ctx.DB.Department().Get(r.TenantId, r.ID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, models.NewNotFoundError(models.EntityDepartment, "部门不存在")
	}

	err = ds.ctx.DB.Department().Delete(r.TenantId, r.ID)
	if err != nil {
		return nil, err
	}

	return nil, nil
}

// AddMember 加入部门花名册，排班分配的前置条件在此建立
func (ds departmentService) AddMember(req interface{}) (interface{}, interface{}) {
	r := req.(*types.RequestDepartmentMemberChange)

	_, exist, err := ds.ctx.DB.Department().Get(r.TenantId, r.DepartmentId)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, models.NewNotFoundError(models.EntityDepartment, "部门不存在")
	}

	_, exist, err = ds.ctx.DB.User().Get(r.UserId, "")
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, models.NewNotFoundError(models.EntityUser, "用户不存在")
	}

	isMember, err := ds.ctx.DB.Department().IsMember(r.TenantId, r.DepartmentId, r.UserId)
	if err != nil {
		return nil, err
	}
	if isMember {
		return nil, models.NewConflictError("用户已是该部门成员")
	}

	err = ds.ctx.DB.Department().AddMember(models.DepartmentMember{
		TenantId:     r.TenantId,
		DepartmentId: r.DepartmentId,
		UserId:       r.UserId,
		AddedAt:      time.Now().Unix(),
	})
	if err != nil {
		return nil, err
	}

	return nil, nil
}

func (ds departmentService) RemoveMember(req interface{}) (interface{}, interface{}) {
	r := req.(*types.RequestDepartmentMemberChange)

	isMember, err := ds.ctx.DB.Department().IsMember(r.TenantId, r.DepartmentId, r.UserId)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, models.NewNotFoundError(models.EntityDepartment, "用户不是该部门成员")
	}

	err = ds.ctx.DB.Department().RemoveMember(r.TenantId, r.DepartmentId, r.UserId)
	if err != nil {
		return nil, err
	}

	return nil, nil
}

func (ds departmentService) ListMembers(req interface{}) (interface{}, interface{}) {
	r := req.(*types.RequestDepartmentQuery)

	data, err := ds.ctx.DB.Department().ListMembers(r.TenantId, r.ID)
	if err != nil {
		return nil, err
	}

	return data, nil
}
