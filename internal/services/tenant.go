package services

import (
	"time"

	"shiftHub/internal/ctx"
	"shiftHub/internal/models"
	"shiftHub/internal/types"
	"shiftHub/pkg/tools"
)

type tenantService struct {
	ctx *ctx.Context
}

type InterTenantService interface {
	List(req interface{}) (interface{}, interface{})
	Get(req interface{}) (interface{}, interface{})
	Create(req interface{}) (interface{}, interface{})
	Update(req interface{}) (interface{}, interface{})
	Delete(req interface{}) (interface{}, interface{})
}

func newInterTenantService(ctx *ctx.Context) InterTenantService {
	return &tenantService{
		ctx: ctx,
	}
}

func (ts tenantService) List(req interface{}) (interface{}, interface{}) {
	data, err := ts.ctx.DB.Tenant().GetAll()
	if err != nil {
		return nil, err
	}

	return data, nil
}

func (ts tenantService) Get(req interface{}) (interface{}, interface{}) {
	r := req.(*types.RequestTenantQuery)

	data, exist, err := ts.ctx.DB.Tenant().Get(r.ID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, models.NewNotFoundError("Tenant", "租户不存在")
	}

	return data, nil
}

func (ts tenantService) Create(req interface{}) (interface{}, interface{}) {
	r := req.(*types.RequestTenantCreate)

	err := ts.ctx.DB.Tenant().Create(models.Tenant{
		ID:          tools.RandUid(),
		Name:        r.Name,
		Manager:     r.Manager,
		Description: r.Description,
		CreateBy:    r.CreateBy,
		CreateAt:    time.Now().Unix(),
	})
	if err != nil {
		return nil, err
	}

	return nil, nil
}

func (ts tenantService) Update(req interface{}) (interface{}, interface{}) {
	r := req.(*types.RequestTenantUpdate)

	data, exist, err := ts.ctx.DB.Tenant().Get(r.ID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, models.NewNotFoundError("Tenant", "租户不存在")
	}

	if r.Name != "" {
		data.Name = r.Name
	}
	if r.Manager != "" {
		data.Manager = r.Manager
	}
	if r.Description != "" {
		data.Description = r.Description
	}

	err = ts.ctx.DB.Tenant().Update(data)
	if err != nil {
		return nil, err
	}

	return nil, nil
}

func (ts tenantService) Delete(req interface{}) (interface{}, interface{}) {
	r := req.(*types.RequestTenantDelete)

	_, exist, err := ts.ctx.DB.Tenant().Get(r.ID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, models.NewNotFoundError("Tenant", "租户不存在")
	}

	err = ts.ctx.DB.Tenant().Delete(r.ID)
	if err != nil {
		return nil, err
	}

	return nil, nil
}
