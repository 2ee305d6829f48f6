package services

import (
	"time"

	"shiftHub/internal/ctx"
	"shiftHub/internal/models"
	"shiftHub/internal/types"
	"shiftHub/pkg/tools"
)

type groupService struct {
	ctx *ctx.Context
}

type InterGroupService interface {
	List(req interface{}) (interface{}, interface{})
	Create(req interface{}) (interface{}, interface{})
	Update(req interface{}) (interface{}, interface{})
	Delete(req interface{}) (interface{}, interface{})
}

func newInterGroupService(ctx *ctx.Context) InterGroupService {
	return &groupService{
		ctx: ctx,
	}
}

func (gs groupService) List(req interface{}) (interface{}, interface{}) {
	r := req.(*types.RequestGroupQuery)

	data, err := gs.ctx.DB.Group().List(r.TenantId)
	if err != nil {
		return nil, err
	}

	return data, nil
}

func (gs groupService) Create(req interface{}) (interface{}, interface{}) {
	r := req.(*types.RequestGroupCreate)

	err := gs.ctx.DB.Group().Create(models.RoutingGroup{
		TenantId:    r.TenantId,
		ID:          "group-" + tools.RandId(),
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

func (gs groupService) Update(req interface{}) (interface{}, interface{}) {
	r := req.(*types.RequestGroupUpdate)

	data, exist, err := gs.ctx.DB.Group().Get(r.TenantId, r.ID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, models.NewNotFoundError(models.EntityGroup, "路由组不存在")
	}

	if r.Name != "" {
		data.Name = r.Name
	}
	if r.Description != "" {
		data.Description = r.Description
	}

	err = gs.ctx.DB.Group().Update(data)
	if err != nil {
		return nil, err
	}

	return nil, nil
}

func (gs groupService) Delete(req interface{}) (interface{}, interface{}) {
	r := req.(*types.RequestGroupDelete)

	_, exist, err := gs.ctx.DB.Group().Get(r.TenantId, r.ID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, models.NewNotFoundError(models.EntityGroup, "路由组不存在")
	}

	err = gs.ctx.DB.Group().Delete(r.TenantId, r.ID)
	if err != nil {
		return nil, err
	}

	return nil, nil
}
