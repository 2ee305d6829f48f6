package services

import (
	"strings"

	"shiftHub/internal/ctx"
	"shiftHub/internal/models"
	"shiftHub/internal/types"
	"shiftHub/pkg/orgtree"
)

type orgTreeService struct {
	ctx *ctx.Context
}

type InterOrgTreeService interface {
	SetManager(req interface{}) (interface{}, interface{})
	GetForest(req interface{}) (interface{}, interface{})
}

func newInterOrgTreeService(ctx *ctx.Context) InterOrgTreeService {
	return &orgTreeService{
		ctx: ctx,
	}
}

// SetManager 设置用户的汇报对象
// 三态写入：清除 / 指向用户 / 指向标签；用户与标签同时提交按客户端错误拒绝。
// 指向用户时先做自指与环路硬校验，任何校验失败都不会产生部分写入
func (os orgTreeService) SetManager(req interface{}) (interface{}, interface{}) {
	r := req.(*types.RequestSetManager)

	managerUserId := strings.TrimSpace(r.ManagerUserId)
	managerLabel := strings.TrimSpace(r.ManagerLabel)

	if managerUserId != "" && managerLabel != "" {
		return nil, models.NewInvalidManagerError("汇报对象的用户与标签不能同时提交")
	}

	_, exist, err := os.ctx.DB.User().Get(r.UserId, "")
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, models.NewNotFoundError(models.EntityUser, "用户不存在")
	}

	var ref models.ManagerRef
	switch {
	case managerUserId != "":
		_, exist, err := os.ctx.DB.User().Get(managerUserId, "")
		if err != nil {
			return nil, err
		}
		if !exist {
			return nil, models.NewNotFoundError(models.EntityUser, "汇报对象用户不存在")
		}

		edges, err := os.ctx.DB.User().ManagerEdges(r.TenantId)
		if err != nil {
			return nil, err
		}
		if err := orgtree.DetectCycle(managerUserId, r.UserId, edges); err != nil {
			return nil, err
		}

		ref = models.ManagerUser(managerUserId)
	case managerLabel != "":
		ref = models.ManagerLabel(managerLabel)
	default:
		ref = models.ManagerNone()
	}

	if err := os.ctx.DB.User().UpdateManager(r.UserId, ref); err != nil {
		return nil, err
	}

	// 汇报关系已变更，失效展示树缓存
	os.ctx.Redis.OrgTree().Del(r.TenantId)

	return nil, nil
}

// GetForest 获取租户的汇报关系森林
// 只读展示路径，优先走缓存；缓存视图允许短暂落后于写入
func (os orgTreeService) GetForest(req interface{}) (interface{}, interface{}) {
	r := req.(*types.RequestOrgTreeQuery)

	if forest, ok := os.ctx.Redis.OrgTree().Get(r.TenantId); ok {
		return forest, nil
	}

	members, err := os.ctx.DB.User().List(r.TenantId, "")
	if err != nil {
		return nil, err
	}

	forest := orgtree.BuildForest(members)
	os.ctx.Redis.OrgTree().Set(r.TenantId, forest)

	return forest, nil
}
