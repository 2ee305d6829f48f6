package initialization

import (
	"context"
	"time"

	"shiftHub/config"
	"shiftHub/internal/cache"
	"shiftHub/internal/ctx"
	"shiftHub/internal/global"
	"shiftHub/internal/repo"
	"shiftHub/internal/services"
	"shiftHub/pkg/orgtree"
	"shiftHub/pkg/tools"

	"github.com/zeromicro/go-zero/core/logc"
	"golang.org/x/sync/errgroup"
)

func InitBasic() {

	// 初始化配置
	global.Config = config.InitConfig()
	global.StSignKey = []byte(global.Config.Jwt.Secret)

	dbRepo := repo.NewRepoEntry()
	rCache := cache.NewEntryCache()
	c := ctx.NewContext(context.Background(), dbRepo, rCache)

	services.NewServices(c)

	// 启动预热各租户的汇报关系树缓存
	go warmOrgTreeCache(c)

	// 定时任务，清理历史审计日志
	go gcHistoryData(c)
}

// warmOrgTreeCache 逐租户构建汇报关系森林并写入缓存
// 展示路径允许读到过期视图，预热失败只记日志不阻塞启动
func warmOrgTreeCache(c *ctx.Context) {
	tenants, err := c.DB.Tenant().GetAll()
	if err != nil {
		logc.Errorf(c.Ctx, "获取租户列表失败, err: %s", err.Error())
		return
	}

	g := new(errgroup.Group)
	for _, tenant := range tenants {
		t := tenant
		g.Go(func() error {
			members, err := c.DB.User().List(t.ID, "")
			if err != nil {
				logc.Errorf(c.Ctx, "租户 %s 用户列表查询失败, err: %s", t.ID, err.Error())
				return err
			}

			c.Redis.OrgTree().Set(t.ID, orgtree.BuildForest(members))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logc.Errorf(c.Ctx, "汇报关系树缓存预热未全部完成, err: %s", err.Error())
		return
	}

	logc.Info(c.Ctx, "汇报关系树缓存预热完成")
}

func gcHistoryData(c *ctx.Context) {
	// gc audit log history
	tools.NewCronjob("00 00 */1 * *", func() {
		retain := time.Now().AddDate(0, -3, 0).Unix()
		err := c.DB.AuditLog().DeleteBefore(retain)
		if err != nil {
			logc.Errorf(c.Ctx, "fail to delete audit log history, %s", err.Error())
		}
	})
}
