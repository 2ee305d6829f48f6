package cache

import (
	"context"
	"encoding/json"
	"time"

	"shiftHub/pkg/orgtree"

	"github.com/go-redis/redis"
	"github.com/zeromicro/go-zero/core/logc"
)

// 汇报关系树为只读展示路径，允许读到短暂过期的视图
const orgTreeTTL = 5 * time.Minute

const orgTreeKeyPrefix = "sh:orgtree:"

type (
	OrgTreeCache struct {
		rdb *redis.Client
	}

	InterOrgTreeCache interface {
		Get(tenantId string) ([]*orgtree.Node, bool)
		Set(tenantId string, forest []*orgtree.Node)
		Del(tenantId string)
	}
)

func newOrgTreeCache(rdb *redis.Client) InterOrgTreeCache {
	return &OrgTreeCache{
		rdb: rdb,
	}
}

func (oc OrgTreeCache) Get(tenantId string) ([]*orgtree.Node, bool) {
	raw, err := oc.rdb.Get(orgTreeKeyPrefix + tenantId).Result()
	if err != nil {
		return nil, false
	}

	var forest []*orgtree.Node
	if err := json.Unmarshal([]byte(raw), &forest); err != nil {
		logc.Errorf(context.Background(), "汇报关系树缓存解析失败: %s", err.Error())
		return nil, false
	}

	return forest, true
}

func (oc OrgTreeCache) Set(tenantId string, forest []*orgtree.Node) {
	raw, err := json.Marshal(forest)
	if err != nil {
		logc.Errorf(context.Background(), "汇报关系树序列化失败: %s", err.Error())
		return
	}

	if err := oc.rdb.Set(orgTreeKeyPrefix+tenantId, string(raw), orgTreeTTL).Err(); err != nil {
		logc.Errorf(context.Background(), "汇报关系树缓存写入失败: %s", err.Error())
	}
}

// Del 汇报对象变更后失效缓存
func (oc OrgTreeCache) Del(tenantId string) {
	if err := oc.rdb.Del(orgTreeKeyPrefix + tenantId).Err(); err != nil {
		logc.Errorf(context.Background(), "汇报关系树缓存失效失败: %s", err.Error())
	}
}
