package cache

import (
	"fmt"

	"shiftHub/internal/global"

	"github.com/go-redis/redis"
)

type entryCache struct {
	rdb *redis.Client
}

// Cache 缓存入口
type Cache struct {
	entryCache
}

func (e entryCache) Redis() *redis.Client       { return e.rdb }
func (e entryCache) OrgTree() InterOrgTreeCache { return newOrgTreeCache(e.rdb) }

// NewEntryCache 连接 Redis 并初始化缓存入口
func NewEntryCache() *Cache {
	c := global.Config.Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", c.Host, c.Port),
		Password: c.Pass,
		DB:       0,
	})

	if err := rdb.Ping().Err(); err != nil {
		panic("Redis 连接失败: " + err.Error())
	}

	return &Cache{
		entryCache{
			rdb: rdb,
		},
	}
}
