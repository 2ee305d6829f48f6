package ctx

import (
	"context"
	"sync"

	"shiftHub/internal/cache"
	"shiftHub/internal/repo"
)

// Context 服务层共享的上下文，聚合数据仓库与缓存入口
type Context struct {
	DB         *repo.Repo
	Redis      *cache.Cache
	Ctx        context.Context
	Mux        sync.Mutex
	ContextMap map[string]context.CancelFunc
}

var do *Context

func NewContext(c context.Context, db *repo.Repo, rc *cache.Cache) *Context {
	do = &Context{
		DB:         db,
		Redis:      rc,
		Ctx:        c,
		ContextMap: make(map[string]context.CancelFunc),
	}
	return do
}

// DO 获取全局上下文，供中间件等无法注入的调用点使用
func DO() *Context {
	return do
}
