package tools

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/zeromicro/go-zero/core/logc"
)

// NewCronjob 注册并启动定时任务，表达式非法时仅记录日志不中断进程
func NewCronjob(spec string, fn func()) {
	c := cron.New()
	_, err := c.AddFunc(spec, fn)
	if err != nil {
		logc.Errorf(context.Background(), "定时任务注册失败, spec: %s, err: %s", spec, err.Error())
		return
	}
	c.Start()
}
