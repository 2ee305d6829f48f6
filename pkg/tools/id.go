package tools

import (
	"github.com/google/uuid"
	"github.com/rs/xid"
)

// RandId 生成短随机ID，用于记录主键与审计追踪号
func RandId() string {
	return xid.New().String()
}

// RandUid 生成UUID，用于租户等对外暴露的资源ID
func RandUid() string {
	return uuid.NewString()
}
