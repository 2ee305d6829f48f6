package global

import (
	"shiftHub/config"
)

var (
	Layout  = "2006-01-02 15:04:05"
	Config  config.App
	Version string
	// StSignKey 签发Token的秘钥，加载配置后初始化
	StSignKey []byte
)
