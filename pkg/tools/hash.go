package tools

import (
	"crypto/md5"
	"encoding/hex"
)

// GenerateHashPassword 密码散列，入库与比对统一使用
func GenerateHashPassword(password string) string {
	sum := md5.Sum([]byte(password))
	return hex.EncodeToString(sum[:])
}
