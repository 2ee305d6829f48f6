package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shiftHub/internal/global"

	"github.com/dgrijalva/jwt-go"
	"github.com/zeromicro/go-zero/core/logc"
)

type JwtClaims struct {
	UserId   string `json:"userId"`
	UserName string `json:"userName"`
	jwt.StandardClaims
}

// GenerateToken 签发用户Token
func GenerateToken(userId, userName string) (string, error) {
	now := time.Now().Unix()
	claims := JwtClaims{
		UserId:   userId,
		UserName: userName,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now,
			ExpiresAt: now + global.Config.Jwt.Expire,
			Issuer:    "shiftHub",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(global.StSignKey)
}

// ParseToken 解析Token，无效或过期返回错误
func ParseToken(tokenStr string) (*JwtClaims, error) {
	tokenStr = strings.TrimPrefix(tokenStr, "Bearer ")

	token, err := jwt.ParseWithClaims(tokenStr, &JwtClaims{}, func(token *jwt.Token) (interface{}, error) {
		return global.StSignKey, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*JwtClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("无效的Token")
	}

	return claims, nil
}

// GetUser 从Token中提取用户名，解析失败返回空串
func GetUser(tokenStr string) string {
	claims, err := ParseToken(tokenStr)
	if err != nil {
		logc.Error(context.Background(), err.Error())
		return ""
	}
	return claims.UserName
}

// GetUserID 从Token中提取用户ID，解析失败返回空串
func GetUserID(tokenStr string) string {
	claims, err := ParseToken(tokenStr)
	if err != nil {
		logc.Error(context.Background(), err.Error())
		return ""
	}
	return claims.UserId
}
