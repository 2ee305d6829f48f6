package models

import "strings"

// 汇报对象的三态类型，user 与 label 互斥，设置一方会清空另一方
const (
	ManagerRefNone  = "none"
	ManagerRefUser  = "user"
	ManagerRefLabel = "label"
)

// ManagerRef 汇报对象引用
// Type 为 user 时 UserId 有值；为 label 时 Label 有值（自由文本，例如值班区域名）
// 存储为JSON列，类型层面排除"两者同时有值"的非法状态
type ManagerRef struct {
	Type   string `json:"type"`
	UserId string `json:"userId,omitempty"`
	Label  string `json:"label,omitempty"`
}

func ManagerNone() ManagerRef {
	return ManagerRef{Type: ManagerRefNone}
}

func ManagerUser(userId string) ManagerRef {
	return ManagerRef{Type: ManagerRefUser, UserId: userId}
}

// ManagerLabel 标签型汇报对象，入库前统一裁剪首尾空白
func ManagerLabel(label string) ManagerRef {
	return ManagerRef{Type: ManagerRefLabel, Label: strings.TrimSpace(label)}
}

// IsNone 兼容历史数据，Type 为空串视为未设置
func (m ManagerRef) IsNone() bool {
	return m.Type == "" || m.Type == ManagerRefNone
}

// Member 用户信息
type Member struct {
	UserId   string     `json:"userid" gorm:"primaryKey"`
	UserName string     `json:"username"`
	RealName string     `json:"realName"`
	Email    string     `json:"email"`
	Mobile   string     `json:"mobile"`
	Password string     `json:"password"`
	Tenants  []string   `json:"tenants" gorm:"tenants;serializer:json"`
	Manager  ManagerRef `json:"manager" gorm:"manager;serializer:json"`
	CreateBy string     `json:"create_by"`
	CreateAt int64      `json:"create_at"`
}

func (Member) TableName() string {
	return "sh_member"
}

// DisplayName 展示名，优先真实姓名
func (m Member) DisplayName() string {
	if m.RealName != "" {
		return m.RealName
	}
	return m.UserName
}
