package models

// RoutingGroup 路由组，事件升级的独立路由目标
type RoutingGroup struct {
	TenantId    string `json:"tenantId"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreateBy    string `json:"create_by"`
	CreateAt    int64  `json:"create_at"`
}

func (RoutingGroup) TableName() string {
	return "sh_routing_group"
}
