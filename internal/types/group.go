package types

// RequestGroupCreate 创建路由组
type RequestGroupCreate struct {
	TenantId    string `json:"-"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	CreateBy    string `json:"-"`
}

// RequestGroupUpdate 更新路由组
type RequestGroupUpdate struct {
	TenantId    string `json:"-"`
	ID          string `json:"id" binding:"required"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RequestGroupDelete 删除路由组
type RequestGroupDelete struct {
	TenantId string `json:"-" form:"-"`
	ID       string `json:"id" form:"id" binding:"required"`
}

// RequestGroupQuery 查询路由组
type RequestGroupQuery struct {
	TenantId string `json:"-" form:"-"`
	ID       string `json:"id" form:"id"`
}
