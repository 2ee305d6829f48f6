package types

// RequestTenantCreate 创建租户
type RequestTenantCreate struct {
	Name        string `json:"name" binding:"required"`
	Manager     string `json:"manager"`
	Description string `json:"description"`
	CreateBy    string `json:"-"`
}

// RequestTenantUpdate 更新租户
type RequestTenantUpdate struct {
	ID          string `json:"id" binding:"required"`
	Name        string `json:"name"`
	Manager     string `json:"manager"`
	Description string `json:"description"`
}

// RequestTenantDelete 删除租户
type RequestTenantDelete struct {
	ID string `json:"id" form:"id" binding:"required"`
}

// RequestTenantQuery 查询租户
type RequestTenantQuery struct {
	ID string `json:"id" form:"id"`
}
