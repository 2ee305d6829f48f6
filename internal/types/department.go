package types

// RequestDepartmentCreate 创建部门
type RequestDepartmentCreate struct {
	TenantId    string `json:"-"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	CreateBy    string `json:"-"`
}

// RequestDepartmentUpdate 更新部门
type RequestDepartmentUpdate struct {
	TenantId    string `json:"-"`
	ID          string `json:"id" binding:"required"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RequestDepartmentDelete 删除部门
type RequestDepartmentDelete struct {
	TenantId string `json:"-" form:"-"`
	ID       string `json:"id" form:"id" binding:"required"`
}

// RequestDepartmentQuery 查询部门
type RequestDepartmentQuery struct {
	TenantId string `json:"-" form:"-"`
	ID       string `json:"id" form:"id"`
}

// RequestDepartmentMemberChange 部门成员增删
type RequestDepartmentMemberChange struct {
	TenantId     string `json:"-"`
	DepartmentId string `json:"departmentId" binding:"required"`
	UserId       string `json:"userId" binding:"required"`
}
