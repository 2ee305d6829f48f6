package models

// Department 部门信息，告警路由的目标组织单元
type Department struct {
	TenantId    string `json:"tenantId"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreateBy    string `json:"create_by"`
	CreateAt    int64  `json:"create_at"`
}

func (Department) TableName() string {
	return "sh_department"
}

// DepartmentMember 部门成员花名册
// 业务规则：先入部门，后排班。分配排班前必须先存在成员记录
type DepartmentMember struct {
	TenantId     string `json:"tenantId" gorm:"uniqueIndex:uk_department_member"`
	DepartmentId string `json:"departmentId" gorm:"uniqueIndex:uk_department_member"`
	UserId       string `json:"userId" gorm:"uniqueIndex:uk_department_member"`
	AddedAt      int64  `json:"addedAt"`
}

func (DepartmentMember) TableName() string {
	return "sh_department_member"
}
