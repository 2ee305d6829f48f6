package models

// Tenant 租户信息
type Tenant struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Manager          string `json:"manager"`
	ManagerRealName  string `json:"managerRealName" gorm:"-"`
	Description      string `json:"description"`
	CreateBy         string `json:"create_by"`
	CreateAt         int64  `json:"create_at"`
	UserNumber       int64  `json:"userNumber"`
	AssignmentNumber int64  `json:"assignmentNumber"`
}

func (Tenant) TableName() string {
	return "sh_tenant"
}
