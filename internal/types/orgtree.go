package types

// RequestSetManager 设置汇报对象
// ManagerUserId 与 ManagerLabel 互斥，两者同时有值按客户端错误拒绝，
// 两者皆空表示清除汇报对象
type RequestSetManager struct {
	TenantId      string `json:"-"`
	UserId        string `json:"userId" binding:"required"`
	ManagerUserId string `json:"managerUserId"`
	ManagerLabel  string `json:"managerLabel"`
}

// RequestOrgTreeQuery 查询汇报关系树
type RequestOrgTreeQuery struct {
	TenantId string `json:"-" form:"-"`
}
