package models

// Assignment 排班分配记录
// 以 (tenant, user, group, department) 四元组唯一，重复写入由唯一索引兜底，
// 并发场景下后写方收到 Conflict
type Assignment struct {
	TenantId     string       `json:"tenantId" gorm:"uniqueIndex:uk_assignment"`
	UserId       string       `json:"userId" gorm:"uniqueIndex:uk_assignment"`
	GroupId      string       `json:"groupId" gorm:"uniqueIndex:uk_assignment"`
	DepartmentId string       `json:"departmentId" gorm:"uniqueIndex:uk_assignment"`
	Schedule     WeekSchedule `json:"schedule" gorm:"schedule;serializer:json"`
	AddedAt      int64        `json:"addedAt"`
	UpdateBy     string       `json:"updateBy"`
	UpdateAt     int64        `json:"updateAt"`
}

func (Assignment) TableName() string {
	return "sh_assignment"
}
