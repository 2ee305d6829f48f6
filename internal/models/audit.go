package models

// AuditLog 操作审计日志
type AuditLog struct {
	TenantId   string `json:"tenantId"`
	ID         string `json:"id"`
	Username   string `json:"username"`
	IPAddress  string `json:"ipAddress"`
	Method     string `json:"method"`
	Path       string `json:"path"`
	CreatedAt  int64  `json:"created_at"`
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body" gorm:"type:text"`
	AuditType  string `json:"auditType"`
}

func (AuditLog) TableName() string {
	return "sh_audit_log"
}
