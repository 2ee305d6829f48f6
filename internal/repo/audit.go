package repo

import (
	"context"

	"shiftHub/internal/models"

	"github.com/zeromicro/go-zero/core/logc"
	"gorm.io/gorm"
)

type (
	AuditLogRepo struct {
		entryRepo
	}

	InterAuditLogRepo interface {
		Create(log models.AuditLog) error
		List(tenantId string) ([]models.AuditLog, error)
		DeleteBefore(ts int64) error
	}
)

func newAuditLogInterface(db *gorm.DB, g InterGormDBCli) InterAuditLogRepo {
	return &AuditLogRepo{
		entryRepo{
			g:  g,
			db: db,
		},
	}
}

func (al AuditLogRepo) Create(log models.AuditLog) error {
	err := al.g.Create(&models.AuditLog{}, log)
	if err != nil {
		logc.Error(context.Background(), err)
		return err
	}
	return nil
}

func (al AuditLogRepo) List(tenantId string) ([]models.AuditLog, error) {
	var data []models.AuditLog

	err := al.db.Model(&models.AuditLog{}).
		Where("tenant_id = ?", tenantId).
		Order("created_at desc").
		Find(&data).Error
	if err != nil {
		return nil, err
	}

	return data, nil
}

// DeleteBefore 清理历史审计日志，由定时任务触发
func (al AuditLogRepo) DeleteBefore(ts int64) error {
	return al.db.Where("created_at < ?", ts).Delete(&models.AuditLog{}).Error
}
