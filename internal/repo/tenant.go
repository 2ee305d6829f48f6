package repo

import (
	"context"

	"shiftHub/internal/models"

	"github.com/zeromicro/go-zero/core/logc"
	"gorm.io/gorm"
)

type (
	TenantRepo struct {
		entryRepo
	}

	InterTenantRepo interface {
		Create(t models.Tenant) error
		Update(t models.Tenant) error
		Delete(tenantId string) error
		GetAll() ([]models.Tenant, error)
		Get(tenantId string) (models.Tenant, bool, error)
	}
)

func newTenantInterface(db *gorm.DB, g InterGormDBCli) InterTenantRepo {
	return &TenantRepo{
		entryRepo{
			g:  g,
			db: db,
		},
	}
}

func (tr TenantRepo) Create(t models.Tenant) error {
	err := tr.g.Create(&models.Tenant{}, t)
	if err != nil {
		logc.Error(context.Background(), err)
		return err
	}
	return nil
}

func (tr TenantRepo) Update(t models.Tenant) error {
	err := tr.g.Updates(Updates{
		Table: &models.Tenant{},
		Where: map[string]interface{}{
			"id = ?": t.ID,
		},
		Updates: t,
	})
	if err != nil {
		logc.Error(context.Background(), err)
		return err
	}
	return nil
}

func (tr TenantRepo) Delete(tenantId string) error {
	err := tr.g.Delete(Delete{
		Table: &models.Tenant{},
		Where: map[string]interface{}{
			"id = ?": tenantId,
		},
	})
	if err != nil {
		logc.Error(context.Background(), err)
		return err
	}
	return nil
}

// GetAll 获取所有租户列表，供启动预热等全局任务使用
func (tr TenantRepo) GetAll() ([]models.Tenant, error) {
	var tenants []models.Tenant
	err := tr.db.Model(&models.Tenant{}).Find(&tenants).Error
	if err != nil {
		return nil, err
	}

	return tenants, nil
}

func (tr TenantRepo) Get(tenantId string) (models.Tenant, bool, error) {
	var d models.Tenant
	err := tr.db.Model(&models.Tenant{}).Where("id = ?", tenantId).First(&d).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return d, false, nil
		}
		return d, false, err
	}

	// 查询并填充负责人真实姓名
	if d.Manager != "" {
		var member models.Member
		err = tr.db.Model(&models.Member{}).Where("user_name = ?", d.Manager).First(&member).Error
		if err == nil {
			d.ManagerRealName = member.RealName
		}
	}

	return d, true, nil
}
