package repo

import (
	"context"

	"shiftHub/internal/models"

	"github.com/zeromicro/go-zero/core/logc"
	"gorm.io/gorm"
)

type (
	DepartmentRepo struct {
		entryRepo
	}

	InterDepartmentRepo interface {
		List(tenantId string) ([]models.Department, error)
		Get(tenantId, id string) (models.Department, bool, error)
		Create(d models.Department) error
		Update(d models.Department) error
		Delete(tenantId, id string) error
		IsMember(tenantId, departmentId, userId string) (bool, error)
		AddMember(m models.DepartmentMember) error
		RemoveMember(tenantId, departmentId, userId string) error
		ListMembers(tenantId, departmentId string) ([]models.DepartmentMember, error)
	}
)

func newDepartmentInterface(db *gorm.DB, g InterGormDBCli) InterDepartmentRepo {
	return &DepartmentRepo{
		entryRepo{
			g:  g,
			db: db,
		},
	}
}

func (dr DepartmentRepo) List(tenantId string) ([]models.Department, error) {
	var data []models.Department

	db := dr.db.Model(&models.Department{})
	db.Where("tenant_id = ?", tenantId)
	err := db.Find(&data).Error
	if err != nil {
		return nil, err
	}

	return data, nil
}

func (dr DepartmentRepo) Get(tenantId, id string) (models.Department, bool, error) {
	var data models.Department

	err := dr.db.Model(&models.Department{}).
		Where("tenant_id = ? AND id = ?", tenantId, id).
		First(&data).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return data, false, nil
		}
		return data, false, err
	}

	return data, true, nil
}

func (dr DepartmentRepo) Create(d models.Department) error {
	err := dr.g.Create(&models.Department{}, d)
	if err != nil {
		logc.Error(context.Background(), err)
		return err
	}
	return nil
}

func (dr DepartmentRepo) Update(d models.Department) error {
	err := dr.g.Updates(Updates{
		Table: models.Department{},
		Where: map[string]interface{}{
			"tenant_id = ?": d.TenantId,
			"id = ?":        d.ID,
		},
		Updates: d,
	})
	if err != nil {
		logc.Error(context.Background(), err)
		return err
	}
	return nil
}

func (dr DepartmentRepo) Delete(tenantId, id string) error {
	// 先清花名册，再删部门
	err := dr.g.Delete(Delete{
		Table: &models.DepartmentMember{},
		Where: map[string]interface{}{
			"tenant_id = ?":     tenantId,
			"department_id = ?": id,
		},
	})
	if err != nil {
		return err
	}

	err = dr.g.Delete(Delete{
		Table: &models.Department{},
		Where: map[string]interface{}{
			"tenant_id = ?": tenantId,
			"id = ?":        id,
		},
	})
	if err != nil {
		logc.Error(context.Background(), err)
		return err
	}
	return nil
}

// IsMember 部门成员存在性检查，排班分配的前置条件
func (dr DepartmentRepo) IsMember(tenantId, departmentId, userId string) (bool, error) {
	var count int64
	err := dr.db.Model(&models.DepartmentMember{}).
		Where("tenant_id = ? AND department_id = ? AND user_id = ?", tenantId, departmentId, userId).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (dr DepartmentRepo) AddMember(m models.DepartmentMember) error {
	err := dr.g.Create(&models.DepartmentMember{}, m)
	if err != nil {
		logc.Error(context.Background(), err)
		return err
	}
	return nil
}

func (dr DepartmentRepo) RemoveMember(tenantId, departmentId, userId string) error {
	err := dr.g.Delete(Delete{
		Table: &models.DepartmentMember{},
		Where: map[string]interface{}{
			"tenant_id = ?":     tenantId,
			"department_id = ?": departmentId,
			"user_id = ?":       userId,
		},
	})
	if err != nil {
		logc.Error(context.Background(), err)
		return err
	}
	return nil
}

func (dr DepartmentRepo) ListMembers(tenantId, departmentId string) ([]models.DepartmentMember, error) {
	var data []models.DepartmentMember

	err := dr.db.Model(&models.DepartmentMember{}).
		Where("tenant_id = ? AND department_id = ?", tenantId, departmentId).
		Find(&data).Error
	if err != nil {
		return nil, err
	}

	return data, nil
}
