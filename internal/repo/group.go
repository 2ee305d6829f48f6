package repo

import (
	"context"

	"shiftHub/internal/models"

	"github.com/zeromicro/go-zero/core/logc"
	"gorm.io/gorm"
)

type (
	GroupRepo struct {
		entryRepo
	}

	InterGroupRepo interface {
		List(tenantId string) ([]models.RoutingGroup, error)
		Get(tenantId, id string) (models.RoutingGroup, bool, error)
		Create(g models.RoutingGroup) error
		Update(g models.RoutingGroup) error
		Delete(tenantId, id string) error
	}
)

func newGroupInterface(db *gorm.DB, g InterGormDBCli) InterGroupRepo {
	return &GroupRepo{
		entryRepo{
			g:  g,
			db: db,
		},
	}
}

func (gr GroupRepo) List(tenantId string) ([]models.RoutingGroup, error) {
	var data []models.RoutingGroup

	db := gr.db.Model(&models.RoutingGroup{})
	db.Where("tenant_id = ?", tenantId)
	err := db.Find(&data).Error
	if err != nil {
		return nil, err
	}

	return data, nil
}

func (gr GroupRepo) Get(tenantId, id string) (models.RoutingGroup, bool, error) {
	var data models.RoutingGroup

	err := gr.db.Model(&models.RoutingGroup{}).
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

func (gr GroupRepo) Create(g models.RoutingGroup) error {
	err := gr.g.Create(&models.RoutingGroup{}, g)
	if err != nil {
		logc.Error(context.Background(), err)
		return err
	}
	return nil
}

func (gr GroupRepo) Update(g models.RoutingGroup) error {
	err := gr.g.Updates(Updates{
		Table: models.RoutingGroup{},
		Where: map[string]interface{}{
			"tenant_id = ?": g.TenantId,
			"id = ?":        g.ID,
		},
		Updates: g,
	})
	if err != nil {
		logc.Error(context.Background(), err)
		return err
	}
	return nil
}

func (gr GroupRepo) Delete(tenantId, id string) error {
	err := gr.g.Delete(Delete{
		Table: &models.RoutingGroup{},
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
