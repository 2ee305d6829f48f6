package repo

import (
	"context"

	"shiftHub/internal/models"

	"github.com/zeromicro/go-zero/core/logc"
	"gorm.io/gorm"
)

type (
	AssignmentRepo struct {
		entryRepo
	}

	InterAssignmentRepo interface {
		List(tenantId, userId string) ([]models.Assignment, error)
		ListByUser(tenantId, userId string) ([]models.Assignment, error)
		Get(tenantId, userId, groupId, departmentId string) (models.Assignment, bool, error)
		Create(a models.Assignment) error
		Delete(tenantId, userId, groupId, departmentId string) error
		UpdateScheduleByUser(tenantId, userId string, ws models.WeekSchedule, updateBy string, updateAt int64) error
	}
)

func newAssignmentInterface(db *gorm.DB, g InterGormDBCli) InterAssignmentRepo {
	return &AssignmentRepo{
		entryRepo{
			g:  g,
			db: db,
		},
	}
}

// List 查询租户内分配记录，userId 为空时不过滤用户
func (ar AssignmentRepo) List(tenantId, userId string) ([]models.Assignment, error) {
	var data []models.Assignment

	db := ar.db.Model(&models.Assignment{})
	db.Where("tenant_id = ?", tenantId)
	if userId != "" {
		db.Where("user_id = ?", userId)
	}

	err := db.Find(&data).Error
	if err != nil {
		return nil, err
	}

	// 历史数据的空排班列按全禁用读回
	for i := range data {
		if len(data[i].Schedule) == 0 {
			data[i].Schedule = models.DefaultWeekSchedule()
		}
	}

	return data, nil
}

func (ar AssignmentRepo) ListByUser(tenantId, userId string) ([]models.Assignment, error) {
	return ar.List(tenantId, userId)
}

func (ar AssignmentRepo) Get(tenantId, userId, groupId, departmentId string) (models.Assignment, bool, error) {
	var data models.Assignment

	err := ar.db.Model(&models.Assignment{}).
		Where("tenant_id = ? AND user_id = ? AND group_id = ? AND department_id = ?",
			tenantId, userId, groupId, departmentId).
		First(&data).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return data, false, nil
		}
		return data, false, err
	}

	if len(data.Schedule) == 0 {
		data.Schedule = models.DefaultWeekSchedule()
	}

	return data, true, nil
}

func (ar AssignmentRepo) Create(a models.Assignment) error {
	err := ar.g.Create(&models.Assignment{}, a)
	if err != nil {
		logc.Error(context.Background(), err)
		return err
	}
	return nil
}

func (ar AssignmentRepo) Delete(tenantId, userId, groupId, departmentId string) error {
	err := ar.g.Delete(Delete{
		Table: &models.Assignment{},
		Where: map[string]interface{}{
			"tenant_id = ?":     tenantId,
			"user_id = ?":       userId,
			"group_id = ?":      groupId,
			"department_id = ?": departmentId,
		},
	})
	if err != nil {
		logc.Error(context.Background(), err)
		return err
	}
	return nil
}

// UpdateScheduleByUser 批量更新用户在租户内全部分配行的排班，单事务边界
func (ar AssignmentRepo) UpdateScheduleByUser(tenantId, userId string, ws models.WeekSchedule, updateBy string, updateAt int64) error {
	err := ar.g.Updates(Updates{
		Table: models.Assignment{},
		Where: map[string]interface{}{
			"tenant_id = ?": tenantId,
			"user_id = ?":   userId,
		},
		Updates: map[string]interface{}{
			"schedule":  ws,
			"update_by": updateBy,
			"update_at": updateAt,
		},
	})
	if err != nil {
		logc.Error(context.Background(), err)
		return err
	}
	return nil
}
