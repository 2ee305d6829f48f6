package repo

import (
	"context"

	"shiftHub/internal/models"

	"github.com/zeromicro/go-zero/core/logc"
	"gorm.io/gorm"
)

type (
	UserRepo struct {
		entryRepo
	}

	InterUserRepo interface {
		List(tenantId, query string) ([]models.Member, error)
		Get(userId, userName string) (models.Member, bool, error)
		Create(m models.Member) error
		Update(m models.Member) error
		Delete(userId string) error
		UpdateManager(userId string, ref models.ManagerRef) error
		ManagerEdges(tenantId string) (map[string]string, error)
	}
)

func newUserInterface(db *gorm.DB, g InterGormDBCli) InterUserRepo {
	return &UserRepo{
		entryRepo{
			g:  g,
			db: db,
		},
	}
}

// List 查询用户列表，tenantId 为空时返回全部
func (ur UserRepo) List(tenantId, query string) ([]models.Member, error) {
	var data []models.Member

	db := ur.db.Model(&models.Member{})
	if query != "" {
		db.Where("user_name LIKE ? OR real_name LIKE ? OR email LIKE ?",
			"%"+query+"%", "%"+query+"%", "%"+query+"%")
	}

	err := db.Find(&data).Error
	if err != nil {
		return nil, err
	}

	if tenantId == "" {
		return data, nil
	}

	var scoped []models.Member
	for _, m := range data {
		for _, tid := range m.Tenants {
			if tid == tenantId {
				scoped = append(scoped, m)
				break
			}
		}
	}
	return scoped, nil
}

func (ur UserRepo) Get(userId, userName string) (models.Member, bool, error) {
	var data models.Member

	db := ur.db.Model(&models.Member{})
	if userId != "" {
		db.Where("user_id = ?", userId)
	}
	if userName != "" {
		db.Where("user_name = ?", userName)
	}

	err := db.First(&data).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return data, false, nil
		}
		return data, false, err
	}

	return data, true, nil
}

func (ur UserRepo) Create(m models.Member) error {
	err := ur.g.Create(&models.Member{}, m)
	if err != nil {
		logc.Error(context.Background(), err)
		return err
	}
	return nil
}

func (ur UserRepo) Update(m models.Member) error {
	err := ur.g.Updates(Updates{
		Table: models.Member{},
		Where: map[string]interface{}{
			"user_id = ?": m.UserId,
		},
		Updates: m,
	})
	if err != nil {
		logc.Error(context.Background(), err)
		return err
	}
	return nil
}

func (ur UserRepo) Delete(userId string) error {
	err := ur.g.Delete(Delete{
		Table: &models.Member{},
		Where: map[string]interface{}{
			"user_id = ?": userId,
		},
	})
	if err != nil {
		logc.Error(context.Background(), err)
		return err
	}
	return nil
}

// UpdateManager 更新汇报对象，写入前环路校验由服务层完成
func (ur UserRepo) UpdateManager(userId string, ref models.ManagerRef) error {
	user, exist, err := ur.Get(userId, "")
	if err != nil {
		return err
	}
	if !exist {
		return gorm.ErrRecordNotFound
	}

	user.Manager = ref
	return ur.Update(user)
}

// ManagerEdges 租户内 userId -> managerUserId 的汇报边，供环路检测遍历
func (ur UserRepo) ManagerEdges(tenantId string) (map[string]string, error) {
	members, err := ur.List(tenantId, "")
	if err != nil {
		return nil, err
	}

	edges := make(map[string]string, len(members))
	for _, m := range members {
		if m.Manager.Type == models.ManagerRefUser && m.Manager.UserId != "" {
			edges[m.UserId] = m.Manager.UserId
		}
	}
	return edges, nil
}
