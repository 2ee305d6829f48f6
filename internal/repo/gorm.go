package repo

import (
	"fmt"
	"reflect"

	"gorm.io/gorm"
)

// GormDBCli 仓库层统一的写入口
// 分配、成员、汇报关系等全部写操作都经由它落库，
// 每次写入包在独立事务里，失败即回滚，不存在半写状态
type GormDBCli struct {
	db *gorm.DB
}

type InterGormDBCli interface {
	Create(table, value interface{}) error
	Update(value Update) error
	Updates(value Updates) error
	Delete(value Delete) error
}

// Update 单字段更新参数，Update[0] 为列名，其余为值
type Update struct {
	Table  interface{}
	Where  map[string]interface{}
	Update []string
}

// Updates 多字段更新参数，Updates 为列到值的映射或模型结构
type Updates struct {
	Table   interface{}
	Where   map[string]interface{}
	Updates interface{}
}

// Delete 删除参数，Where 为空时拒绝执行由上层保证
type Delete struct {
	Table interface{}
	Where map[string]interface{}
}

func NewInterGormDBCli(db *gorm.DB) InterGormDBCli {
	return &GormDBCli{
		db: db,
	}
}

// Create 插入一条记录
// 仓库层传的是值类型，GORM 的 Create 需要指针才能回填默认值，
// 在这里统一转指针，调用方不用关心
func (g GormDBCli) Create(table, value interface{}) error {
	return g.executeTransaction(func(tx *gorm.DB) error {
		valueType := reflect.TypeOf(value)
		if valueType == nil {
			return fmt.Errorf("插入数据不能为空")
		}

		var createTarget interface{}
		if valueType.Kind() == reflect.Ptr {
			createTarget = value
		} else {
			valuePtr := reflect.New(valueType)
			valuePtr.Elem().Set(reflect.ValueOf(value))
			createTarget = valuePtr.Interface()
		}

		return tx.Model(table).Create(createTarget).Error
	}, "数据写入失败")
}

// Update 按条件更新单个字段
func (g GormDBCli) Update(value Update) error {
	return g.executeTransaction(func(tx *gorm.DB) error {
		tx = tx.Model(value.Table)
		for column, val := range value.Where {
			tx = tx.Where(column, val)
		}
		return tx.Update(value.Update[0], value.Update[1:]).Error
	}, "数据更新失败")
}

// Updates 按条件更新多个字段，排班整列替换走这里
func (g GormDBCli) Updates(value Updates) error {
	return g.executeTransaction(func(tx *gorm.DB) error {
		tx = tx.Model(value.Table)
		for column, val := range value.Where {
			tx = tx.Where(column, val)
		}
		return tx.Updates(value.Updates).Error
	}, "数据更新失败")
}

// Delete 按条件删除记录
// Table 传值类型时构造一个零值指针作为删除目标，避免误删整表
func (g GormDBCli) Delete(value Delete) error {
	return g.executeTransaction(func(tx *gorm.DB) error {
		tx = tx.Model(value.Table)
		for column, val := range value.Where {
			tx = tx.Where(column, val)
		}

		tableType := reflect.TypeOf(value.Table)
		if tableType == nil {
			return fmt.Errorf("删除目标表类型为空")
		}

		var deleteTarget interface{}
		if tableType.Kind() == reflect.Ptr {
			deleteTarget = value.Table
		} else {
			deleteTarget = reflect.New(tableType).Interface()
		}

		return tx.Delete(deleteTarget).Error
	}, "数据删除失败")
}

// executeTransaction 把单次写操作包进事务，失败回滚并带上场景描述
func (g GormDBCli) executeTransaction(operation func(tx *gorm.DB) error, errorMessage string) error {
	tx := g.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("事务启动失败, err: %s", tx.Error)
	}

	if err := operation(tx); err != nil {
		tx.Rollback()
		return fmt.Errorf("%s -> %s", errorMessage, err)
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("事务提交失败, err: %s", err)
	}

	return nil
}
