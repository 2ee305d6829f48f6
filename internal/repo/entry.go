package repo

import (
	"fmt"
	"time"

	"shiftHub/internal/global"
	"shiftHub/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type entryRepo struct {
	g  InterGormDBCli
	db *gorm.DB
}

func (e entryRepo) DB() *gorm.DB { return e.db }

func (e entryRepo) User() InterUserRepo             { return newUserInterface(e.db, e.g) }
func (e entryRepo) Tenant() InterTenantRepo         { return newTenantInterface(e.db, e.g) }
func (e entryRepo) Department() InterDepartmentRepo { return newDepartmentInterface(e.db, e.g) }
func (e entryRepo) Group() InterGroupRepo           { return newGroupInterface(e.db, e.g) }
func (e entryRepo) Assignment() InterAssignmentRepo { return newAssignmentInterface(e.db, e.g) }
func (e entryRepo) AuditLog() InterAuditLogRepo     { return newAuditLogInterface(e.db, e.g) }

// Repo 数据仓库入口，服务层通过 ctx.DB.Xxx() 访问各仓库
type Repo struct {
	entryRepo
}

// NewRepoEntry 连接 MySQL 并初始化仓库入口
func NewRepoEntry() *Repo {
	db, err := openMySQL()
	if err != nil {
		panic(fmt.Sprintf("数据库连接失败: %s", err.Error()))
	}

	return NewRepoEntryWithDB(db)
}

// NewRepoEntryWithDB 基于已有连接构建仓库入口
func NewRepoEntryWithDB(db *gorm.DB) *Repo {
	return &Repo{
		entryRepo{
			g:  NewInterGormDBCli(db),
			db: db,
		},
	}
}

func openMySQL() (*gorm.DB, error) {
	c := global.Config.MySQL
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.User, c.Pass, c.Host, c.Port, c.DBName)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// 唯一索引由迁移建出，四元组的并发重复写入由索引兜底
	err = db.AutoMigrate(
		&models.Tenant{},
		&models.Member{},
		&models.Department{},
		&models.DepartmentMember{},
		&models.RoutingGroup{},
		&models.Assignment{},
		&models.AuditLog{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
