// dependencies/mysql.go
package dependencies

import (
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	appConfig "github.com/Xushengqwer/trade_site/config"
	"github.com/Xushengqwer/trade_site/models/entities"
)

const (
	mysqlMaxRetries    = 5
	mysqlRetryInterval = 2 * time.Second
)

// InitMySQL 初始化托管 MySQL 连接：主库重试连接、可选只读副本、连接池与自动迁移。
func InitMySQL(cfg *appConfig.SiteConfig, logger *core.ZapLogger) (*gorm.DB, error) {
	mysqlCfg := cfg.MySQLConfig
	if mysqlCfg.Write.DSN == "" {
		return nil, fmt.Errorf("主数据库 DSN (mysqlConfig.write.dsn) 未配置")
	}

	db, err := openPrimary(mysqlCfg.Write.DSN, &gorm.Config{
		Logger: core.NewGormLogger(logger, cfg.GormLogConfig),
	}, logger)
	if err != nil {
		return nil, err
	}

	if err := registerReplicas(db, mysqlCfg, logger); err != nil {
		return nil, err
	}
	if err := configurePool(db, mysqlCfg, logger); err != nil {
		return nil, err
	}

	logger.Info("开始执行数据库自动迁移...")
	if err := AutoMigrate(db); err != nil {
		logger.Error("数据库自动迁移失败", zap.Error(err))
		return nil, err
	}
	logger.Info("MySQL 初始化完成（含读写分离与自动迁移）")
	return db, nil
}

// AutoMigrate 迁移站点的全部表，多对多关联表随实体一起创建。
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entities.Category{},
		&entities.Product{},
		&entities.BlogPost{},
		&entities.Message{},
		&entities.ContentOpportunity{},
		&entities.SEOTask{},
	); err != nil {
		return fmt.Errorf("数据库自动迁移失败: %w", err)
	}
	return nil
}

// openPrimary 连接主库，失败时按固定间隔重试（托管数据库冷启动较慢）。
func openPrimary(dsn string, gormConfig *gorm.Config, logger *core.ZapLogger) (*gorm.DB, error) {
	var lastErr error
	logger.Info("开始连接主数据库...")
	for i := 0; i < mysqlMaxRetries; i++ {
		db, err := gorm.Open(mysql.Open(dsn), gormConfig)
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				if pingErr := sqlDB.Ping(); pingErr == nil {
					logger.Info("成功连接到主数据库")
					return db, nil
				} else {
					err = pingErr
				}
			} else {
				err = dbErr
			}
		}
		lastErr = err
		logger.Warn("无法连接到主数据库，尝试重试", zap.Int("retry", i+1), zap.Int("maxRetries", mysqlMaxRetries), zap.Error(err))
		if i < mysqlMaxRetries-1 {
			time.Sleep(mysqlRetryInterval)
		}
	}
	logger.Error("无法连接到主数据库", zap.Error(lastErr))
	return nil, fmt.Errorf("无法连接到主数据库: %w", lastErr)
}

// registerReplicas 存在有效只读副本时启用 dbresolver，前台查询走副本。
func registerReplicas(db *gorm.DB, mysqlCfg appConfig.MySQLConfig, logger *core.ZapLogger) error {
	replicas := make([]gorm.Dialector, 0, len(mysqlCfg.Read))
	for i, replica := range mysqlCfg.Read {
		if replica.DSN == "" {
			logger.Warn("发现空的从库 DSN 配置，已跳过", zap.Int("index", i))
			continue
		}
		replicas = append(replicas, mysql.Open(replica.DSN))
	}
	if len(replicas) == 0 {
		logger.Info("未配置有效的只读副本，不启用读写分离")
		return nil
	}

	err := db.Use(dbresolver.Register(dbresolver.Config{
		Sources:  []gorm.Dialector{mysql.Open(mysqlCfg.Write.DSN)},
		Replicas: replicas,
		Policy:   dbresolver.StrictRoundRobinPolicy(),
	}))
	if err != nil {
		logger.Error("配置 GORM 读写分离插件失败", zap.Error(err))
		return fmt.Errorf("配置 GORM 读写分离失败: %w", err)
	}
	logger.Info("成功配置 GORM 读写分离插件", zap.Int("副本数量", len(replicas)))
	return nil
}

// configurePool 以共享设置为基础，主库的独立设置优先。
func configurePool(db *gorm.DB, mysqlCfg appConfig.MySQLConfig, logger *core.ZapLogger) error {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("无法获取数据库对象以配置连接池", zap.Error(err))
		return fmt.Errorf("无法获取数据库对象: %w", err)
	}

	maxIdle := mysqlCfg.SharedMaxIdleConns
	maxOpen := mysqlCfg.SharedMaxOpenConns
	maxLife := mysqlCfg.SharedConnMaxLifetime
	if v := mysqlCfg.Write.MaxIdleConns; v != nil {
		maxIdle = *v
	}
	if v := mysqlCfg.Write.MaxOpenConns; v != nil {
		maxOpen = *v
	}
	if v := mysqlCfg.Write.ConnMaxLifetime; v != nil {
		maxLife = *v
	}

	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetConnMaxLifetime(time.Duration(maxLife) * time.Second)
	logger.Info("配置数据库连接池",
		zap.Int("最大空闲连接数", maxIdle),
		zap.Int("最大打开连接数", maxOpen),
		zap.Int("连接最大生命周期(秒)", maxLife),
	)

	if err := sqlDB.Ping(); err != nil {
		logger.Error("配置连接池后 Ping 数据库失败", zap.Error(err))
		return fmt.Errorf("配置连接池后 Ping 失败: %w", err)
	}
	return nil
}
