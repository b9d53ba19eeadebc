package mysql

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Xushengqwer/trade_site/dependencies"
	"github.com/Xushengqwer/trade_site/models/entities"
)

// newTestDB 为每个测试创建独立的内存 SQLite 数据库并完成迁移。
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := dependencies.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func nopLogger() *zap.Logger { return zap.NewNop() }

func seedProduct(t *testing.T, db *gorm.DB, name, slug string, categoryID *uint64, status entities.ProductStatus) *entities.Product {
	t.Helper()
	p := &entities.Product{
		Name:       name,
		Slug:       slug,
		CategoryID: categoryID,
		Status:     status,
		Images:     datatypes.JSONSlice[entities.ProductImage]{},
		SEO:        datatypes.NewJSONType(entities.ProductSEO{}),
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed product %s: %v", slug, err)
	}
	return p
}

func seedCategory(t *testing.T, db *gorm.DB, name, slug string, order int) *entities.Category {
	t.Helper()
	c := &entities.Category{Name: name, Slug: slug, DisplayOrder: order}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed category %s: %v", slug, err)
	}
	return c
}

func uint64Ptr(v uint64) *uint64 { return &v }
