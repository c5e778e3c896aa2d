package repository

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"shop_review_v1_202601/internal/model"
)

func setupTypeRepoTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	db.AutoMigrate(&model.ShopType{})
	return db
}

func TestShopTypeRepository_ListOrderedBySort(t *testing.T) {
	db := setupTypeRepoTestDB(t)
	db.Create(&model.ShopType{Name: "KTV", Sort: 5})
	db.Create(&model.ShopType{Name: "美食", Sort: 1})
	db.Create(&model.ShopType{Name: "丽人·美发", Sort: 3})

	repo := NewShopTypeRepository(db)
	types, err := repo.ListOrderedBySort(context.Background())
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}

	want := []string{"美食", "丽人·美发", "KTV"}
	if len(types) != len(want) {
		t.Fatalf("期望 %d 条，实际 %d 条", len(want), len(types))
	}
	for i, name := range want {
		if types[i].Name != name {
			t.Fatalf("第 %d 位期望 %q，实际 %q", i, name, types[i].Name)
		}
	}
}

func TestUserRepository_GetByPhoneAbsent(t *testing.T) {
	db := setupTypeRepoTestDB(t)
	db.AutoMigrate(&model.User{})

	repo := NewUserRepository(db)
	user, err := repo.GetByPhone(context.Background(), "13800000000")
	if err != nil {
		t.Fatalf("不存在的手机号不应报错: %v", err)
	}
	if user != nil {
		t.Fatalf("不存在的手机号应返回 nil，实际 %+v", user)
	}
}
