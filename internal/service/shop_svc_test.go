package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"shop_review_v1_202601/internal/cache"
	"shop_review_v1_202601/internal/model"
	"shop_review_v1_202601/internal/repository"
)

// ==================== 测试辅助 ====================

// countingShopRepo 包装真实仓库，统计数据库查询次数
type countingShopRepo struct {
	repository.ShopRepository
	mu      sync.Mutex
	queries int
}

func (r *countingShopRepo) GetByID(ctx context.Context, id int64) (*model.Shop, error) {
	r.mu.Lock()
	r.queries++
	r.mu.Unlock()
	return r.ShopRepository.GetByID(ctx, id)
}

func (r *countingShopRepo) queryCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.queries
}

func setupShopTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	db.AutoMigrate(&model.Shop{})
	return db
}

// ==================== 单元测试 ====================

func TestShopService_GetByID_CacheAside(t *testing.T) {
	db := setupShopTestDB(t)
	db.Create(&model.Shop{
		Name:      "海底捞",
		TypeID:    1,
		Area:      "陆家嘴",
		Address:   "世纪大道 100 号",
		AvgPrice:  12000,
		OpenHours: "10:00-22:00",
	})

	repo := &countingShopRepo{ShopRepository: repository.NewShopRepository(db)}
	mem := cache.NewMemory()
	svc := NewShopService(repo, mem)
	ctx := context.Background()

	// 冷缓存：回源数据库并回填
	first, err := svc.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("首次查询失败: %v", err)
	}
	if repo.queryCount() != 1 {
		t.Fatalf("首次查询应回源一次，实际 %d", repo.queryCount())
	}

	cached, _ := mem.Get(ctx, cache.CacheShopKey+"1")
	if cached == "" {
		t.Fatal("首次查询后缓存应被回填")
	}

	// 热缓存：不再查库，内容逐字节一致
	second, err := svc.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("二次查询失败: %v", err)
	}
	if repo.queryCount() != 1 {
		t.Fatalf("二次查询不应回源，实际查询 %d 次", repo.queryCount())
	}
	if first.Name != second.Name || first.AvgPrice != second.AvgPrice {
		t.Fatalf("两次结果不一致: %+v vs %+v", first, second)
	}

	cachedAgain, _ := mem.Get(ctx, cache.CacheShopKey+"1")
	if cachedAgain != cached {
		t.Fatal("缓存内容应保持逐字节一致")
	}
}

func TestShopService_GetByID_NotFound(t *testing.T) {
	db := setupShopTestDB(t)
	repo := &countingShopRepo{ShopRepository: repository.NewShopRepository(db)}
	svc := NewShopService(repo, cache.NewMemory())

	if _, err := svc.GetByID(context.Background(), 999); !errors.Is(err, ErrShopNotFound) {
		t.Fatalf("不存在的商铺应返回 ErrShopNotFound，实际 %v", err)
	}
}

func TestShopService_GetByID_ConcurrentColdCache(t *testing.T) {
	db := setupShopTestDB(t)
	db.Create(&model.Shop{Name: "老盛昌", TypeID: 1})

	repo := &countingShopRepo{ShopRepository: repository.NewShopRepository(db)}
	mem := cache.NewMemory()
	svc := NewShopService(repo, mem)
	ctx := context.Background()

	// 冷缓存下并发读：允许重复回源，但结果必须收敛到同一个缓存值
	var wg sync.WaitGroup
	results := make([]*model.Shop, 8)
	errs := make([]error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.GetByID(ctx, 1)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 8; i++ {
		if errs[i] != nil {
			t.Fatalf("并发查询 %d 失败: %v", i, errs[i])
		}
		if results[i].Name != "老盛昌" {
			t.Fatalf("并发查询 %d 结果不符: %+v", i, results[i])
		}
	}

	cached, _ := mem.Get(ctx, cache.CacheShopKey+"1")
	var fromCache model.Shop
	if err := json.Unmarshal([]byte(cached), &fromCache); err != nil || fromCache.Name != "老盛昌" {
		t.Fatalf("缓存值损坏: %q err=%v", cached, err)
	}
}
