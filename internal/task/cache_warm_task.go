package task

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"shop_review_v1_202601/internal/service"
)

// ==================== CacheWarmTask 缓存预热任务 ====================

// CacheWarmTask 定时预热商铺类型缓存。
// 类型 ZSet 没有 TTL，但缓存被清空（如 Redis 重启）后首个请求要回源，
// 预热任务把这次回源挪到后台，顺带在启动时立即执行一次
type CacheWarmTask struct {
	typeService *service.ShopTypeService
	cron        *cron.Cron
	spec        string
}

// NewCacheWarmTask 创建缓存预热任务
func NewCacheWarmTask(typeService *service.ShopTypeService) *CacheWarmTask {
	return &CacheWarmTask{
		typeService: typeService,
		cron:        cron.New(),
		// 每 10 分钟预热一次
		spec: "*/10 * * * *",
	}
}

// Start 启动定时任务
func (t *CacheWarmTask) Start() error {
	// 启动时先预热一次
	t.warm()

	if _, err := t.cron.AddFunc(t.spec, t.warm); err != nil {
		return err
	}
	t.cron.Start()
	log.Printf("缓存预热任务已启动，调度：%s", t.spec)
	return nil
}

// Stop 停止定时任务，等待在途执行结束
func (t *CacheWarmTask) Stop() {
	<-t.cron.Stop().Done()
}

func (t *CacheWarmTask) warm() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := t.typeService.List(ctx); err != nil {
		// 空表属于正常情况（比如初次部署），只记日志
		log.Printf("商铺类型缓存预热失败: %v", err)
	}
}
