package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"shop_review_v1_202601/internal/cache"
	"shop_review_v1_202601/internal/controller"
	"shop_review_v1_202601/internal/model"
	"shop_review_v1_202601/internal/repository"
	"shop_review_v1_202601/internal/router"
	"shop_review_v1_202601/internal/service"
	"shop_review_v1_202601/internal/session"
	"shop_review_v1_202601/internal/task"
	"shop_review_v1_202601/pkg/database"
)

// @title shop-review API
// @version 1.0
// @description 本地生活点评后端接口文档
// @BasePath /

func main() {
	// 1. 初始化数据库
	db := initDatabase()

	// 2. 初始化缓存
	cacheStore := initCache()

	// 3. 初始化依赖
	deps := initDependencies(db, cacheStore)

	// 4. 启动定时任务
	taskManager := initTasks(deps)
	defer taskManager.StopAll()

	// 5. 初始化路由
	r := gin.Default()
	router.InitRoutes(r, deps.Sessions, deps.Controllers)

	// 6. 启动服务
	startServer(r)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Cache       cache.Store
	Sessions    *session.Store
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
}

// Repositories 仓库集合
type Repositories struct {
	User     repository.UserRepository
	Shop     repository.ShopRepository
	ShopType repository.ShopTypeRepository
}

// Services 服务集合
type Services struct {
	User     *service.UserService
	Shop     *service.ShopService
	ShopType *service.ShopTypeService
	Sms      *service.SmsService
}

// ==================== 初始化函数 ====================

// initDatabase 初始化数据库
func initDatabase() *gorm.DB {
	return database.InitDB(
		getEnv("DATABASE_DSN", ""),
		&model.User{}, &model.Shop{}, &model.ShopType{},
	)
}

// initCache 初始化缓存网关
// 未配置 Redis 地址时退化为进程内缓存（仅限本地开发）
func initCache() cache.Store {
	addr := getEnv("REDIS_ADDR", "")
	if addr == "" {
		log.Println("未配置 REDIS_ADDR，使用进程内缓存")
		return cache.NewMemory()
	}

	store, err := cache.NewRedis(addr, getEnv("REDIS_PASSWORD", ""))
	if err != nil {
		log.Fatalf("Redis 连接失败: %v", err)
	}
	log.Printf("Redis 连接成功 %s", addr)
	return store
}

// initDependencies 初始化所有依赖
func initDependencies(db *gorm.DB, cacheStore cache.Store) *Dependencies {
	// -------- Repo 层 --------
	repos := &Repositories{
		User:     repository.NewUserRepository(db),
		Shop:     repository.NewShopRepository(db),
		ShopType: repository.NewShopTypeRepository(db),
	}

	// -------- 会话 --------
	sessions := session.NewStore(cacheStore)

	// -------- Service 层 --------
	smsSvc := service.NewSmsService(&service.SmsConfig{
		WebhookURL: getEnv("SMS_WEBHOOK_URL", ""),
	})
	services := &Services{
		Sms:      smsSvc,
		User:     service.NewUserService(repos.User, cacheStore, sessions, smsSvc),
		Shop:     service.NewShopService(repos.Shop, cacheStore),
		ShopType: service.NewShopTypeService(repos.ShopType, cacheStore),
	}

	// -------- Controller 层 --------
	controllers := &router.Controllers{
		User:     controller.NewUserController(services.User),
		Shop:     controller.NewShopController(services.Shop),
		ShopType: controller.NewShopTypeController(services.ShopType),
		Upload:   controller.NewUploadController(getEnv("UPLOAD_DIR", "./static/uploads")),
	}

	return &Dependencies{
		DB:          db,
		Cache:       cacheStore,
		Sessions:    sessions,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
	}
}

// initTasks 启动定时任务
func initTasks(deps *Dependencies) *task.TaskManager {
	warmTask := task.NewCacheWarmTask(deps.Services.ShopType)
	manager := task.NewTaskManager(warmTask)
	manager.StartAll()
	log.Println("定时任务已启动")
	return manager
}

// ==================== 服务启动 ====================

// startServer 启动服务
func startServer(r *gin.Engine) {
	port := getEnv("SERVER_PORT", "8081")

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// 异步启动服务
	go func() {
		log.Printf("服务启动在 :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务...")

	// 优雅关闭
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务强制关闭: %v", err)
	}

	log.Println("服务已退出")
}

// ==================== 工具函数 ====================

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
