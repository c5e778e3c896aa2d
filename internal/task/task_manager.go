package task

import "log"

// ==================== TaskManager 定时任务管理器 ====================

// TaskManager 统一管理后台定时任务的启停
type TaskManager struct {
	cacheWarmTask *CacheWarmTask
}

// NewTaskManager 创建任务管理器
func NewTaskManager(cacheWarmTask *CacheWarmTask) *TaskManager {
	return &TaskManager{cacheWarmTask: cacheWarmTask}
}

// StartAll 启动全部任务
func (m *TaskManager) StartAll() {
	if err := m.cacheWarmTask.Start(); err != nil {
		log.Printf("缓存预热任务启动失败: %v", err)
	}
}

// StopAll 停止全部任务
func (m *TaskManager) StopAll() {
	m.cacheWarmTask.Stop()
	log.Println("定时任务已全部停止")
}
