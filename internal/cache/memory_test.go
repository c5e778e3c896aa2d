package cache

import (
	"context"
	"testing"
	"time"
)

// ==================== String ====================

func TestMemoryStore_SetGet(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	if err := store.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("Set 失败: %v", err)
	}

	val, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get 失败: %v", err)
	}
	if val != "v" {
		t.Fatalf("期望 v，实际 %q", val)
	}

	// 不存在的 key 返回空串，不报错
	val, err = store.Get(ctx, "missing")
	if err != nil || val != "" {
		t.Fatalf("不存在的 key 应返回空串，实际 %q, err=%v", val, err)
	}
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	store.SetWithTTL(ctx, "k", "v", 20*time.Millisecond)

	if val, _ := store.Get(ctx, "k"); val != "v" {
		t.Fatalf("过期前应能读到，实际 %q", val)
	}

	time.Sleep(30 * time.Millisecond)
	if val, _ := store.Get(ctx, "k"); val != "" {
		t.Fatalf("过期后应读不到，实际 %q", val)
	}
}

func TestMemoryStore_Expire(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	store.Set(ctx, "k", "v")

	// 无 TTL 的 key 返回 -1
	ttl, _ := store.TTL(ctx, "k")
	if ttl >= 0 {
		t.Fatalf("未设置 TTL 的 key 应返回负值，实际 %v", ttl)
	}

	store.Expire(ctx, "k", time.Minute)
	ttl, _ = store.TTL(ctx, "k")
	if ttl <= 50*time.Second || ttl > time.Minute {
		t.Fatalf("TTL 应接近 1 分钟，实际 %v", ttl)
	}
}

// ==================== Hash ====================

func TestMemoryStore_Hash(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	store.HSetAll(ctx, "h", map[string]string{"a": "1", "b": "2"})

	fields, err := store.HGetAll(ctx, "h")
	if err != nil {
		t.Fatalf("HGetAll 失败: %v", err)
	}
	if len(fields) != 2 || fields["a"] != "1" || fields["b"] != "2" {
		t.Fatalf("Hash 内容不符: %v", fields)
	}

	// 不存在的 key 返回空 map
	fields, err = store.HGetAll(ctx, "missing")
	if err != nil || len(fields) != 0 {
		t.Fatalf("不存在的 Hash 应返回空 map，实际 %v, err=%v", fields, err)
	}
}

// ==================== ZSet ====================

func TestMemoryStore_ZRangeOrder(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	// 乱序写入，按 score 升序读出
	store.ZAdd(ctx, "z", "c", 3)
	store.ZAdd(ctx, "z", "a", 1)
	store.ZAdd(ctx, "z", "b", 2)

	members, err := store.ZRange(ctx, "z", 0, -1)
	if err != nil {
		t.Fatalf("ZRange 失败: %v", err)
	}
	want := []string{"a", "b", "c"}
	if len(members) != len(want) {
		t.Fatalf("期望 %v，实际 %v", want, members)
	}
	for i := range want {
		if members[i] != want[i] {
			t.Fatalf("期望 %v，实际 %v", want, members)
		}
	}
}

func TestMemoryStore_ZRangePartial(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	store.ZAdd(ctx, "z", "a", 1)
	store.ZAdd(ctx, "z", "b", 2)
	store.ZAdd(ctx, "z", "c", 3)

	members, _ := store.ZRange(ctx, "z", 1, 2)
	if len(members) != 2 || members[0] != "b" || members[1] != "c" {
		t.Fatalf("区间 [1,2] 期望 [b c]，实际 %v", members)
	}

	// 超出末尾的 stop 按末尾截断
	members, _ = store.ZRange(ctx, "z", 0, 99)
	if len(members) != 3 {
		t.Fatalf("stop 越界应截断到末尾，实际 %v", members)
	}
}

// ==================== Set / List ====================

func TestMemoryStore_Set_List(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	store.SAdd(ctx, "s", "x", "y")
	ok, _ := store.SIsMember(ctx, "s", "x")
	if !ok {
		t.Fatal("x 应在集合内")
	}
	store.SRem(ctx, "s", "x")
	ok, _ = store.SIsMember(ctx, "s", "x")
	if ok {
		t.Fatal("x 删除后不应在集合内")
	}

	store.RPush(ctx, "l", "1", "2")
	store.LPush(ctx, "l", "0")
	list, _ := store.LRange(ctx, "l", 0, -1)
	if len(list) != 3 || list[0] != "0" || list[2] != "2" {
		t.Fatalf("列表顺序不符: %v", list)
	}
}
