package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/trade_site/constant"
)

func TestRefreshPopularSnapshotsTopN(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := NewPopularCache(client, zap.NewNop())
	ctx := context.Background()

	rank := RankKey(constant.ViewKindProduct)
	mr.ZAdd(rank, 10, "1")
	mr.ZAdd(rank, 50, "2")
	mr.ZAdd(rank, 30, "3")
	mr.ZAdd(constant.PopularProductsKey, 99, "stale")

	n, err := cache.RefreshPopular(ctx, 2)
	if err != nil || n != 2 {
		t.Fatalf("RefreshPopular = %d, %v", n, err)
	}
	ids, err := cache.GetPopularIDs(ctx, 10)
	if err != nil {
		t.Fatalf("GetPopularIDs: %v", err)
	}
	if len(ids) != 2 || ids[0] != 2 || ids[1] != 3 {
		t.Errorf("popular ids = %v, want [2 3]", ids)
	}

	// 排行继续变化，快照保持不变直到下次刷新
	mr.ZAdd(rank, 110, "1")
	ids, _ = cache.GetPopularIDs(ctx, 10)
	if ids[0] != 2 {
		t.Errorf("snapshot changed before refresh: %v", ids)
	}
}

func TestRefreshPopularEmptyRank(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := NewPopularCache(client, zap.NewNop())
	mr.ZAdd(constant.PopularProductsKey, 1, "9")

	n, err := cache.RefreshPopular(context.Background(), 5)
	if err != nil || n != 0 {
		t.Fatalf("RefreshPopular = %d, %v", n, err)
	}
	ids, _ := cache.GetPopularIDs(context.Background(), 5)
	if len(ids) != 0 {
		t.Errorf("empty rank should clear snapshot, got %v", ids)
	}
}

func TestSeedRankKeepsLiveScores(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := NewPopularCache(client, zap.NewNop())
	ctx := context.Background()

	rank := RankKey(constant.ViewKindProduct)
	mr.ZAdd(rank, 40, "1")
	if err := cache.SeedRank(ctx, constant.ViewKindProduct, map[uint64]int64{1: 5, 2: 8}); err != nil {
		t.Fatalf("SeedRank: %v", err)
	}
	if s, _ := mr.ZScore(rank, "1"); s != 40 {
		t.Errorf("existing score overwritten: %v", s)
	}
	if s, _ := mr.ZScore(rank, "2"); s != 8 {
		t.Errorf("seeded score = %v, want 8", s)
	}
	size, _ := cache.RankSize(ctx, constant.ViewKindProduct)
	if size != 2 {
		t.Errorf("rank size = %d", size)
	}

	if err := cache.RemoveFromRank(ctx, constant.ViewKindProduct, 2); err != nil {
		t.Fatalf("RemoveFromRank: %v", err)
	}
	if err := client.ZScore(ctx, rank, "2").Err(); !errors.Is(err, redis.Nil) {
		t.Errorf("member still ranked after removal: err = %v", err)
	}
	if members, _ := mr.ZMembers(rank); len(members) != 1 || members[0] != "1" {
		t.Errorf("rank members = %v, want [1]", members)
	}
}
