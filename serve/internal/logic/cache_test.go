package logic

import (
	"context"
	"testing"
	"time"

	"github.com/HuXin0817/checkers/pkg/models/checkers"
	"github.com/HuXin0817/checkers/pkg/models/message"
	"github.com/HuXin0817/checkers/serve/internal/config"
	"github.com/HuXin0817/checkers/serve/internal/svc"
	"github.com/HuXin0817/checkers/serve/internal/types"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

func newRedisServiceContext(t *testing.T, recentLength int) (*svc.ServiceContext, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	var c config.Config
	c.Redis = redis.RedisConf{Host: mr.Addr(), Type: redis.NodeType}
	c.Search.Depth = 2
	c.Search.MaxDepth = 4
	c.Cache.Expire = 60
	c.Cache.RecentLength = recentLength
	c.Cache.PushInterval = time.Hour

	svcCtx := svc.NewServiceContext(c)
	t.Cleanup(svcCtx.Stop)
	require.NotNil(t, svcCtx.RedisClient)
	return svcCtx, mr
}

func TestAssessHitsRedisCache(t *testing.T) {
	svcCtx, mr := newRedisServiceContext(t, 10)
	l := NewAssessLogic(context.Background(), svcCtx)
	req := &types.AssessRequest{
		Board: checkers.NewStartBoard().Cells(),
		Turn:  "Player1",
		Depth: 2,
	}

	first, err := l.Assess(req)
	require.NoError(t, err)
	assert.False(t, first.Cached)

	require.NoError(t, svcCtx.AssessPusher.PushAll())

	key := message.NewAssessMessageKey(checkers.NewStartBoard(), checkers.Player1, 2).String()
	require.True(t, mr.Exists(key))
	assert.Equal(t, 60*time.Second, mr.TTL(key))
	assert.Equal(t, 60*time.Second, mr.TTL(svc.RecentListKey))

	second, err := l.Assess(req)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Move, second.Move)
	assert.Equal(t, first.Score, second.Score)
	assert.Equal(t, first.Nodes, second.Nodes)

	recent, err := l.Recent()
	require.NoError(t, err)
	require.Len(t, recent.Records, 1)
	assert.Equal(t, first.Move, recent.Records[0].Move)
	assert.Equal(t, checkers.Player1, recent.Records[0].Turn)
}

func TestRedisRecentListIsTrimmed(t *testing.T) {
	svcCtx, mr := newRedisServiceContext(t, 3)
	l := NewAssessLogic(context.Background(), svcCtx)

	for depth := range 4 {
		_, err := l.Assess(&types.AssessRequest{
			Board: checkers.NewStartBoard().Cells(),
			Turn:  "Player2",
			Depth: depth + 1,
		})
		require.NoError(t, err)
	}
	require.NoError(t, svcCtx.AssessPusher.PushAll())

	values, err := mr.List(svc.RecentListKey)
	require.NoError(t, err)
	assert.Len(t, values, 3)

	recent, err := l.Recent()
	require.NoError(t, err)
	require.Len(t, recent.Records, 3)
	assert.Equal(t, 4, recent.Records[0].Depth)
	assert.Equal(t, 2, recent.Records[2].Depth)
}

func TestRecentSkipsMalformedRecords(t *testing.T) {
	svcCtx, mr := newRedisServiceContext(t, 10)

	_, err := mr.Lpush(svc.RecentListKey, "not json")
	require.NoError(t, err)

	recent, err := NewAssessLogic(context.Background(), svcCtx).Recent()
	require.NoError(t, err)
	assert.Empty(t, recent.Records)
}

func TestAssessIgnoresMalformedCacheEntry(t *testing.T) {
	svcCtx, mr := newRedisServiceContext(t, 10)

	key := message.NewAssessMessageKey(checkers.NewStartBoard(), checkers.Player1, 1).String()
	require.NoError(t, mr.Set(key, "not json"))

	resp, err := NewAssessLogic(context.Background(), svcCtx).Assess(&types.AssessRequest{
		Board: checkers.NewStartBoard().Cells(),
		Turn:  "Player1",
		Depth: 1,
	})
	require.NoError(t, err)
	assert.False(t, resp.Cached)
	assert.True(t, resp.Ok)
}
