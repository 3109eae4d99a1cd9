package svc

import (
	"context"
	"sync"

	"github.com/HuXin0817/checkers/pkg/env"
	"github.com/HuXin0817/checkers/pkg/models/message"
	"github.com/HuXin0817/checkers/pkg/models/model"
	"github.com/HuXin0817/checkers/pkg/models/pusher"
	"github.com/HuXin0817/checkers/serve/internal/config"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

const (
	RecentListKey  = "assess:recent"
	recentLockName = "assess:recent:lock"
)

type ServiceContext struct {
	Config       config.Config
	RedisClient  *redis.Redis
	Games        *GameManager
	AssessPusher *pusher.Pusher[message.AssessRecord]

	recentLock sync.Mutex
	recent     []message.AssessRecord
}

func NewServiceContext(c config.Config) *ServiceContext {
	if c.Redis.Pass == "" {
		c.Redis.Pass = env.RedisPassWord
	}

	svcCtx := &ServiceContext{
		Config: c,
		Games:  NewGameManager(),
	}

	if c.RedisEnabled() {
		svcCtx.RedisClient = redis.MustNewRedis(c.Redis)
	} else {
		logx.Info("redis is not configured, analysis is kept in memory")
	}

	svcCtx.AssessPusher = pusher.NewPusher(
		pusher.WithPushLogic(svcCtx.pushRecords),
		pusher.WithPushInterval[message.AssessRecord](c.Cache.PushInterval),
	)
	svcCtx.AssessPusher.Start()

	return svcCtx
}

func (s *ServiceContext) pushRecords(records ...message.AssessRecord) error {
	if len(records) == 0 {
		return nil
	}

	if s.RedisClient == nil {
		s.keepRecent(records)
		return nil
	}

	for _, r := range records {
		if err := s.RedisClient.Setex(r.AssessMessageKey.String(), r.AssessMessageValue.String(), s.Config.Cache.Expire); err != nil {
			return err
		}
	}

	lock := model.NewLock(s.RedisClient, recentLockName)
	return lock.Do(context.Background(), func() error {
		var values []any
		for _, r := range records {
			values = append(values, r.String())
		}

		if _, err := s.RedisClient.Lpush(RecentListKey, values...); err != nil {
			return err
		}

		if err := s.RedisClient.Ltrim(RecentListKey, 0, int64(s.Config.Cache.RecentLength-1)); err != nil {
			return err
		}

		return s.RedisClient.Expire(RecentListKey, s.Config.Cache.Expire)
	})
}

// keepRecent mirrors Lpush + Ltrim for the in-memory list.
func (s *ServiceContext) keepRecent(records []message.AssessRecord) {
	s.recentLock.Lock()
	defer s.recentLock.Unlock()

	for _, r := range records {
		s.recent = append([]message.AssessRecord{r}, s.recent...)
	}

	if n := s.Config.Cache.RecentLength; n > 0 && len(s.recent) > n {
		s.recent = s.recent[:n]
	}
}

// RecentRecords returns the latest analysis records, newest first.
func (s *ServiceContext) RecentRecords(ctx context.Context) (records []message.AssessRecord, err error) {
	if s.RedisClient == nil {
		s.recentLock.Lock()
		defer s.recentLock.Unlock()
		return append([]message.AssessRecord(nil), s.recent...), nil
	}

	values, err := s.RedisClient.LrangeCtx(ctx, RecentListKey, 0, s.Config.Cache.RecentLength-1)
	if err != nil {
		return nil, err
	}

	for _, v := range values {
		r, err := message.NewAssessRecord(v)
		if err != nil {
			logx.WithContext(ctx).Errorf("drop malformed analysis record: %v", err)
			continue
		}
		records = append(records, r)
	}

	return records, nil
}

func (s *ServiceContext) Stop() {
	s.AssessPusher.Stop()
}
