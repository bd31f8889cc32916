package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/rueidis"
	"go.uber.org/zap"

	model "task-track-service.com/task-track-service/internal/models"
)

// TaskCache is a best-effort read cache for single-task lookups. Failures
// are swallowed: a broken cache degrades to store reads, never to request
// errors.
type TaskCache interface {
	Get(ctx context.Context, id uint) (*model.Task, bool)
	Set(ctx context.Context, task *model.Task)
	Invalidate(ctx context.Context, id uint)
}

type RedisTaskCache struct {
	client rueidis.Client
	ttl    time.Duration
}

func NewRedisTaskCache(client rueidis.Client, ttlSeconds int) *RedisTaskCache {
	return &RedisTaskCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
}

func (c *RedisTaskCache) Get(ctx context.Context, id uint) (*model.Task, bool) {
	cmd := c.client.B().Get().Key(taskKey(id)).Build()

	payload, err := c.client.Do(ctx, cmd).ToString()
	if err != nil {
		if !rueidis.IsRedisNil(err) {
			zap.L().Warn("task cache read failed", zap.Uint("task_id", id), zap.Error(err))
		}
		return nil, false
	}

	var task model.Task
	if err := json.Unmarshal([]byte(payload), &task); err != nil {
		zap.L().Warn("task cache entry corrupt", zap.Uint("task_id", id), zap.Error(err))
		return nil, false
	}

	return &task, true
}

func (c *RedisTaskCache) Set(ctx context.Context, task *model.Task) {
	payload, err := json.Marshal(task)
	if err != nil {
		return
	}

	cmd := c.client.B().Set().
		Key(taskKey(task.ID)).
		Value(string(payload)).
		ExSeconds(int64(c.ttl.Seconds())).
		Build()

	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		zap.L().Warn("task cache write failed", zap.Uint("task_id", task.ID), zap.Error(err))
	}
}

func (c *RedisTaskCache) Invalidate(ctx context.Context, id uint) {
	cmd := c.client.B().Del().Key(taskKey(id)).Build()

	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		zap.L().Warn("task cache invalidation failed", zap.Uint("task_id", id), zap.Error(err))
	}
}

func taskKey(id uint) string {
	return fmt.Sprintf("task:%d", id)
}

// NoopTaskCache is used when no Redis address is configured.
type NoopTaskCache struct{}

func NewNoopTaskCache() *NoopTaskCache { return &NoopTaskCache{} }

func (*NoopTaskCache) Get(context.Context, uint) (*model.Task, bool) { return nil, false }
func (*NoopTaskCache) Set(context.Context, *model.Task)              {}
func (*NoopTaskCache) Invalidate(context.Context, uint)              {}
