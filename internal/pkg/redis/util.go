package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const unlockScript = "if redis.call('get', KEYS[1]) == ARGV[1] then return redis.call('del', KEYS[1]) else return 0 end"

// GetValue 获取字符串类型的值，key 不存在时返回空串
func GetValue(ctx context.Context, rdb *redis.Client, key string) (string, error) {
	value, err := rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// TryLock 尝试加锁，retryTimes 为 -1 时一直重试
func TryLock(ctx context.Context, rdb *redis.Client, key string, value interface{}, expiration time.Duration, retryTimes int) (bool, error) {
	for i := 0; i < retryTimes || retryTimes == -1; i++ {
		success, err := rdb.SetNX(ctx, key, value, expiration).Result()
		if err != nil {
			return false, err
		}
		if success {
			return true, nil
		}
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(time.Millisecond * 200):
		}
	}
	return false, nil
}

// UnLock 释放锁，只删除自己持有的锁
func UnLock(ctx context.Context, rdb *redis.Client, key string, value interface{}) {
	rdb.Eval(ctx, unlockScript, []string{key}, value)
}
