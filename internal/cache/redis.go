package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shop-service/internal/service"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const cartTTL = 30 * 24 * time.Hour // как у cookie-корзины исходной витрины

type RedisCartStore struct {
	client *redis.Client
	log    *zap.Logger
}

func NewRedisCartStore(addr, password string, db int, log *zap.Logger) (*RedisCartStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Info("Redis connected successfully", zap.String("addr", addr))

	return &RedisCartStore{
		client: rdb,
		log:    log,
	}, nil
}

func (r *RedisCartStore) Close() error {
	return r.client.Close()
}

func cartKey(id string) string { return fmt.Sprintf("cart:%s", id) }

func (r *RedisCartStore) Get(ctx context.Context, id string) (*service.Cart, error) {
	raw, err := r.client.Get(ctx, cartKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var cart service.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		// битая запись — считаем корзину пустой
		r.log.Warn("corrupted cart payload, dropping", zap.String("cart_id", id), zap.Error(err))
		_ = r.client.Del(ctx, cartKey(id)).Err()
		return nil, nil
	}
	return &cart, nil
}

func (r *RedisCartStore) Save(ctx context.Context, cart *service.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, cartKey(cart.ID), raw, cartTTL).Err()
}

func (r *RedisCartStore) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, cartKey(id)).Err()
}
