/*
Package redisstore provides a modelstore.Store backed by a redis DB.

Models are stored as plain string values under keys of the form
prefix:name, so different applications can share a redis DB without
clashing as long as they use different prefixes.
*/
package redisstore

import (
	"context"
	"fmt"

	"github.com/sylvaml/sylva/modelstore"
	"gopkg.in/redis.v5"
)

type redisStore struct {
	rc     *redis.Client
	prefix string
}

//New builds a modelstore.Store backed by a redis DB
func New(rc *redis.Client, prefix string) modelstore.Store {
	return &redisStore{rc, prefix}
}

func (rs *redisStore) Save(ctx context.Context, name string, model []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := rs.rc.Set(rs.keyFor(name), model, 0).Result()
	if err != nil {
		return fmt.Errorf("storing model %q in redis: %v", name, err)
	}
	return nil
}

func (rs *redisStore) Load(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := rs.rc.Get(rs.keyFor(name)).Result()
	if err == redis.Nil {
		return nil, fmt.Errorf("no model stored under %q", name)
	}
	if err != nil {
		return nil, fmt.Errorf("retrieving model %q from redis: %v", name, err)
	}
	return []byte(data), nil
}

func (rs *redisStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := rs.rc.Del(rs.keyFor(name)).Result()
	if err != nil {
		return fmt.Errorf("deleting model %q from redis: %v", name, err)
	}
	return nil
}

func (rs *redisStore) Close(ctx context.Context) error {
	return rs.rc.Close()
}

func (rs *redisStore) keyFor(name string) string {
	return fmt.Sprintf("%s:%s", rs.prefix, name)
}
