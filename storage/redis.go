package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/cppla/miniblog/models"
)

// RedisStore keeps each post as a hash under "<table>:<id>".
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, table string) *RedisStore {
	return &RedisStore{client: client, prefix: table + ":"}
}

func (s *RedisStore) key(id string) string {
	return s.prefix + id
}

// ScanAll walks the key space with SCAN and loads the hashes in one pipeline per batch.
func (s *RedisStore) ScanAll(ctx context.Context) ([]models.Post, error) {
	posts := []models.Post{}
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, s.prefix+"*", 1000).Result()
		if err != nil {
			return nil, fmt.Errorf("redis scan %s*: %w", s.prefix, err)
		}
		if len(keys) > 0 {
			pipe := s.client.Pipeline()
			cmds := make([]*redis.MapStringStringCmd, len(keys))
			for i, k := range keys {
				cmds[i] = pipe.HGetAll(ctx, k)
			}
			if _, err := pipe.Exec(ctx); err != nil {
				return nil, fmt.Errorf("redis hgetall batch: %w", err)
			}
			for _, cmd := range cmds {
				// A key deleted between SCAN and HGETALL reads back empty.
				if fields := cmd.Val(); len(fields) > 0 {
					posts = append(posts, postFromHash(fields))
				}
			}
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return posts, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*models.Post, error) {
	fields, err := s.client.HGetAll(ctx, s.key(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis hgetall %s: %w", s.key(id), err)
	}
	if len(fields) == 0 {
		return nil, nil
	}
	post := postFromHash(fields)
	return &post, nil
}

// Put replaces the whole hash inside MULTI/EXEC so readers never see a mix of old and new fields.
func (s *RedisStore) Put(ctx context.Context, post models.Post) error {
	key := s.key(post.ID)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key,
			"id", post.ID,
			"title", post.Title,
			"content", post.Content,
			"created_at", post.ModifiedAt,
		)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis put %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", s.key(id), err)
	}
	return nil
}

func postFromHash(fields map[string]string) models.Post {
	return models.Post{
		ID:         fields["id"],
		Title:      fields["title"],
		Content:    fields["content"],
		ModifiedAt: fields["created_at"],
	}
}
