package redis

import (
	"context"
	"errors"

	"github.com/DRSN-tech/frag-avenue/internal/cfg"
	"github.com/DRSN-tech/frag-avenue/pkg/clients"
	"github.com/DRSN-tech/frag-avenue/pkg/e"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// KVRepo хранит снимки сессий в Redis. Каждая запись продлевает срок жизни ключа.
// Ошибки возвращаются с ключом в тексте, логирует их вызывающий.
type KVRepo struct {
	client *clients.RedisClient
	cfg    *cfg.RedisCfg
}

func NewKVRepo(client *clients.RedisClient, cfg *cfg.RedisCfg) *KVRepo {
	return &KVRepo{
		client: client,
		cfg:    cfg,
	}
}

// Get возвращает значение ключа; промах даёт nil без ошибки.
func (k *KVRepo) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := k.client.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, nil
		}

		return nil, e.Wrap(whereami.WhereAmI()+": GET "+key, err)
	}

	return data, nil
}

func (k *KVRepo) Set(ctx context.Context, key string, value []byte) error {
	if err := k.client.Client.Set(ctx, key, value, k.cfg.SessionTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI()+": SET "+key, err)
	}

	return nil
}

func (k *KVRepo) Delete(ctx context.Context, key string) error {
	if err := k.client.Client.Del(ctx, key).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI()+": DEL "+key, err)
	}

	return nil
}
