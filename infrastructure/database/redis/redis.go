package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/delivery-dashboard-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const keyPrefix = "dashboard:"

// Cache guarda respostas de relatório serializadas em JSON
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type Connection struct {
	Client *goredis.Client
}

var _ Cache = (*Connection)(nil)

func NewConnection(ctx context.Context, cfg config.Redis) (*Connection, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: 20,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("erro ao conectar ao Redis: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"addr": cfg.Addr,
		"db":   cfg.DB,
	}).Info("Conexão com Redis estabelecida com sucesso")

	return &Connection{Client: client}, nil
}

func (c *Connection) Close() error {
	if c.Client == nil {
		return nil
	}
	return c.Client.Close()
}

func (c *Connection) Health(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

// Get decodifica o valor da chave em dest. Retorna false quando a chave não existe.
func (c *Connection) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.Client.Get(ctx, Key(key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("erro ao ler chave %s: %w", key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("erro ao decodificar chave %s: %w", key, err)
	}

	return true, nil
}

func (c *Connection) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("erro ao codificar chave %s: %w", key, err)
	}

	if err := c.Client.Set(ctx, Key(key), data, ttl).Err(); err != nil {
		return fmt.Errorf("erro ao gravar chave %s: %w", key, err)
	}

	return nil
}

func (c *Connection) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	prefixed := make([]string, 0, len(keys))
	for _, key := range keys {
		prefixed = append(prefixed, Key(key))
	}

	return c.Client.Del(ctx, prefixed...).Err()
}

// Key aplica o prefixo do serviço à chave
func Key(key string) string {
	return keyPrefix + key
}
