package storage

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Adapter is the never-failing face of a KV backend. Backend errors and
// panics are logged and then treated as "no value" on reads and as no-ops
// on writes.
type Adapter struct {
	kv      KV
	backend string
	logger  *zap.Logger
}

func NewAdapter(kv KV, backend string, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{kv: kv, backend: backend, logger: logger}
}

func (a *Adapter) Get(ctx context.Context, key string) (value string, ok bool) {
	err := a.guard("get", key, func() error {
		v, err := a.kv.Get(ctx, key)
		if err != nil {
			return err
		}
		value = v
		return nil
	})
	if err != nil {
		return "", false
	}
	return value, true
}

func (a *Adapter) Set(ctx context.Context, key, value string) {
	_ = a.guard("set", key, func() error {
		return a.kv.Set(ctx, key, value)
	})
}

func (a *Adapter) Remove(ctx context.Context, key string) {
	_ = a.guard("remove", key, func() error {
		return a.kv.Remove(ctx, key)
	})
}

func (a *Adapter) Close() error {
	if a.kv == nil {
		return nil
	}
	return a.kv.Close()
}

func (a *Adapter) guard(op, key string, fn func() error) (err error) {
	if a.kv == nil {
		return errors.New("storage: no backend")
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("storage: backend panic: %v", r)
			a.logger.Warn("storage backend panicked",
				zap.String("op", op),
				zap.String("key", key),
				zap.String("backend", a.backend),
				zap.Any("panic", r))
		}
	}()
	err = fn()
	if err != nil && !errors.Is(err, ErrNotFound) {
		a.logger.Warn("storage operation failed",
			zap.String("op", op),
			zap.String("key", key),
			zap.String("backend", a.backend),
			zap.Error(err))
	}
	return err
}
