package service

import (
	"context"
	"errors"

	"github.com/visualshop/internal/cache"
)

// UserLocker 按用户串行化写操作
type UserLocker interface {
	Lock(ctx context.Context, userID uint) (func(), error)
}

func acquireUserLock(ctx context.Context, locker UserLocker, userID uint) (func(), error) {
	if locker == nil {
		return func() {}, nil
	}
	unlock, err := locker.Lock(ctx, userID)
	if err != nil {
		if errors.Is(err, cache.ErrLockTimeout) {
			return nil, ErrCartBusy
		}
		return nil, err
	}
	return unlock, nil
}
