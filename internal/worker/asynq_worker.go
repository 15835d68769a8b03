package worker

import (
	"context"
	"encoding/json"

	"github.com/visualshop/internal/logger"
	"github.com/visualshop/internal/provider"
	"github.com/visualshop/internal/queue"
	"github.com/visualshop/internal/repository"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskCartClearSnapshot, c.handleCartClearSnapshot)
}

// handleCartClearSnapshot 清理已下单的购物车行
// 只删除版本未变化的行，下单后用户重新加购的商品保留
func (c *Consumer) handleCartClearSnapshot(_ context.Context, task *asynq.Task) error {
	if c == nil || c.Container == nil || c.CartRepo == nil || task == nil {
		logger.Debugw("worker_cart_clear_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.CartClearSnapshotPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_cart_clear_unmarshal_failed", "error", err)
		return err
	}
	if payload.UserID == 0 || len(payload.Lines) == 0 {
		logger.Debugw("worker_cart_clear_skip_invalid_payload", "user_id", payload.UserID, "lines", len(payload.Lines))
		return nil
	}

	snapshot := make([]repository.CartLineVersion, 0, len(payload.Lines))
	for _, line := range payload.Lines {
		snapshot = append(snapshot, repository.CartLineVersion{ID: line.ID, Version: line.Version})
	}
	deleted, err := c.CartRepo.DeleteSnapshot(payload.UserID, snapshot)
	if err != nil {
		logger.Warnw("worker_cart_clear_failed",
			"order_id", payload.OrderID,
			"user_id", payload.UserID,
			"error", err,
		)
		return err
	}
	logger.Infow("worker_cart_clear_done",
		"order_id", payload.OrderID,
		"user_id", payload.UserID,
		"deleted", deleted,
		"kept", int64(len(snapshot))-deleted,
	)
	return nil
}
