package queue

import (
	"encoding/json"

	"github.com/visualshop/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskCartClearSnapshot 下单后补偿清理购物车任务
	TaskCartClearSnapshot = constants.TaskCartClearSnapshot
)

// CartClearLine 待清理的购物车行（ID + 下单时读取的版本）
type CartClearLine struct {
	ID      uint   `json:"id"`
	Version uint64 `json:"version"`
}

// CartClearSnapshotPayload 购物车补偿清理任务载荷
type CartClearSnapshotPayload struct {
	UserID  uint            `json:"user_id"`
	OrderID uint            `json:"order_id"`
	Lines   []CartClearLine `json:"lines"`
}

// NewCartClearSnapshotTask 创建购物车补偿清理任务
func NewCartClearSnapshotTask(payload CartClearSnapshotPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskCartClearSnapshot, body), nil
}
