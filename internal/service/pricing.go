package service

import (
	"strings"

	"github.com/visualshop/internal/config"
	"github.com/visualshop/internal/constants"
	"github.com/visualshop/internal/models"

	"github.com/shopspring/decimal"
)

// PricingLine 参与计价的行
type PricingLine struct {
	UnitPrice models.Money
	Quantity  int
}

// ShippingPolicy 运费策略：小计严格大于阈值时免运费，否则收取固定运费
type ShippingPolicy struct {
	FreeThreshold decimal.Decimal
	FlatFee       decimal.Decimal
}

// Pricing 计价结果
type Pricing struct {
	Subtotal models.Money `json:"subtotal"`
	Shipping models.Money `json:"shipping"`
	Discount models.Money `json:"discount"`
	Total    models.Money `json:"total"`
}

// DefaultShippingPolicy 默认运费策略（满 200 以上包邮，否则 15）
func DefaultShippingPolicy() ShippingPolicy {
	return ShippingPolicy{
		FreeThreshold: decimal.RequireFromString(constants.DefaultFreeShippingThreshold),
		FlatFee:       decimal.RequireFromString(constants.DefaultFlatShippingFee),
	}
}

// NewShippingPolicy 从配置构建运费策略，非法值回退默认
func NewShippingPolicy(cfg config.OrderConfig) ShippingPolicy {
	policy := DefaultShippingPolicy()
	if threshold, err := decimal.NewFromString(strings.TrimSpace(cfg.FreeShippingThreshold)); err == nil && !threshold.IsNegative() {
		policy.FreeThreshold = threshold
	}
	if fee, err := decimal.NewFromString(strings.TrimSpace(cfg.FlatShippingFee)); err == nil && !fee.IsNegative() {
		policy.FlatFee = fee
	}
	return policy
}

// CalculatePricing 计算小计、运费、优惠与应付金额，纯函数
// 空行集合的小计为 0，按规则仍收取运费
func CalculatePricing(lines []PricingLine, policy ShippingPolicy) Pricing {
	subtotal := decimal.Zero
	for _, line := range lines {
		if line.Quantity <= 0 {
			continue
		}
		subtotal = subtotal.Add(line.UnitPrice.Decimal.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	subtotal = subtotal.Round(2)

	shipping := policy.FlatFee
	if subtotal.GreaterThan(policy.FreeThreshold) {
		shipping = decimal.Zero
	}
	discount := decimal.Zero
	total := subtotal.Add(shipping).Sub(discount)

	return Pricing{
		Subtotal: models.NewMoneyFromDecimal(subtotal),
		Shipping: models.NewMoneyFromDecimal(shipping),
		Discount: models.NewMoneyFromDecimal(discount),
		Total:    models.NewMoneyFromDecimal(total),
	}
}
