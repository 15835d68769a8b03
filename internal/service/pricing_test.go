package service

import (
	"testing"

	"github.com/visualshop/internal/config"
	"github.com/visualshop/internal/models"
)

func TestCalculatePricing(t *testing.T) {
	policy := DefaultShippingPolicy()
	cases := []struct {
		name     string
		lines    []PricingLine
		subtotal string
		shipping string
		total    string
	}{
		{
			name:     "below threshold pays flat fee",
			lines:    []PricingLine{{UnitPrice: models.MustMoney("50.00"), Quantity: 2}, {UnitPrice: models.MustMoney("30.00"), Quantity: 1}},
			subtotal: "130.00",
			shipping: "15.00",
			total:    "145.00",
		},
		{
			name:     "exactly threshold still pays",
			lines:    []PricingLine{{UnitPrice: models.MustMoney("100.00"), Quantity: 2}},
			subtotal: "200.00",
			shipping: "15.00",
			total:    "215.00",
		},
		{
			name:     "above threshold ships free",
			lines:    []PricingLine{{UnitPrice: models.MustMoney("200.01"), Quantity: 1}},
			subtotal: "200.01",
			shipping: "0.00",
			total:    "200.01",
		},
		{
			name:     "empty lines",
			lines:    nil,
			subtotal: "0.00",
			shipping: "15.00",
			total:    "15.00",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculatePricing(tc.lines, policy)
			if got.Subtotal.String() != tc.subtotal {
				t.Fatalf("subtotal want %s got %s", tc.subtotal, got.Subtotal.String())
			}
			if got.Shipping.String() != tc.shipping {
				t.Fatalf("shipping want %s got %s", tc.shipping, got.Shipping.String())
			}
			if got.Discount.String() != "0.00" {
				t.Fatalf("discount want 0.00 got %s", got.Discount.String())
			}
			if got.Total.String() != tc.total {
				t.Fatalf("total want %s got %s", tc.total, got.Total.String())
			}
		})
	}
}

func TestCalculatePricingDecimalExactness(t *testing.T) {
	lines := []PricingLine{{UnitPrice: models.MustMoney("0.10"), Quantity: 3}}
	got := CalculatePricing(lines, DefaultShippingPolicy())
	if got.Subtotal.String() != "0.30" {
		t.Fatalf("subtotal want 0.30 got %s", got.Subtotal.String())
	}
}

func TestNewShippingPolicyFromConfig(t *testing.T) {
	policy := NewShippingPolicy(config.OrderConfig{FreeShippingThreshold: "99", FlatShippingFee: "9.90"})
	got := CalculatePricing([]PricingLine{{UnitPrice: models.MustMoney("99.00"), Quantity: 1}}, policy)
	if got.Shipping.String() != "9.90" {
		t.Fatalf("shipping want 9.90 got %s", got.Shipping.String())
	}

	fallback := NewShippingPolicy(config.OrderConfig{FreeShippingThreshold: "abc", FlatShippingFee: "-1"})
	if !fallback.FreeThreshold.Equal(DefaultShippingPolicy().FreeThreshold) || !fallback.FlatFee.Equal(DefaultShippingPolicy().FlatFee) {
		t.Fatalf("invalid config should fall back to defaults: %+v", fallback)
	}
}
