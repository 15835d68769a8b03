package models

import (
	"encoding/json"
	"testing"
)

func TestMoneyMarshalFixedTwoDecimals(t *testing.T) {
	body, err := json.Marshal(MustMoney("145"))
	if err != nil {
		t.Fatalf("marshal money failed: %v", err)
	}
	if string(body) != `"145.00"` {
		t.Fatalf("want \"145.00\" got %s", string(body))
	}
}

func TestMoneyUnmarshalStringAndNumber(t *testing.T) {
	var fromString Money
	if err := json.Unmarshal([]byte(`"19.999"`), &fromString); err != nil {
		t.Fatalf("unmarshal string failed: %v", err)
	}
	if fromString.String() != "20.00" {
		t.Fatalf("want 20.00 got %s", fromString.String())
	}

	var fromNumber Money
	if err := json.Unmarshal([]byte(`0.1`), &fromNumber); err != nil {
		t.Fatalf("unmarshal number failed: %v", err)
	}
	if fromNumber.String() != "0.10" {
		t.Fatalf("want 0.10 got %s", fromNumber.String())
	}
}
