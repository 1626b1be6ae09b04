package core

import "testing"

func TestCurrencyKnown(t *testing.T) {
	tests := []struct {
		cur  Currency
		want bool
	}{
		{USD, true},
		{EUR, true},
		{GBP, true},
		{BGN, true},
		{Currency("XXX"), false},
		{Currency("usd"), false},
		{Currency(""), false},
	}

	for _, tt := range tests {
		if got := tt.cur.Known(); got != tt.want {
			t.Errorf("Known(%q) = %v, want %v", tt.cur, got, tt.want)
		}
	}
}

func TestCurrencyOrDefault(t *testing.T) {
	if got := Currency("").OrDefault(); got != DefaultCurrency {
		t.Errorf("empty currency defaulted to %q, want %q", got, DefaultCurrency)
	}
	if got := EUR.OrDefault(); got != EUR {
		t.Errorf("EUR.OrDefault() = %q, want EUR", got)
	}
}
