package http

import (
	"net/http/httptest"
	"strings"
	"testing"

	"hearth/internal/core"
)

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", `{"name":"x"}`, false},
		{"unknown field", `{"name":"x","extra":1}`, true},
		{"trailing data", `{"name":"x"}{"name":"y"}`, true},
		{"not json", `nope`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/", strings.NewReader(tt.body))
			var p payload
			err := decodeJSON(r, &p)
			if (err != nil) != tt.wantErr {
				t.Errorf("decodeJSON(%q) error = %v, wantErr %v", tt.body, err, tt.wantErr)
			}
		})
	}
}

func TestCurrencyParam(t *testing.T) {
	tests := []struct {
		query   string
		want    core.Currency
		wantErr bool
	}{
		{"", core.EUR, false},
		{"?currency=USD", core.USD, false},
		{"?currency=usd", core.USD, false},
		{"?currency=gbp", core.GBP, false},
		{"?currency=XXX", "", true},
	}

	for _, tt := range tests {
		r := httptest.NewRequest("GET", "/summary"+tt.query, nil)
		got, err := currencyParam(r, core.EUR)
		if (err != nil) != tt.wantErr {
			t.Errorf("currencyParam(%q) error = %v, wantErr %v", tt.query, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("currencyParam(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestCurrencyParamEmptyDefault(t *testing.T) {
	r := httptest.NewRequest("GET", "/summary", nil)
	got, err := currencyParam(r, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != core.DefaultCurrency {
		t.Errorf("got %v, want %v", got, core.DefaultCurrency)
	}
}

func TestLimitParam(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"", 50},
		{"?limit=10", 10},
		{"?limit=0", 50},
		{"?limit=-3", 50},
		{"?limit=abc", 50},
	}
	for _, tt := range tests {
		r := httptest.NewRequest("GET", "/snapshots"+tt.query, nil)
		if got := limitParam(r, 50); got != tt.want {
			t.Errorf("limitParam(%q) = %d, want %d", tt.query, got, tt.want)
		}
	}
}
