// This file implements utilities for parsing and validating HTTP request
// data: JSON bodies, path ids and currency query parameters.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"hearth/internal/core"
)

// maxBodySize caps request bodies at 1 MiB.
const maxBodySize = 1 << 20

// decodeJSON reads the request body into dst, rejecting unknown fields and
// trailing garbage.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	if dec.More() {
		return errors.New("invalid JSON body: trailing data")
	}
	return nil
}

// pathID parses the named path segment as a positive integer id.
func pathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return id, nil
}

// currencyParam reads the ?currency= query parameter, falling back to def.
// Unknown codes are rejected so a typo never silently reports raw amounts.
func currencyParam(r *http.Request, def core.Currency) (core.Currency, error) {
	raw := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("currency")))
	if raw == "" {
		return def.OrDefault(), nil
	}
	cur := core.Currency(raw)
	if !cur.Known() {
		return "", fmt.Errorf("unknown currency %q", raw)
	}
	return cur, nil
}

// limitParam reads the ?limit= query parameter with a default.
func limitParam(r *http.Request, def int) int {
	raw := strings.TrimSpace(r.URL.Query().Get("limit"))
	if raw == "" {
		return def
	}
	if n, err := strconv.Atoi(raw); err == nil && n > 0 {
		return n
	}
	return def
}
