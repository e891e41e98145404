// Copyright 2026 Union Simple Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

// Response is the envelope every JSON endpoint returns. Status mirrors the
// HTTP status code so clients can route on the body alone.
type Response struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Status  int    `json:"status"`
}
