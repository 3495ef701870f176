// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "traceID", TraceIDCtxKey.String())
}

func TestGetTraceIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		want   string
		wantOK bool
	}{
		{name: "set", ctx: WithTraceID(context.Background(), "abc"), want: "abc", wantOK: true},
		{name: "missing", ctx: context.Background()},
		{name: "empty", ctx: WithTraceID(context.Background(), "")},
		{name: "wrong type", ctx: context.WithValue(context.Background(), TraceIDCtxKey, 42)},
		{name: "other key", ctx: context.WithValue(context.Background(), contextKey("other"), "abc")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetTraceIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
