// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// spySyncService counts flushes.
type spySyncService struct {
	calls atomic.Int64
	err   error
}

func (s *spySyncService) FlushOfflineStories(_ context.Context) error {
	s.calls.Add(1)
	return s.err
}

// ── NewSyncJob ───────────────────────────────────────────────────────────────

func TestNewSyncJob_ReturnsInterface(t *testing.T) {
	job := NewSyncJob(&spySyncService{}, logger.Nop())
	require.NotNil(t, job)
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestSyncJob_Start_CallsFlush(t *testing.T) {
	defer goleak.VerifyNone(t)

	spy := &spySyncService{}
	job := NewSyncJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	assert.Eventually(t, func() bool { return spy.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	job.Stop()
}

func TestSyncJob_Stop_StopsGoroutine(t *testing.T) {
	defer goleak.VerifyNone(t)

	spy := &spySyncService{}
	job := NewSyncJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	assert.Eventually(t, func() bool { return spy.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no flush may run after Stop")
}

func TestSyncJob_Stop_WithoutStart(t *testing.T) {
	job := NewSyncJob(&spySyncService{}, logger.Nop())

	assert.NotPanics(t, func() { job.Stop() })
	assert.NotPanics(t, func() { job.Stop() })
}

func TestSyncJob_Start_DefaultInterval(t *testing.T) {
	defer goleak.VerifyNone(t)

	for _, interval := range []time.Duration{0, -time.Second} {
		spy := &spySyncService{}
		job := NewSyncJob(spy, logger.Nop())

		job.Start(context.Background(), interval)
		time.Sleep(20 * time.Millisecond)
		job.Stop()

		assert.Zero(t, spy.calls.Load(), "default interval is minutes, not milliseconds")
	}
}

func TestSyncJob_Restart(t *testing.T) {
	defer goleak.VerifyNone(t)

	spy := &spySyncService{}
	job := NewSyncJob(spy, logger.Nop())
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	assert.Eventually(t, func() bool { return spy.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)
	before := spy.calls.Load()

	job.Start(ctx, 10*time.Millisecond)
	assert.Eventually(t, func() bool { return spy.calls.Load() > before }, time.Second, 5*time.Millisecond)
	job.Stop()
}

func TestSyncJob_ContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	job := NewSyncJob(&spySyncService{}, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hung after the parent context was cancelled")
	}
}

func TestSyncJob_FlushErrorDoesNotStopJob(t *testing.T) {
	defer goleak.VerifyNone(t)

	spy := &spySyncService{err: assert.AnError}
	job := NewSyncJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	assert.Eventually(t, func() bool { return spy.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	job.Stop()
}
