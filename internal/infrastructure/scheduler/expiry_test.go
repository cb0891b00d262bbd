package scheduler

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/donaciones-api/internal/application/dto"
)

type countingScanner struct {
	calls atomic.Int32
	block chan struct{}
	err   error
}

func (s *countingScanner) Scan(ctx context.Context) (*dto.ScanResponse, error) {
	s.calls.Add(1)
	if s.block != nil {
		select {
		case <-s.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return &dto.ScanResponse{}, s.err
}

func TestExpiryScheduler_RunOnStart(t *testing.T) {
	scanner := &countingScanner{}
	s := NewExpiryScheduler(Config{Spec: "@hourly", RunOnStart: true, Location: time.UTC}, scanner, zerolog.Nop())

	require.NoError(t, s.Start(context.Background()))
	require.NoError(t, s.Start(context.Background()))
	assert.Eventually(t, func() bool { return scanner.calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
	require.NoError(t, s.Stop(ctx))
}

func TestExpiryScheduler_SinRunOnStartNoDispara(t *testing.T) {
	scanner := &countingScanner{}
	s := NewExpiryScheduler(Config{Spec: "@every 1h"}, scanner, zerolog.Nop())

	require.NoError(t, s.Start(context.Background()))
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, s.Stop(context.Background()))
	assert.Zero(t, scanner.calls.Load())
}

func TestExpiryScheduler_StopCancelaRevisionEnCurso(t *testing.T) {
	scanner := &countingScanner{block: make(chan struct{})}
	s := NewExpiryScheduler(Config{Spec: "@hourly", RunOnStart: true}, scanner, zerolog.Nop())

	require.NoError(t, s.Start(context.Background()))
	assert.Eventually(t, func() bool { return scanner.calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))
}

func TestExpiryScheduler_SpecInvalido(t *testing.T) {
	s := NewExpiryScheduler(Config{Spec: "cada hora"}, &countingScanner{}, zerolog.Nop())
	assert.Error(t, s.Start(context.Background()))
}

func TestExpiryScheduler_RegistraFallas(t *testing.T) {
	var buf bytes.Buffer
	scanner := &countingScanner{err: errors.New("db caída")}
	s := NewExpiryScheduler(Config{}, scanner, zerolog.New(&buf))

	s.runScan(context.Background())
	assert.Contains(t, buf.String(), "db caída")
}

func TestCronLogger(t *testing.T) {
	var buf bytes.Buffer
	l := cronLogger{log: zerolog.New(&buf)}
	l.Error(errors.New("panic"), "job", "entry", 1)
	assert.Contains(t, buf.String(), "cron: job")
	assert.Contains(t, buf.String(), `"entry":1`)
}
