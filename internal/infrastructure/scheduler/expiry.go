// Package scheduler programa la revisión periódica de vencimientos.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/jhoicas/donaciones-api/internal/application/dto"
)

// Scanner lo que el scheduler dispara; lo implementa alerts.AlertUseCase.
type Scanner interface {
	Scan(ctx context.Context) (*dto.ScanResponse, error)
}

// Config programación de la revisión.
type Config struct {
	Spec       string // cron de 5 campos, con segundos opcionales, o descriptor (@hourly, @every 30m)
	RunOnStart bool
	Location   *time.Location
	// Timeout máximo de una revisión; 0 = sin límite propio.
	Timeout time.Duration
}

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// ExpiryScheduler dueño del cron de vencimientos: se arranca al iniciar el proceso y se detiene al apagarlo.
type ExpiryScheduler struct {
	cfg     Config
	scanner Scanner
	log     zerolog.Logger

	mu      sync.Mutex
	cron    *cron.Cron
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
}

// NewExpiryScheduler construye el scheduler sin arrancarlo.
func NewExpiryScheduler(cfg Config, scanner Scanner, log zerolog.Logger) *ExpiryScheduler {
	if cfg.Spec == "" {
		cfg.Spec = "@hourly"
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &ExpiryScheduler{cfg: cfg, scanner: scanner, log: log}
}

// Start registra el job y arranca el cron. ctx acota la vida de las revisiones en curso.
func (s *ExpiryScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return nil
	}

	schedule, err := cronParser.Parse(s.cfg.Spec)
	if err != nil {
		return fmt.Errorf("scheduler: spec %q: %w", s.cfg.Spec, err)
	}

	jobCtx, cancel := context.WithCancel(ctx)
	logger := cronLogger{log: s.log}
	job := cron.NewChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)).
		Then(cron.FuncJob(func() { s.runScan(jobCtx) }))

	c := cron.New(cron.WithLocation(s.cfg.Location), cron.WithParser(cronParser), cron.WithLogger(logger))
	c.Schedule(schedule, job)
	c.Start()

	s.cron = c
	s.cancel = cancel
	s.running = true

	if s.cfg.RunOnStart {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			job.Run()
		}()
	}

	s.log.Info().
		Str("spec", s.cfg.Spec).
		Str("location", s.cfg.Location.String()).
		Bool("run_on_start", s.cfg.RunOnStart).
		Time("next", schedule.Next(time.Now().In(s.cfg.Location))).
		Msg("scheduler de vencimientos iniciado")
	return nil
}

// Stop detiene el cron y espera la revisión en curso o el vencimiento de ctx.
func (s *ExpiryScheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	c, cancel := s.cron, s.cancel
	s.mu.Unlock()

	cancel()
	cronDone := c.Stop()

	done := make(chan struct{})
	go func() {
		<-cronDone.Done()
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.log.Info().Msg("scheduler de vencimientos detenido")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *ExpiryScheduler) runScan(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}
	start := time.Now()
	if _, err := s.scanner.Scan(ctx); err != nil {
		s.log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("revisión de vencimientos fallida")
	}
}

// cronLogger adapta zerolog a cron.Logger.
type cronLogger struct {
	log zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg("cron: " + msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg("cron: " + msg)
}
