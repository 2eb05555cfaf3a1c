package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/abhisek/smartlearn/internal/config"
	"github.com/abhisek/smartlearn/internal/engine"
	"github.com/abhisek/smartlearn/internal/events"
	"github.com/abhisek/smartlearn/internal/fallback"
	"github.com/abhisek/smartlearn/internal/llm"
	"github.com/abhisek/smartlearn/internal/metrics"
	"github.com/abhisek/smartlearn/internal/quiz"
	"github.com/abhisek/smartlearn/internal/runner"
	"github.com/abhisek/smartlearn/internal/session"
	"github.com/abhisek/smartlearn/internal/store"
	"github.com/abhisek/smartlearn/internal/tutor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

// wired is a fully wired engine plus everything that has to be closed
// when the command exits.
type wired struct {
	cfg      config.Config
	store    *store.Store
	engine   *engine.Engine
	sessions *session.Store
	metrics  *metrics.Metrics
	registry *prometheus.Registry
	llmReady bool

	closers []func() error
}

type wireOptions struct {
	logger *slog.Logger

	// metrics registers Prometheus collectors on a fresh registry.
	metrics bool

	// publish connects the graded-quiz publisher when AMQP is configured.
	publish bool
}

// loadConfig reads .env and the environment, applies the --db flag and
// validates the result.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if dsn, _ := cmd.Flags().GetString("db"); dsn != "" {
		cfg.DBDSN = dsn
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func openStore(ctx context.Context, cfg config.Config) (*store.Store, error) {
	dsn, err := cfg.ResolveDSN()
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(ctx, cfg.DBDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// wire builds the engine the way every command needs it. The LLM chain is
// optional: without it quizzes come from the question bank and the tutor
// gives canned answers.
func wire(ctx context.Context, cmd *cobra.Command, opts wireOptions) (rt *wired, err error) {
	logger := opts.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	rt = &wired{cfg: cfg}
	defer func() {
		if err != nil {
			rt.Close()
		}
	}()

	st, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	rt.store = st
	rt.closers = append(rt.closers, st.Close)

	journal, err := newJournal(ctx, rt, st)
	if err != nil {
		return nil, err
	}
	rt.sessions = session.NewStore(session.WithJournal(journal), session.WithLogger(logger))

	builderOpts := []quiz.Option{quiz.WithLogger(logger)}
	if !cfg.TimedQuizzes {
		builderOpts = append(builderOpts, quiz.WithoutTimeLimit())
	}
	var responders []tutor.Responder
	if len(cfg.LLM.Chain) > 0 {
		provider, perr := llm.NewProvider(ctx, cfg.LLM, st.EventRepo())
		if perr != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", perr)
			fmt.Fprintln(os.Stderr, "Quizzes will come from the built-in question bank.")
		} else {
			rt.llmReady = true
			builderOpts = append(builderOpts, quiz.WithSources(quiz.NewLLMSource(provider, quiz.DefaultLLMConfig())))
			responders = append(responders, tutor.NewLLMResponder(provider, tutor.DefaultConfig()))
		}
	}

	engineOpts := []engine.Option{
		engine.WithLogger(logger),
		engine.WithTutor(tutor.NewService(responders, tutor.WithLogger(logger))),
	}
	if opts.metrics {
		rt.registry = prometheus.NewRegistry()
		rt.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		rt.metrics = metrics.New(rt.registry, rt.sessions.Len)
		engineOpts = append(engineOpts, engine.WithMetrics(rt.metrics))
	}
	if opts.publish && cfg.AMQPURL != "" {
		pub, perr := events.DialAMQP(cfg.AMQPURL, cfg.Exchange, logger)
		if perr != nil {
			return nil, perr
		}
		rt.closers = append(rt.closers, pub.Close)
		engineOpts = append(engineOpts, engine.WithPublisher(pub))
	}

	b := quiz.NewBuilder(fallback.Default(), builderOpts...)
	r := runner.New(runner.WithLogger(logger))
	rt.engine = engine.New(b, r, rt.sessions, engineOpts...)
	return rt, nil
}

// newJournal persists session logs to Redis when it is configured and to
// the SQL store otherwise.
func newJournal(ctx context.Context, rt *wired, st *store.Store) (session.Journal, error) {
	if rt.cfg.RedisURL == "" {
		return session.NewSQLJournal(st.InteractionRepo()), nil
	}
	client, err := session.DialRedis(ctx, rt.cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	rt.closers = append(rt.closers, client.Close)
	return session.NewRedisJournal(client, "", rt.cfg.SessionTTL), nil
}

// Close releases resources in reverse order of acquisition.
func (rt *wired) Close() error {
	var errs []error
	for i := len(rt.closers) - 1; i >= 0; i-- {
		errs = append(errs, rt.closers[i]())
	}
	rt.closers = nil
	return errors.Join(errs...)
}
