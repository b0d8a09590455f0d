package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dispatch-control/internal/core/clock"
	"dispatch-control/internal/core/config"
	"dispatch-control/internal/core/logger"
	"dispatch-control/internal/core/metrics"
	corepostgres "dispatch-control/internal/core/postgres"
	coreredis "dispatch-control/internal/core/redis"
	execadapter "dispatch-control/internal/features/execution/adapters"
	execports "dispatch-control/internal/features/execution/ports"
	execservice "dispatch-control/internal/features/execution/service"

	"github.com/dgraph-io/badger/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var (
	storeBackend string
	jsonOut      bool
)

var rootCmd = &cobra.Command{
	Use:   "dispatchctl",
	Short: "Operate the dispatch execution pipeline from the command line",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storeBackend, "store", config.StoreBadger, "event store backend (memory, redis, postgres or badger)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "print results as JSON")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// demoPacing slows simulated lifecycles down to a watchable speed.
var demoPacing = execservice.Pacing{
	StepGap:  300 * time.Millisecond,
	DelayGap: 500 * time.Millisecond,
}

// runtime bundles the execution services a subcommand works with.
type runtime struct {
	runner  *execservice.Runner
	stats   *execservice.StatsService
	cleanup func()
}

// newRuntime loads configuration, opens the event store selected by
// --store, and wires the execution services on top of it.
func newRuntime(ctx context.Context, paced bool) (*runtime, error) {
	cfg, err := config.Load(".")
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg.EventStore = storeBackend
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	store, cleanup, err := openEventStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// Metrics live on a private registry here; nothing scrapes the CLI.
	recorder, err := metrics.NewRecorder(prometheus.NewRegistry())
	if err != nil {
		cleanup()
		return nil, err
	}

	notifiers := []execports.Notifier{execadapter.NewLogNotifier()}
	if cfg.MQTT.Enabled {
		mqttNotifier, err := execadapter.NewMQTTNotifier(cfg.MQTT.BrokerURL, cfg.MQTT.ClientID, cfg.MQTT.TopicPrefix)
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("mqtt notifier: %w", err)
		}
		notifiers = append(notifiers, mqttNotifier)

		storeCleanup := cleanup
		cleanup = func() {
			mqttNotifier.Close()
			storeCleanup()
		}
	}

	pacing := execservice.Pacing{
		StepGap:  time.Duration(cfg.Simulation.StepGapMs) * time.Millisecond,
		DelayGap: time.Duration(cfg.Simulation.DelayGapMs) * time.Millisecond,
	}
	if paced {
		pacing = demoPacing
	}

	clk := clock.Real{}
	tracker := execservice.NewTracker(store, clk, recorder, pacing)
	alerter := execservice.NewAlerter(store, clk, recorder, notifiers...)

	return &runtime{
		runner:  execservice.NewRunner(tracker, alerter),
		stats:   execservice.NewStatsService(store),
		cleanup: cleanup,
	}, nil
}

// openEventStore opens the tracking event backend named by the config.
func openEventStore(ctx context.Context, cfg *config.AppConfig) (execports.EventStore, func(), error) {
	switch cfg.EventStore {
	case config.StoreRedis:
		client, err := coreredis.NewClient(ctx, cfg.Redis.URL)
		if err != nil {
			return nil, nil, err
		}
		return execadapter.NewRedisStore(client), func() { client.Close() }, nil

	case config.StorePostgres:
		db, err := corepostgres.Open(cfg.Database.URL)
		if err != nil {
			return nil, nil, err
		}
		store := execadapter.NewPostgresStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return store, func() { db.Close() }, nil

	case config.StoreBadger:
		db, err := badger.Open(badger.DefaultOptions(cfg.Badger.Path))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open badger database: %w", err)
		}
		store, err := execadapter.NewBadgerStore(db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		cleanup := func() {
			store.Close()
			db.Close()
		}
		return store, cleanup, nil

	default:
		return execadapter.NewMemoryStore(), func() {}, nil
	}
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
