package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"dispatch-control/internal/core/clock"
	"dispatch-control/internal/core/config"
	"dispatch-control/internal/core/logger"
	"dispatch-control/internal/core/metrics"
	corepostgres "dispatch-control/internal/core/postgres"
	coreredis "dispatch-control/internal/core/redis"
	"dispatch-control/internal/core/server"
	carbonhandler "dispatch-control/internal/features/carbon/handler"
	carbonservice "dispatch-control/internal/features/carbon/service"
	execadapter "dispatch-control/internal/features/execution/adapters"
	exechandler "dispatch-control/internal/features/execution/handler"
	execports "dispatch-control/internal/features/execution/ports"
	execservice "dispatch-control/internal/features/execution/service"
	feasibilityhandler "dispatch-control/internal/features/feasibility/handler"
	feasibilityservice "dispatch-control/internal/features/feasibility/service"
	gatehandler "dispatch-control/internal/features/gate/handler"
	gateservice "dispatch-control/internal/features/gate/service"
	overrideadapter "dispatch-control/internal/features/override/adapters"
	overridehandler "dispatch-control/internal/features/override/handler"
	overrideports "dispatch-control/internal/features/override/ports"
	overrideservice "dispatch-control/internal/features/override/service"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Dispatch Control API
// @version 1.0
// @description Post-dispatch execution pipeline: vehicle feasibility, pre-dispatch decisions, delivery execution tracking, CO2 tradeoffs, and human overrides.
// @contact.name API Support
// @contact.email support@dispatchcontrol.io
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("event_store", cfg.EventStore),
	)

	ctx := context.Background()

	eventStore, overrideStore, cleanup, err := buildStores(ctx, cfg)
	if err != nil {
		l.Fatal("Failed to open stores", zap.Error(err))
	}
	defer cleanup()

	recorder, err := metrics.NewRecorder(nil)
	if err != nil {
		l.Fatal("Failed to register metrics", zap.Error(err))
	}

	notifiers := []execports.Notifier{execadapter.NewLogNotifier()}
	if cfg.MQTT.Enabled {
		mqttNotifier, err := execadapter.NewMQTTNotifier(cfg.MQTT.BrokerURL, cfg.MQTT.ClientID, cfg.MQTT.TopicPrefix)
		if err != nil {
			l.Fatal("Failed to connect MQTT notifier", zap.Error(err))
		}
		defer mqttNotifier.Close()
		notifiers = append(notifiers, mqttNotifier)
		l.Info("MQTT alert notifier connected", zap.String("broker", cfg.MQTT.BrokerURL))
	}

	clk := clock.Real{}
	pacing := execservice.Pacing{
		StepGap:  time.Duration(cfg.Simulation.StepGapMs) * time.Millisecond,
		DelayGap: time.Duration(cfg.Simulation.DelayGapMs) * time.Millisecond,
	}

	// Execution feature
	tracker := execservice.NewTracker(eventStore, clk, recorder, pacing)
	alerter := execservice.NewAlerter(eventStore, clk, recorder, notifiers...)
	runner := execservice.NewRunner(tracker, alerter)
	execStats := execservice.NewStatsService(eventStore)
	execHandler := exechandler.NewExecutionHandler(tracker, runner, execStats)

	// Decision features
	feasibilityHandler := feasibilityhandler.NewFeasibilityHandler(feasibilityservice.NewEngine(feasibilityservice.DefaultConfig()))
	carbonHandler := carbonhandler.NewCarbonHandler(carbonservice.NewAdvisor(carbonservice.DefaultConfig()))
	gateHandler := gatehandler.NewGateHandler(gateservice.NewGate(gateservice.DefaultConfig()), clk)

	// Override feature
	overrideHandler := overridehandler.NewOverrideHandler(overrideservice.NewService(overrideStore, clk), clk)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Post("/decisions/vehicle-feasibility", feasibilityHandler.CheckFeasibility)
	srv.App.Post("/decisions/co2-tradeoff", carbonHandler.AnalyzeTradeoff)
	srv.App.Post("/decisions/pre-dispatch", gateHandler.MakeDecision)
	srv.App.Post("/execution/deliveries", execHandler.RunDelivery)
	srv.App.Get("/execution/tracking", execHandler.GetTrackingLog)
	srv.App.Get("/execution/tracking/:id", execHandler.GetShipmentTracking)
	srv.App.Get("/execution/stats", execHandler.GetExecutionStats)
	srv.App.Post("/execution/failed-attempt", execHandler.SimulateFailedAttempt)
	srv.App.Post("/execution/bulk-simulate", execHandler.BulkSimulate)
	srv.App.Post("/overrides/apply", overrideHandler.Apply)
	srv.App.Get("/overrides/lock/:id", overrideHandler.CheckLock)
	srv.App.Delete("/overrides/lock/:id", overrideHandler.Unlock)
	srv.App.Get("/overrides/history", overrideHandler.GetHistory)
	srv.App.Get("/overrides/reasons", overrideHandler.GetReasons)
	srv.App.Get("/overrides/stats", overrideHandler.GetStats)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}

// buildStores opens the configured tracking event backend and the override
// store riding on it. Redis carries both logs; postgres and badger persist
// tracking events and keep overrides in memory.
func buildStores(ctx context.Context, cfg *config.AppConfig) (execports.EventStore, overrideports.OverrideStore, func(), error) {
	switch cfg.EventStore {
	case config.StoreRedis:
		client, err := coreredis.NewClient(ctx, cfg.Redis.URL)
		if err != nil {
			return nil, nil, nil, err
		}
		cleanup := func() { client.Close() }
		return execadapter.NewRedisStore(client), overrideadapter.NewRedisStore(client), cleanup, nil

	case config.StorePostgres:
		db, err := corepostgres.Open(cfg.Database.URL)
		if err != nil {
			return nil, nil, nil, err
		}
		store := execadapter.NewPostgresStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		cleanup := func() { db.Close() }
		return store, overrideadapter.NewMemoryStore(), cleanup, nil

	case config.StoreBadger:
		db, err := badger.Open(badger.DefaultOptions(cfg.Badger.Path))
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to open badger database: %w", err)
		}
		store, err := execadapter.NewBadgerStore(db)
		if err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		cleanup := func() {
			store.Close()
			db.Close()
		}
		return store, overrideadapter.NewMemoryStore(), cleanup, nil

	default:
		return execadapter.NewMemoryStore(), overrideadapter.NewMemoryStore(), func() {}, nil
	}
}
