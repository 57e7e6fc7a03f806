package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"

	"github.com/mvoronov/locallibrary/config"
	"github.com/mvoronov/locallibrary/internal/handler"
	"github.com/mvoronov/locallibrary/internal/repository"
	"github.com/mvoronov/locallibrary/internal/server"
	"github.com/mvoronov/locallibrary/internal/service"
	"github.com/mvoronov/locallibrary/migrations"
	"github.com/mvoronov/locallibrary/pkg/kafka"
	"github.com/mvoronov/locallibrary/pkg/logger"
	"github.com/mvoronov/locallibrary/pkg/postgres"
	"go.uber.org/zap"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "locallibrary")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	enqueuer := service.NopEnqueuer()
	var producer sarama.SyncProducer
	if cfg.Kafka.Enabled() {
		producer, err = kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		enqueuer = service.NewEnqueuer(producer)
	}
	svc := service.NewService(repo, enqueuer, log)

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if producer != nil {
		_ = producer.Close() //nolint:errcheck
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
