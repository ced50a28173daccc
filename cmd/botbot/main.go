// Command botbot is the service entrypoint (spec §4.10, §6): it loads every
// configured (language, lexicon) combination at boot, then subscribes to
// bot.commands as part of a NATS queue group and feeds each message through
// the request pipeline, publishing the result to bot.publish_event.<uid>.
// Grounded on original_source/src/main.rs's single async_nats::connect +
// queue_subscribe loop for the overall shape, generalized from one future
// per message into an errgroup-bounded worker pool the way
// endgame/negamax/solver.go fans work out over errgroup.Group.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avast/retry-go"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/andy-k/omgbot/config"
	"github.com/andy-k/omgbot/internal/lexicon"
	"github.com/andy-k/omgbot/internal/pb"
	"github.com/andy-k/omgbot/internal/pipeline"
)

func main() {
	cfg := config.Load(os.Args[1:])

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	reg := lexicon.Load(cfg, lexicon.DefaultCatalog)
	pl := pipeline.New(reg)

	var nc *nats.Conn
	err := retry.Do(
		func() (err error) {
			nc, err = nats.Connect(cfg.NatsURL,
				nats.Name("omgbot"),
				nats.MaxReconnects(-1),
				nats.ReconnectWait(2*time.Second),
			)
			return err
		},
		retry.Attempts(10),
		retry.Delay(time.Second),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().Err(err).Uint("attempt", n).Str("url", cfg.NatsURL).Msg("botbot: nats connect retry")
		}),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("botbot: could not connect to nats")
	}
	defer nc.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.WorkerCapacity)

	sub, err := nc.QueueSubscribe(cfg.CommandsSubj, cfg.QueueGroup, func(msg *nats.Msg) {
		payload := append([]byte(nil), msg.Data...)
		g.Go(func() error {
			handle(gctx, pl, nc, cfg, payload)
			return nil
		})
	})
	if err != nil {
		log.Fatal().Err(err).Str("subject", cfg.CommandsSubj).Msg("botbot: could not subscribe")
	}

	log.Info().Str("subject", cfg.CommandsSubj).Str("queue", cfg.QueueGroup).Msg("botbot: ready")

	<-ctx.Done()
	log.Info().Msg("botbot: shutting down, draining in-flight requests")
	_ = sub.Unsubscribe() // stop taking new messages before waiting out the in-flight ones
	_ = g.Wait()
}

func handle(ctx context.Context, pl *pipeline.Pipeline, nc *nats.Conn, cfg *config.Config, payload []byte) {
	gameUID, resp := pl.Handle(ctx, payload)
	if resp == nil {
		return // unsupported bot/variant combination: deliberately no reply
	}
	if resp.Err != "" {
		log.Warn().Str("game_id", gameUID).Str("err", resp.Err).Msg("botbot: request failed")
	}
	out := pb.MarshalResponse(nil, resp)
	subj := cfg.PublishPrefix + gameUID
	if err := nc.Publish(subj, out); err != nil {
		log.Error().Err(err).Str("subject", subj).Msg("botbot: publish failed")
	}
}
