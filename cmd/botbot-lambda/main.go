// Command botbot-lambda is an alternate, serverless transport for the same
// request pipeline driving cmd/botbot: one invocation in, one move out, no
// NATS queue in between. The event is a JSON proxy-style object whose body
// holds the marshaled BotRequest, base64-decoded by handleInvoke itself when
// isBase64Encoded is set; the reply is a JSON object with status 200 and the
// base64-encoded marshaled Response as its body, or status 204 and no body
// when the pipeline has nothing to send.
package main

import (
	"context"
	"encoding/base64"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/andy-k/omgbot/config"
	"github.com/andy-k/omgbot/internal/lexicon"
	"github.com/andy-k/omgbot/internal/pb"
	"github.com/andy-k/omgbot/internal/pipeline"
)

type invokeRequest struct {
	Body            string `json:"body"`
	IsBase64Encoded bool   `json:"isBase64Encoded"`
}

type invokeResponse struct {
	StatusCode      int    `json:"statusCode"`
	Body            string `json:"body"`
	IsBase64Encoded bool   `json:"isBase64Encoded"`
}

var pl *pipeline.Pipeline

func main() {
	cfg := config.Load(os.Args[1:])
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if awsCfg, err := awsconfig.LoadDefaultConfig(context.Background()); err != nil {
		log.Warn().Err(err).Msg("botbot-lambda: no AWS config resolved, continuing with defaults")
	} else {
		log.Info().Str("region", awsCfg.Region).Msg("botbot-lambda: resolved AWS config")
	}

	reg := lexicon.Load(cfg, lexicon.DefaultCatalog)
	pl = pipeline.New(reg)

	lambda.Start(handleInvoke)
}

func handleInvoke(ctx context.Context, req invokeRequest) (invokeResponse, error) {
	payload := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return invokeResponse{StatusCode: 400, Body: "bad base64 payload"}, nil
		}
		payload = decoded
	}

	gameUID, resp := pl.Handle(ctx, payload)
	if resp == nil {
		return invokeResponse{StatusCode: 204}, nil
	}
	if resp.Err != "" {
		log.Warn().Str("game_id", gameUID).Str("err", resp.Err).Msg("botbot-lambda: request failed")
	}

	out := pb.MarshalResponse(nil, resp)
	return invokeResponse{
		StatusCode:      200,
		Body:            base64.StdEncoding.EncodeToString(out),
		IsBase64Encoded: true,
	}, nil
}
