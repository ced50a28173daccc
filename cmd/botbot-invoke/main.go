// Command botbot-invoke is a small ops tool for exercising a deployed
// cmd/botbot-lambda function directly, without going through NATS: it reads
// a marshaled BotRequest from stdin, invokes the named Lambda function
// synchronously, and writes the marshaled Response to stdout.
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
)

type invokePayload struct {
	Body            string `json:"body"`
	IsBase64Encoded bool   `json:"isBase64Encoded"`
}

type invokeResult struct {
	StatusCode      int    `json:"statusCode"`
	Body            string `json:"body"`
	IsBase64Encoded bool   `json:"isBase64Encoded"`
}

func main() {
	fnName := flag.String("function", "", "name or ARN of the deployed botbot-lambda function")
	flag.Parse()
	if *fnName == "" {
		fmt.Fprintln(os.Stderr, "botbot-invoke: -function is required")
		os.Exit(2)
	}

	reqBytes, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "botbot-invoke: reading stdin: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "botbot-invoke: loading AWS config: %v\n", err)
		os.Exit(1)
	}

	payload, err := json.Marshal(invokePayload{
		Body:            base64.StdEncoding.EncodeToString(reqBytes),
		IsBase64Encoded: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "botbot-invoke: encoding payload: %v\n", err)
		os.Exit(1)
	}

	client := lambda.NewFromConfig(awsCfg)
	out, err := client.Invoke(ctx, &lambda.InvokeInput{
		FunctionName: fnName,
		Payload:      payload,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "botbot-invoke: invoke failed: %v\n", err)
		os.Exit(1)
	}
	if out.FunctionError != nil {
		fmt.Fprintf(os.Stderr, "botbot-invoke: function error: %s\n%s\n", *out.FunctionError, out.Payload)
		os.Exit(1)
	}

	var res invokeResult
	if err := json.Unmarshal(out.Payload, &res); err != nil {
		fmt.Fprintf(os.Stderr, "botbot-invoke: decoding result: %v\n", err)
		os.Exit(1)
	}
	if res.StatusCode != 200 {
		fmt.Fprintf(os.Stderr, "botbot-invoke: non-200 status %d\n", res.StatusCode)
		os.Exit(1)
	}

	body := []byte(res.Body)
	if res.IsBase64Encoded {
		body, err = base64.StdEncoding.DecodeString(res.Body)
		if err != nil {
			fmt.Fprintf(os.Stderr, "botbot-invoke: decoding body: %v\n", err)
			os.Exit(1)
		}
	}
	os.Stdout.Write(body)
}
