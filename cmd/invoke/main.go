package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/samber/mo"

	"wskproxy/clients"
	"wskproxy/clients/responseurl"
	"wskproxy/clients/whisk"
	"wskproxy/config"
	"wskproxy/core/log"
	"wskproxy/models"
	"wskproxy/usecases"
	"wskproxy/usecases/proxy"
)

type Options struct {
	Payload     string `long:"payload" description:"Command string: <action-name> [<param-name> <param-value>]*"`
	ResponseURL string `long:"response-url" description:"Callback url that receives the result message"`
	Auth        string `long:"auth" description:"Credential sent as Basic authorization to the action endpoint"`
	Stdin       bool   `long:"stdin" description:"Read the invocation request as JSON {payload, response_url, auth} from stdin"`
	Verbose     bool   `short:"v" long:"verbose" description:"Enable debug logging"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	configureLogging(opts.Verbose, os.Stderr)

	request, err := buildRequest(parser, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	httpClient := clients.NewHTTPClient(cfg.WhiskConfig.InsecureSkipVerify, cfg.WhiskConfig.Timeout)
	proxyUseCase := proxy.NewProxyUseCase(
		whisk.NewClient(cfg.WhiskConfig.ClientConfig(), httpClient),
		responseurl.NewClient(httpClient),
	)

	if err := execute(context.Background(), proxyUseCase, request, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// configureLogging keeps stdout for the outcome JSON. Logs are off unless verbose,
// and then go to logOutput.
func configureLogging(verbose bool, logOutput io.Writer) {
	log.SetOutput(logOutput)
	if verbose {
		log.SetLevel(slog.LevelDebug)
		return
	}
	log.SetLevel(log.LevelDisabled)
}

// execute runs one pipeline and writes its outcome as JSON to stdout
func execute(
	ctx context.Context,
	proxyUseCase usecases.ProxyUseCaseInterface,
	request models.InvocationRequest,
	stdout io.Writer,
) error {
	outcome := proxyUseCase.Run(ctx, request)

	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(outcome); err != nil {
		return fmt.Errorf("failed to encode outcome: %w", err)
	}
	return nil
}

// buildRequest keeps flags that were never passed absent, so the pipeline can tell a
// missing field from an empty one
func buildRequest(parser *flags.Parser, opts Options) (models.InvocationRequest, error) {
	if opts.Stdin {
		var request models.InvocationRequest
		if err := json.NewDecoder(os.Stdin).Decode(&request); err != nil {
			return models.InvocationRequest{}, fmt.Errorf("failed to decode invocation request: %w", err)
		}
		return request, nil
	}

	return models.InvocationRequest{
		Payload:     optionFromFlag(parser, "payload", opts.Payload),
		ResponseURL: optionFromFlag(parser, "response-url", opts.ResponseURL),
		Auth:        optionFromFlag(parser, "auth", opts.Auth),
	}, nil
}

func optionFromFlag(parser *flags.Parser, longName, value string) mo.Option[string] {
	option := parser.FindOptionByLongName(longName)
	if option == nil || !option.IsSet() {
		return mo.None[string]()
	}
	return mo.Some(value)
}
