// Command victoriaos runs VictoriaOS nodes from job files and prints the
// published node descriptors.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"victoriaos-connector/config"
	"victoriaos-connector/internal/host"
	"victoriaos-connector/internal/node"
	"victoriaos-connector/internal/trigger"
	"victoriaos-connector/pkg/log"
	"victoriaos-connector/pkg/victoriaos"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

var errUsage = errors.New("usage: victoriaos [flags] run <job-file|-> | check | nodes")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	flags := pflag.NewFlagSet("victoriaos", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	configFile := flags.String("config", "", "config file (default: config.yaml in ./config, . or /etc/victoriaos/)")
	output := flags.StringP("output", "o", outputJSON, "output format: json or yaml")
	flags.String("victoriaos.api_key", "", "VictoriaOS API key")
	flags.String("victoriaos.entorno", "", "VictoriaOS environment: produccion or desarrollo")
	flags.String("victoriaos.base_url", "", "override the VictoriaOS API base URL")
	flags.String("logger.level", "", "log level")

	if err := flags.Parse(args); err != nil {
		return err
	}
	if *output != outputJSON && *output != outputYAML {
		return fmt.Errorf("unknown output format %q", *output)
	}

	rest := flags.Args()
	if len(rest) == 0 {
		return errUsage
	}

	switch rest[0] {
	case "nodes":
		return printNodes(stdout, *output)
	case "check":
		return checkCredentials(ctx, *configFile, flags, stdout, stderr)
	case "run":
		if len(rest) != 2 {
			return errUsage
		}
		return runJob(ctx, *configFile, flags, rest[1], stdout, stderr, *output)
	default:
		return errUsage
	}
}

type nodesOutput struct {
	Nodes   []node.Descriptor  `json:"nodes" yaml:"nodes"`
	Trigger trigger.Descriptor `json:"trigger" yaml:"trigger"`
}

func printNodes(w io.Writer, format string) error {
	out := nodesOutput{Trigger: trigger.Describe(trigger.WebhookPath)}
	for _, n := range node.All() {
		out.Nodes = append(out.Nodes, n.Descriptor())
	}
	return write(w, format, out)
}

// setup loads configuration and builds the logger and API client.
func setup(configFile string, flags *pflag.FlagSet, stderr io.Writer) (*config.Config, log.Logger, *victoriaos.Client, error) {
	cfg, err := config.LoadFrom(configFile, flags)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		Output:       stderr,
	})

	client, err := victoriaos.NewClient(victoriaos.Config{
		Credentials: cfg.VictoriaOS.Credentials(),
		BaseURL:     cfg.VictoriaOS.BaseURL,
		Timeout:     cfg.VictoriaOS.Timeout,
		Logger:      logger,
	})
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, logger, client, nil
}

func checkCredentials(ctx context.Context, configFile string, flags *pflag.FlagSet, stdout, stderr io.Writer) error {
	_, _, client, err := setup(configFile, flags, stderr)
	if err != nil {
		return err
	}
	if err := client.TestCredentials(ctx); err != nil {
		return victoriaos.Normalize(err)
	}
	_, err = fmt.Fprintf(stdout, "credentials ok (%s)\n", client.BaseURL())
	return err
}

func runJob(ctx context.Context, configFile string, flags *pflag.FlagSet, jobPath string, stdout, stderr io.Writer, format string) error {
	cfg, logger, client, err := setup(configFile, flags, stderr)
	if err != nil {
		return err
	}

	job, err := host.LoadJob(jobPath)
	if err != nil {
		return err
	}
	n, err := node.Lookup(job.Node)
	if err != nil {
		return err
	}

	h, err := host.New(job, cfg.VictoriaOS.Credentials(), client)
	if err != nil {
		return err
	}

	logger.Debugf(ctx, "running node %s over %d item(s)", n.Name, job.ItemCount())
	items, err := n.Execute(ctx, logger, h, job.ItemCount(), h.Options())
	if err != nil {
		return err
	}
	return write(stdout, format, items)
}

func write(w io.Writer, format string, v any) error {
	if format == outputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
