package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/rendau/apic/adapters/cache/redis"
	"github.com/rendau/apic/adapters/client/httpc"
	"github.com/rendau/apic/adapters/client/httpc/fixture"
	"github.com/rendau/apic/adapters/client/httpc/httpclient"
	"github.com/rendau/apic/adapters/logger/zap"
	"github.com/rendau/apic/apicTools"
	"github.com/rendau/apic/endpoint"
	"github.com/rendau/apic/pipeline"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "apic",
		Short:         "Call the registered JSON API endpoints",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(newEndpointsCmd(), newCallCmd(), newFixturesCmd())

	return root
}

func newEndpointsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "endpoints",
		Short: "List registered endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printEndpoints(cmd.OutOrStdout(), endpoint.Default())
		},
	}
}

func printEndpoints(w io.Writer, registry *endpoint.Registry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for _, ep := range registry.List() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", ep.Name(), ep.Method(), ep.Encoding(), ep.Url())
	}

	return tw.Flush()
}

func newCallCmd() *cobra.Command {
	var asStrings bool

	cmd := &cobra.Command{
		Use:   "call <endpoint> [key=value...]",
		Short: "Call an endpoint and print the decoded JSON response",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConf()
			if err != nil {
				return errors.Wrap(err, "fail to load config")
			}

			lg := zap.New(conf.LogLevel, conf.Debug)
			defer lg.Sync()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			go func() {
				select {
				case <-apicTools.StopSignal():
					cancel()
				case <-ctx.Done():
				}
			}()

			ep, err := endpoint.Default().ByName(args[0])
			if err != nil {
				return err
			}

			params, err := parseParams(args[1:], asStrings)
			if err != nil {
				return err
			}

			transport, closeFn, err := newTransport(ctx, lg, conf)
			if err != nil {
				return err
			}
			defer closeFn()

			p := pipeline.New(transport, endpoint.Default())

			res, err := pipeline.Do[any](ctx, p, ep.Id(), params)
			if err != nil {
				return errors.WithMessage(err, ep.Name())
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			return enc.Encode(res)
		},
	}

	cmd.Flags().BoolVarP(&asStrings, "strings", "s", false, "send every parameter value as a string")

	return cmd
}

func newTransport(ctx context.Context, lg *zap.St, conf *confSt) (httpc.Transport, func(), error) {
	logFlags := 0
	if conf.LogHttp {
		logFlags = httpc.LogRequest | httpc.LogResponse
	}

	var transport httpc.Transport = httpclient.New(lg.Named("http"), httpc.OptionsSt{
		Client:    &http.Client{},
		Timeout:   conf.HttpTimeout,
		LogFlags:  logFlags,
		LogPrefix: "apic ",
	})

	if conf.FixtureMode == "" {
		return transport, func() {}, nil
	}

	mode, ok := fixture.ParseMode(conf.FixtureMode)
	if !ok {
		return nil, nil, errors.Errorf("bad FIXTURE_MODE %q", conf.FixtureMode)
	}

	if mode == fixture.ModeReplay {
		transport = nil
	}

	fx, closeFn, err := newFixture(ctx, lg, conf, transport, mode)
	if err != nil {
		return nil, nil, err
	}

	return fx, closeFn, nil
}

func newFixture(ctx context.Context, lg *zap.St, conf *confSt, next httpc.Transport, mode fixture.Mode) (*fixture.St, func(), error) {
	if conf.RedisUrl == "" {
		return nil, nil, errors.New("fixtures require REDIS_URL")
	}

	rc := redis.New(lg.Named("redis"), conf.RedisUrl, conf.RedisPsw, conf.RedisDb, "apic:")
	if err := rc.Ping(ctx); err != nil {
		_ = rc.Close()
		return nil, nil, errors.Wrap(err, "fail to connect to redis")
	}

	closeFn := func() {
		if err := rc.Close(); err != nil {
			lg.Warnw("Fail to close redis", "error", err)
		}
	}

	fx, err := fixture.New(lg.Named("fixture"), rc, next, fixture.OptionsSt{Mode: mode})
	if err != nil {
		closeFn()
		return nil, nil, err
	}

	return fx, closeFn, nil
}

func newFixturesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixtures",
		Short: "Manage recorded fixtures",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "purge",
		Short: "Delete every recorded fixture",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConf()
			if err != nil {
				return errors.Wrap(err, "fail to load config")
			}

			lg := zap.New(conf.LogLevel, conf.Debug)
			defer lg.Sync()

			fx, closeFn, err := newFixture(cmd.Context(), lg, conf, nil, fixture.ModeReplay)
			if err != nil {
				return err
			}
			defer closeFn()

			n, err := fx.Purge(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d fixtures removed\n", n)

			return nil
		},
	})

	return cmd
}
