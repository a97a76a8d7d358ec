package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/phyten/commentx/internal/server"
)

func newServeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the extraction API over HTTP",
		Args:  maxArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			s := a.settings.Server
			srv := server.New(server.Config{
				MaxBodyBytes: int64(s.MaxBodyBytes),
				ReadTimeout:  s.ReadTimeout,
				Separator:    a.settings.Extract.JoinSeparator,
			}, a.registry, a.logger, reg)
			return srv.ListenAndServe(cmd.Context(), s.Addr)
		},
	}
	cmd.Flags().String("addr", "", "listen address (default 127.0.0.1:8765)")
	cmd.Flags().Int("max-body-bytes", 0, "maximum request body size")
	cmd.Flags().String("read-timeout", "", "request read timeout (e.g. 10s)")
	cmd.Flags().String("separator", "", `string joining comment bodies in /api/selection`)
	return cmd
}
