package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"rowstore/internal"
	"rowstore/internal/heap"
)

const Version = "0.1.0"

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "rowstore",
	Short: "rowstore - a minimal page-backed row store",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := internal.LoadConfig(cfgPath)
		if err != nil {
			return err
		}

		level := slog.LevelInfo
		if debug || cfg.Repl.Debug {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		codec, err := cfg.BuildCodec()
		if err != nil {
			return err
		}

		var opts []heap.TableOption
		if cfg.Cache.Rows > 0 {
			opts = append(opts, heap.WithRowCache(cfg.Cache.Rows))
		}
		if cfg.Storage.RowsPerPage > 0 {
			opts = append(opts, heap.WithRowsPerPage(cfg.Storage.RowsPerPage))
		}
		tbl, err := heap.NewTable("users", codec, cfg.Storage.PageSize, opts...)
		if err != nil {
			return err
		}
		defer tbl.Close()

		return runREPL(cfg, tbl, logger)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.AddCommand(versionCmd)
}
