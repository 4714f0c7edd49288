package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"tsmls/internal/config"
	"tsmls/internal/server"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

// Version will be set during the build process using ldflags
var Version = "(dev) v0.0.0"

func main() {
	cfg := config.Default()

	var logfile string
	var stdio bool

	rootCmd := &cobra.Command{
		Use:          "tsmls",
		Short:        "Language server validating folder arrays against a suggestions directory",
		Version:      Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// 4 Cores
			runtime.GOMAXPROCS(4)

			// Logging
			if logfile != "" {
				logFile, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
				if err != nil {
					return fmt.Errorf("failed to open log file: %w", err)
				}
				defer logFile.Close()
				log.SetOutput(logFile)
				log.SetFlags(log.Ldate | log.Ltime | log.Llongfile)
				log.Println("Starting tsmls language server...")
			} else {
				log.SetOutput(io.Discard)
			}
			commonlog.Configure(2, nil) // Logger used by glsp

			srv, err := server.NewServer(cfg, Version)
			if err != nil {
				return fmt.Errorf("failed to create server: %w", err)
			}
			return srv.RunStdio()
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&cfg.CandidateRoot, "suggestionsdir", "s", cfg.CandidateRoot, "directory to provide as suggestions")
	flags.StringVarP(&cfg.TargetIdentifier, "identifier", "i", cfg.TargetIdentifier, "variable name whose array literal is validated")
	flags.StringVarP(&cfg.TriggerPrefix, "prefix", "p", cfg.TriggerPrefix, "substring to search for in line trigger mode")
	flags.StringVar(&cfg.TriggerMode, "trigger", cfg.TriggerMode, "completion trigger mode (literal|line)")
	flags.StringVar(&cfg.Severity, "severity", cfg.Severity, "diagnostic severity (error|warning|information|hint)")
	flags.IntVar(&cfg.MatchLimit, "limit", cfg.MatchLimit, "maximum quick-fix suggestions per diagnostic")
	flags.BoolVar(&stdio, "stdio", false, "use the stdio transport (always on; accepted for LSP client compatibility)")
	flags.StringVar(&logfile, "logfile", "", "path to log file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
