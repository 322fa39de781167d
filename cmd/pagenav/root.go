package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	logFormat string
	debug     bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	logger := logrus.New()

	cmd := &cobra.Command{
		Use:          "pagenav",
		Short:        "Render pagination navigation",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogger(logger, cmd.ErrOrStderr(), opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(newRenderCmd(logger))

	return cmd
}

func setupLogger(logger *logrus.Logger, out io.Writer, opts *rootOptions) error {
	switch opts.logFormat {
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	default:
		return fmt.Errorf("unknown log format '%s'", opts.logFormat)
	}

	logger.SetOutput(out)
	logger.SetLevel(logrus.InfoLevel)
	if opts.debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	return nil
}
