package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/diyarkek/lvm/pkg/vm"
)

var (
	flagTrace     bool
	flagNoDump    bool
	flagLogFormat string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(2)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "lvm <path>",
		Short:         "Run an LVM bytecode program",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runLVM,
	}
	cmd.Flags().BoolVar(&flagTrace, "trace", false, "log each executed instruction at debug level")
	cmd.Flags().BoolVar(&flagNoDump, "no-dump", false, "suppress the halt diagnostic dump")
	cmd.Flags().StringVar(&flagLogFormat, "log-format", "text", `log output format: "text" or "json"`)
	return cmd
}

func newLogger() (*logrus.Logger, error) {
	log := logrus.New()
	switch flagLogFormat {
	case "text":
		log.SetFormatter(&logrus.TextFormatter{})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown --log-format %q", flagLogFormat)
	}
	if flagTrace {
		log.SetLevel(logrus.DebugLevel)
	}
	return log, nil
}

func runLVM(cmd *cobra.Command, args []string) error {
	path := args[0]

	log, err := newLogger()
	if err != nil {
		return err
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	machine := vm.New(os.Stdout, os.Stdin, log)
	machine.SetTrace(flagTrace)
	if flagNoDump {
		machine.SetDumpWriter(io.Discard)
	}

	if err := machine.Load(string(source), path); err != nil {
		log.WithError(err).Error("failed to load program")
		os.Exit(1)
	}

	err = machine.Run()
	var halt *vm.ErrHalt
	switch {
	case err == nil:
		os.Exit(0)
	case asHalt(err, &halt):
		os.Exit(halt.Code)
	default:
		log.WithError(err).Error("program terminated abnormally")
		os.Exit(1)
	}
	return nil
}

// asHalt reports whether err is a *vm.ErrHalt, copying it into *halt.
// errors.As isn't used here since ErrHalt wraps nothing; a direct type
// assertion keeps the happy path (halt is the common, not exceptional,
// termination) free of the reflection errors.As does.
func asHalt(err error, halt **vm.ErrHalt) bool {
	h, ok := err.(*vm.ErrHalt)
	if !ok {
		return false
	}
	*halt = h
	return true
}
