// Command xlsx2md converts spreadsheet and CSV files to Markdown tables.
package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run executes the command line and logs any failure to stderr.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	logger := newLogger(stderr)
	cmd := newRootCommand(logger)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		logger.WithError(err).Error("conversion failed")
		return err
	}
	return nil
}

func newLogger(w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	logger.SetLevel(logrus.InfoLevel)
	return logger
}
