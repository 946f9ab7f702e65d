package main

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bjaus/xlsx2md"
	"github.com/bjaus/xlsx2md/source"
)

type rootCommandParams struct {
	style     string
	align     []string
	emptyCell string
	maxWidth  int
	sheet     string
	delimiter string
	encoding  string
	output    string
	config    string
	verbose   bool
}

func newRootCommand(logger *logrus.Logger) *cobra.Command {
	params := &rootCommandParams{}

	cmd := &cobra.Command{
		Use:   "xlsx2md [file]",
		Short: "Convert spreadsheet and CSV data to Markdown tables",
		Long: `Convert spreadsheet and CSV data to Markdown tables.

The first row of the source is used as the table header. Excel workbooks
(.xlsx, .xlsm) and delimited text (.csv, .tsv, .txt) are supported. Without a
file argument, or with "-", CSV is read from stdin.

Styles:
  default  GitHub-flavored Markdown pipe table
  minimal  space-aligned columns without pipes
  grid     boxed grid table

Every flag can also be set with an XLSX2MD_<FLAG> environment variable
(dashes become underscores) or in a YAML file passed with --config.

Examples:
  xlsx2md report.xlsx
  xlsx2md report.xlsx --sheet Sales --style grid
  xlsx2md users.csv --align left,right --empty-cell - -o users.md`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := applyEnvironment(cmd, params.config); err != nil {
				return err
			}
			if params.verbose {
				logger.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return convert(cmd, logger, params, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&params.style, "style", "s", string(xlsx2md.Default), "table style: default, minimal or grid")
	flags.StringSliceVarP(&params.align, "align", "a", nil, "comma separated column alignments: left, center or right")
	flags.StringVar(&params.emptyCell, "empty-cell", "", "text used for empty cells")
	flags.IntVar(&params.maxWidth, "max-width", 0, "maximum cell width, 0 for no limit")
	flags.StringVar(&params.sheet, "sheet", "", "worksheet to read, defaults to the active sheet")
	flags.StringVar(&params.delimiter, "delimiter", "", `CSV delimiter, detected when empty ("tab" for tabs)`)
	flags.StringVar(&params.encoding, "encoding", "", "CSV text encoding, e.g. windows-1252 (default utf-8)")
	flags.StringVarP(&params.output, "output", "o", "", "write the table to a file instead of stdout")

	persistent := cmd.PersistentFlags()
	persistent.StringVar(&params.config, "config", "", "YAML file with default flag values")
	persistent.BoolVarP(&params.verbose, "verbose", "v", false, "log debug information to stderr")

	cmd.AddCommand(newSheetsCommand(logger))
	return cmd
}

func convert(cmd *cobra.Command, logger *logrus.Logger, params *rootCommandParams, args []string) error {
	style, err := xlsx2md.ParseStyle(params.style)
	if err != nil {
		return err
	}
	delim, err := parseDelimiter(params.delimiter)
	if err != nil {
		return err
	}
	opts := source.Options{
		Sheet: params.sheet,
		CSV:   source.CSVOptions{Delimiter: delim, Encoding: params.encoding},
	}

	name := "stdin"
	var grid [][]xlsx2md.Cell
	if len(args) == 0 || args[0] == "-" {
		grid, err = source.ReadCSV(cmd.InOrStdin(), opts.CSV)
	} else {
		name = args[0]
		grid, err = source.Open(name, opts)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	cols := 0
	if len(grid) > 0 {
		cols = len(grid[0])
	}
	log := logger.WithFields(logrus.Fields{"source": name, "rows": len(grid), "cols": cols, "style": style})
	if cols == 0 {
		log.Warn("no data to render")
	} else {
		log.Debug("read grid")
	}

	var file *os.File
	out := cmd.OutOrStdout()
	if params.output != "" && params.output != "-" {
		file, err = os.Create(params.output)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}

	err = xlsx2md.Write(out, grid, xlsx2md.Options{
		Style:     style,
		Align:     xlsx2md.ParseAlignments(params.align),
		EmptyCell: params.emptyCell,
		MaxWidth:  params.maxWidth,
	})
	if err != nil {
		return err
	}
	if file != nil {
		if err := file.Close(); err != nil {
			return err
		}
		log.WithField("output", params.output).Debug("wrote table")
	}
	return nil
}

// parseDelimiter accepts a single character or the names "tab" and `\t`.
func parseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case "tab", `\t`:
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || r == utf8.RuneError || r == '"' || r == '\r' || r == '\n' {
		return 0, fmt.Errorf("%w: invalid delimiter %q", xlsx2md.ErrInvalidArgument, s)
	}
	return r, nil
}
