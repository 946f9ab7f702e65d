package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/xlsx2md"
	"github.com/bjaus/xlsx2md/source"
)

const (
	outputTable = "table"
	outputYAML  = "yaml"
)

func newSheetsCommand(logger *logrus.Logger) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "sheets <file>",
		Short: "List the worksheets of a workbook",
		Long: `List the worksheets of a workbook with their dimensions.

The sheet marked active is the one converted when --sheet is not given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sheets, err := source.Sheets(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			logger.WithFields(logrus.Fields{"source": args[0], "sheets": len(sheets)}).Debug("listed sheets")
			return printSheets(cmd.OutOrStdout(), format, sheets)
		},
	}
	cmd.Flags().StringVar(&format, "output-format", outputTable, "output format: table or yaml")
	return cmd
}

func printSheets(w io.Writer, format string, sheets []source.Sheet) error {
	switch format {
	case outputTable:
		table := tablewriter.NewWriter(w)
		table.SetAutoFormatHeaders(false)
		table.SetAutoWrapText(false)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetHeader([]string{"#", "Name", "Rows", "Columns", "Active"})
		for _, s := range sheets {
			active := ""
			if s.Active {
				active = "*"
			}
			table.Append([]string{
				strconv.Itoa(s.Index),
				s.Name,
				strconv.Itoa(s.Rows),
				strconv.Itoa(s.Columns),
				active,
			})
		}
		table.Render()
		return nil
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(sheets); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: unknown output format %q", xlsx2md.ErrInvalidArgument, format)
	}
}
