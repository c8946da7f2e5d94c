package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"ifcsheet/domain/ifc"
	"ifcsheet/domain/stats"
	"ifcsheet/domain/upload"
	"ifcsheet/internal/charts"
	"ifcsheet/internal/config"
	"ifcsheet/internal/container"
	"ifcsheet/internal/testkit"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ifcsheet-cli",
		Short:         "Count IFC components and describe spreadsheets from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newCountCmd(),
		newDescribeCmd(),
		newSampleCmd(),
	)
	return rootCmd
}

func newContainer() (*container.Container, error) {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return container.New(cfg)
}

func newCountCmd() *cobra.Command {
	var scope string
	var pdfPath string
	var chartKind string

	cmd := &cobra.Command{
		Use:   "count <file.ifc>",
		Short: "Count the entities of an IFC file by type",
		Long: `Count the entities of an IFC file by type, most frequent first.

Example: ifcsheet-cli count office.ifc --scope products --pdf office-counts.pdf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newContainer()
			if err != nil {
				return err
			}
			file, err := loadFile(upload.ModeIFC, args[0])
			if err != nil {
				return err
			}

			result, err := c.IFCService.Count(cmd.Context(), file, ifc.ParseScope(scope))
			if err != nil {
				return err
			}
			if err := printCounts(cmd.OutOrStdout(), result.Rows, result.Total); err != nil {
				return err
			}

			if pdfPath == "" {
				return nil
			}
			return writeFile(pdfPath, func(w io.Writer) error {
				return c.IFCService.ExportPDF(w, result, charts.ParseKind(chartKind))
			})
		},
	}

	cmd.Flags().StringVar(&scope, "scope", string(ifc.ScopeAll), "Entities to count: all or products")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "Also export the chart and table to this PDF file")
	cmd.Flags().StringVar(&chartKind, "chart", string(charts.KindBar), "Chart type for the PDF: bar or pie")
	return cmd
}

func newDescribeCmd() *cobra.Command {
	var sheet string
	var column string
	var pdfPath string

	cmd := &cobra.Command{
		Use:   "describe <file.xlsx|file.csv>",
		Short: "Print summary statistics of the numeric columns of a sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newContainer()
			if err != nil {
				return err
			}
			file, err := loadFile(upload.ModeExcel, args[0])
			if err != nil {
				return err
			}

			result, err := c.ExcelService.Analyze(cmd.Context(), file, sheet, column)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sheet %q: %d rows, %d columns (sheets: %s)\n\n",
				result.Table.Sheet, result.Table.RowCount(), len(result.Table.Headers), strings.Join(result.Table.Sheets, ", "))
			if err := printSummary(out, result.Summary); err != nil {
				return err
			}

			if pdfPath == "" {
				return nil
			}
			return writeFile(pdfPath, func(w io.Writer) error {
				return c.ExcelService.ExportPDF(w, result)
			})
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "Sheet to read (default: first sheet)")
	cmd.Flags().StringVar(&column, "column", "", "Column charted in the PDF (default: first numeric column)")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "Also export the chart and statistics to this PDF file")
	return cmd
}

func newSampleCmd() *cobra.Command {
	var seed int64
	var storeys int

	cmd := &cobra.Command{
		Use:   "sample <dir>",
		Short: "Write a generated sample.ifc and sample.xlsx into dir",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := testkit.DefaultBuildingConfig()
			cfg.Seed = seed
			cfg.Storeys = storeys
			gen := testkit.NewBuildingDataGenerator(cfg)

			workbook, err := gen.ScheduleWorkbook()
			if err != nil {
				return err
			}
			if err := os.MkdirAll(args[0], 0o755); err != nil {
				return err
			}
			files := map[string][]byte{"sample.ifc": gen.IFCFile(), "sample.xlsx": workbook}
			for _, name := range []string{"sample.ifc", "sample.xlsx"} {
				path := filepath.Join(args[0], name)
				if err := os.WriteFile(path, files[name], 0o644); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 42, "Random seed for deterministic generation")
	cmd.Flags().IntVar(&storeys, "storeys", 3, "Number of storeys")
	return cmd
}

func loadFile(mode upload.Mode, path string) (*upload.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return upload.NewFile(mode, filepath.Base(path), data), nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printCounts(w io.Writer, rows []ifc.TypeCount, total int) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Type\tCount\t")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%d\t\n", row.Type, row.Count)
	}
	fmt.Fprintf(tw, "Total\t%d\t\n", total)
	return tw.Flush()
}

func printSummary(w io.Writer, summary stats.Summary) error {
	if summary.IsEmpty() {
		_, err := fmt.Fprintln(w, "no numeric columns")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, strings.Join(stats.StatHeaders, "\t")+"\t")
	for _, c := range summary.Columns {
		fmt.Fprintln(tw, strings.Join(c.Cells(), "\t")+"\t")
	}
	return tw.Flush()
}
