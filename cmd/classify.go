package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"lexitag/internal/clix"
	"lexitag/internal/models"
	"lexitag/internal/services"
)

var (
	classifyInput   string
	classifyColumn  string
	classifyOutput  string
	classifyDict    string
	classifyNoWrite bool
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a CSV file and write the augmented copy",
	Long: `Reads a CSV file, labels every row by matching the chosen text column
against the keyword dictionary, and writes the table back out with a
"classification" column appended.

Without --dict the built-in marketing categories are used; with --dict the
categories come from a YAML dictionary file (see 'lexitag category').`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		appInstance, err := GetAppFromContext(ctx)
		if err != nil {
			return fmt.Errorf("failed to get app instance: %w", err)
		}

		filter, err := clix.ParseFilter(cmd.Flags())
		if err != nil {
			return err
		}
		previewRows, err := clix.ParsePreviewRows(cmd.Flags())
		if err != nil {
			return err
		}

		dict, err := appInstance.NewDictionary(ctx, classifyDict)
		if err != nil {
			return fmt.Errorf("failed to prepare dictionary: %w", err)
		}

		f, err := os.Open(classifyInput)
		if err != nil {
			return fmt.Errorf("failed to open input file: %w", err)
		}
		defer f.Close()

		ds, err := appInstance.Datasets.ParseCSV(f, filepath.Base(classifyInput))
		if err != nil {
			return fmt.Errorf("failed to parse input file: %w", err)
		}

		svc := services.NewClassificationService(dict)
		labeled, err := svc.ClassifyDataset(ctx, ds, classifyColumn)
		if err != nil {
			return fmt.Errorf("classification failed: %w", err)
		}

		summary, err := svc.Summarize(labeled)
		if err != nil {
			return err
		}
		shown, err := svc.FilterResults(labeled, filter)
		if err != nil {
			return fmt.Errorf("invalid filter %q: %w", filter, err)
		}

		printResultsTable(shown, classifyColumn, previewRows)
		printSummary(summary)

		if classifyNoWrite {
			return nil
		}
		out, err := os.Create(classifyOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer out.Close()
		if err := appInstance.Datasets.WriteCSV(out, labeled); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Printf("Wrote %d classified rows to %s\n", labeled.RowCount(), classifyOutput)
		return nil
	},
}

func printResultsTable(ds *models.Dataset, column string, previewRows int) {
	if ds.RowCount() == 0 {
		fmt.Println("No rows matched the filter.")
		return
	}
	textIdx := ds.ColumnIndex(column)
	labelIdx := ds.ColumnIndex(models.ClassificationColumn)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"#", column, "Classification"})
	table.SetBorder(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	shown := ds.Rows
	if previewRows > 0 && previewRows < len(shown) {
		shown = shown[:previewRows]
	}
	for i, row := range shown {
		text := row[textIdx]
		if len(text) > 60 {
			text = text[:60] + "..."
		}
		table.Append([]string{strconv.Itoa(i + 1), text, row[labelIdx]})
	}
	table.Render()
	if len(shown) < ds.RowCount() {
		fmt.Printf("... and %d more rows\n", ds.RowCount()-len(shown))
	}
}

func printSummary(summary *services.Summary) {
	fmt.Printf("\nTotal: %d  %s: %d  %s: %d\n",
		summary.Total,
		color.GreenString("Classified"), summary.Classified,
		color.YellowString("Unclassified"), summary.Unclassified)
	for _, lc := range summary.Distribution {
		fmt.Printf("  %-50s %d\n", lc.Label, lc.Count)
	}
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().StringVarP(&classifyInput, "input", "i", "", "CSV file to classify (required)")
	classifyCmd.Flags().StringVarP(&classifyColumn, "column", "c", "", "Name of the text column to classify (required)")
	classifyCmd.Flags().StringVarP(&classifyOutput, "output", "o", "classified_data.csv", "Where to write the augmented CSV")
	classifyCmd.Flags().StringVarP(&classifyDict, "dict", "d", "", "YAML dictionary file (default: built-in categories)")
	classifyCmd.Flags().String("filter", "all", "Rows to show: all, classified, unclassified, or a category name")
	classifyCmd.Flags().Int("preview", 10, "Number of result rows to print (0 = all)")
	classifyCmd.Flags().BoolVar(&classifyNoWrite, "no-write", false, "Skip writing the output file")
	classifyCmd.MarkFlagRequired("input")
	classifyCmd.MarkFlagRequired("column")
}
