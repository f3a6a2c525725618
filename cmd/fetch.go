package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"subsidiaries-cli/internal/api"
	"subsidiaries-cli/internal/tabular"
	"time"

	"github.com/spf13/cobra"
)

var (
	fetchOutput  string
	fetchOutFile string
	fetchPreview int
	fetchColumn  string
	fetchSilent  bool
	fetchNoSave  bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [parent_name]",
	Short: "Fetch subsidiaries of a parent company and export them as CSV",
	Long: `Fetches the subsidiaries of a parent company, removes internal bookkeeping
columns, saves the result as a timestamped CSV file in the 'result' directory
and prints a preview of the first rows.
Examples:
  subsidiaries fetch "Acme Corp"
  subsidiaries fetch "Acme Corp" -o csv --preview 10
  subsidiaries fetch "Acme Corp" --column name --no-save`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parentName := strings.TrimSpace(args[0])
		if parentName == "" {
			fmt.Fprintln(os.Stderr, "Please enter a parent name.")
			return
		}

		client := api.NewClient()

		if !fetchSilent {
			fmt.Fprintf(os.Stderr, "Fetching subsidiary data for '%s'...\n", parentName)
		}

		envelope, err := client.GetSubsidiaries(parentName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching data: %v\n", err)
			return
		}

		if len(envelope.Subsidiaries) == 0 {
			fmt.Fprintln(os.Stderr, "No subsidiaries found for the given criteria.")
			return
		}

		// The preview and the export are taken from the same filtered table,
		// so the two can never diverge.
		table := tabular.Flatten(envelope.Subsidiaries).Drop(tabular.ExcludedColumns)

		if !fetchSilent {
			fmt.Fprintf(os.Stderr, "Found %d subsidiaries.\n", envelope.Count)
		}

		if !fetchNoSave {
			csvData, err := table.CSV()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error converting data to CSV: %v\n", err)
				return
			}

			fileName := fetchOutFile
			if fileName == "" {
				// Timestamp at export time, not at query time.
				timestamp := time.Now().Format("20060102_150405")
				fileName = fmt.Sprintf("%s_subsidiaries_%s.csv", sanitizeFilename(parentName), timestamp)
			}
			destPath := resolvePath(fileName)

			if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
				fmt.Fprintf(os.Stderr, "Error creating result directory: %v\n", err)
				return
			}
			if err := os.WriteFile(destPath, csvData, 0644); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing CSV file: %v\n", err)
				return
			}

			absPath, _ := filepath.Abs(destPath)
			if !fetchSilent {
				fmt.Fprintf(os.Stderr, "Saved CSV to %s\n", absPath)
			} else {
				// Even in silent mode, print the file path to stdout for
				// piping/scripting usage.
				fmt.Println(absPath)
			}
		}

		if fetchSilent {
			return
		}

		if fetchColumn != "" {
			printColumnValues(table, fetchColumn)
			return
		}

		if fetchPreview > 0 {
			printPreview(table.Head(fetchPreview), fetchOutput)
		}
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().StringVarP(&fetchOutput, "output", "o", "table", "Preview format: table, csv, json")
	fetchCmd.Flags().StringVarP(&fetchOutFile, "file", "f", "", "Output file path (default saved to 'result/' directory)")
	fetchCmd.Flags().IntVar(&fetchPreview, "preview", 5, "Number of preview rows (0 disables the preview)")
	fetchCmd.Flags().StringVar(&fetchColumn, "column", "", "Output only a specific column's distinct values to console")
	fetchCmd.Flags().BoolVar(&fetchSilent, "silent", false, "Suppress console output")
	fetchCmd.Flags().BoolVar(&fetchNoSave, "no-save", false, "Preview only, do not write a CSV file")
}

// sanitizeFilename replaces characters that are illegal/unsafe in filenames
func sanitizeFilename(name string) string {
	reg := regexp.MustCompile(`[\\/:*?"<>|]`)
	safe := reg.ReplaceAllString(name, "_")
	safe = strings.Trim(safe, " .")
	if safe == "" {
		return "subsidiaries"
	}
	return safe
}

func resolvePath(path string) string {
	if !filepath.IsAbs(path) && !strings.HasPrefix(path, "result"+string(os.PathSeparator)) && !strings.HasPrefix(path, "result/") {
		return filepath.Join("result", path)
	}
	return path
}

func printPreview(table *tabular.Table, format string) {
	switch strings.ToLower(format) {
	case "json":
		preview := struct {
			Columns []string   `json:"columns"`
			Rows    [][]string `json:"rows"`
		}{Columns: table.Columns, Rows: table.Rows}
		output, _ := json.MarshalIndent(preview, "", "  ")
		fmt.Println(string(output))
	case "csv":
		writer := csv.NewWriter(os.Stdout)
		defer writer.Flush()
		writer.Write(table.Columns)
		for _, row := range table.Rows {
			writer.Write(row)
		}
	default:
		// table: tab-separated with a header line
		fmt.Println(strings.Join(table.Columns, "\t"))
		for _, row := range table.Rows {
			fmt.Println(strings.Join(row, "\t"))
		}
	}
}

func printColumnValues(table *tabular.Table, column string) {
	idx := -1
	for i, col := range table.Columns {
		if col == column {
			idx = i
			break
		}
	}
	if idx == -1 {
		fmt.Fprintf(os.Stderr, "Column %q not found in result.\n", column)
		return
	}

	seen := make(map[string]bool)
	var values []string
	for _, row := range table.Rows {
		val := row[idx]
		if val != "" && !seen[val] {
			seen[val] = true
			values = append(values, val)
		}
	}
	sort.Strings(values)

	for _, v := range values {
		fmt.Println(v)
	}
}
