package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"tabprof/internal/connectors"
	"tabprof/internal/dataset"
	"tabprof/internal/loader"
	"tabprof/internal/profiler"
	"tabprof/internal/render"
)

var (
	profileFormat    string
	profileOutput    string
	profileRecursive bool
	profileWorkers   int
	profileDelimiter string
	profileEncoding  string
	profileNulls     []string
	profileSheet     string
	profileTable     string
	profileMinSize   int64
	profileMaxSize   int64
)

// fileReport pairs a report with the source it was computed from.
type fileReport struct {
	Source   string          `json:"source"`
	Profiles profiler.Report `json:"profiles"`
}

var profileCmd = &cobra.Command{
	Use:   "profile [file or directory]",
	Short: "Profile columns of tabular files",
	Long: `Profile every column of a tabular dataset: distinct count, present
and missing counts, and completeness percentages. The report has one row
per input column, ordered by missing percentage then cardinality.

Supported sources: CSV, XLSX worksheets, SQLite tables.

Examples:
  tabprof profile permits.csv
  tabprof profile permits.csv --format csv --output report.csv
  tabprof profile data/ --recursive
  tabprof profile permits.xlsx --sheet Permits
  tabprof profile permits.db --table permits`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		applyConfigDefaults(cmd)

		target := args[0]
		info, err := os.Stat(target)
		if err != nil {
			log.Fatalf("Error accessing %s: %v", target, err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		var reports []fileReport
		if info.IsDir() {
			reports = profileDirectory(ctx, target)
		} else {
			reports = []fileReport{profileFile(ctx, target)}
		}

		if err := writeReports(reports); err != nil {
			log.Fatalf("Failed to write results: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)

	profileCmd.Flags().StringVar(&profileFormat, "format", "text",
		"Output format: text, csv or json")
	profileCmd.Flags().StringVar(&profileOutput, "output", "",
		"Output file to save results (default: stdout)")
	profileCmd.Flags().BoolVarP(&profileRecursive, "recursive", "r", false,
		"Process directories recursively")
	profileCmd.Flags().IntVar(&profileWorkers, "workers", 0,
		"Columns profiled concurrently (default: CPU count)")
	profileCmd.Flags().StringVar(&profileDelimiter, "delimiter", ",",
		"CSV field delimiter")
	profileCmd.Flags().StringVar(&profileEncoding, "encoding", "",
		"CSV character encoding (utf-8, latin1, windows-1252)")
	profileCmd.Flags().StringSliceVar(&profileNulls, "null", nil,
		"Cell values treated as missing (default: empty, NA, N/A, NULL)")
	profileCmd.Flags().StringVar(&profileSheet, "sheet", "",
		"Worksheet name for XLSX sources (default: first sheet)")
	profileCmd.Flags().StringVar(&profileTable, "table", "",
		"Table name for SQLite sources")
	profileCmd.Flags().Int64Var(&profileMinSize, "min-size", 0,
		"Minimum file size in bytes")
	profileCmd.Flags().Int64Var(&profileMaxSize, "max-size", 0,
		"Maximum file size in bytes")
}

// applyConfigDefaults fills unset flags from the YAML config.
func applyConfigDefaults(cmd *cobra.Command) {
	if !cmd.Flags().Changed("workers") && cfg.Workers > 0 {
		profileWorkers = cfg.Workers
	}
	if !cmd.Flags().Changed("delimiter") && cfg.Delimiter != "" {
		profileDelimiter = cfg.Delimiter
	}
	if !cmd.Flags().Changed("encoding") && cfg.Encoding != "" {
		profileEncoding = cfg.Encoding
	}
	if !cmd.Flags().Changed("null") && len(cfg.NullLiterals) > 0 {
		profileNulls = cfg.NullLiterals
	}
	if profileWorkers <= 0 {
		profileWorkers = runtime.NumCPU()
	}
}

func profileDirectory(ctx context.Context, dirPath string) []fileReport {
	options := connectors.DiscoveryOptions{
		Recursive: profileRecursive,
		MinSize:   profileMinSize,
		MaxSize:   profileMaxSize,
	}
	files, err := connectors.DiscoverFiles(dirPath, []string{"csv", "xlsx"}, options)
	if err != nil {
		log.Fatalf("Failed to discover files: %v", err)
	}
	if len(files) == 0 {
		log.Fatalf("No profilable files found in %s", dirPath)
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetDescription("[cyan][reset] Profiling files..."),
		progressbar.OptionSetWidth(20),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)

	var reports []fileReport
	for _, file := range files {
		reports = append(reports, profileFile(ctx, file.Path))
		bar.Add(1)
	}
	bar.Finish()
	return reports
}

func profileFile(ctx context.Context, path string) fileReport {
	ds, err := loadDataset(path)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", path, err)
	}

	rep, err := profiler.ProfileContext(ctx, ds, profiler.Options{Workers: profileWorkers})
	if err != nil {
		log.Fatalf("Failed to profile %s: %v", path, err)
	}
	return fileReport{Source: path, Profiles: rep}
}

func loadDataset(path string) (*dataset.Dataset, error) {
	var l loader.Loader
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv", ".txt":
		delim := ','
		if profileDelimiter != "" {
			delim = rune(profileDelimiter[0])
		}
		l = loader.NewCSVLoader(path, loader.CSVOptions{
			Delimiter:    delim,
			NullLiterals: profileNulls,
			Encoding:     profileEncoding,
			TrimSpace:    true,
		})
	case ".xlsx":
		l = loader.NewXLSXLoader(path, loader.XLSXOptions{
			Sheet:        profileSheet,
			NullLiterals: profileNulls,
			TrimSpace:    true,
		})
	case ".db", ".sqlite", ".sqlite3":
		l = loader.NewSQLiteLoader(path, profileTable)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", path)
	}
	return l.Load()
}

func writeReports(reports []fileReport) error {
	var out strings.Builder

	switch profileFormat {
	case "text":
		for i, r := range reports {
			if i > 0 {
				out.WriteString("\n")
			}
			if err := render.Text(&out, r.Source, r.Profiles); err != nil {
				return err
			}
		}
	case "csv":
		for _, r := range reports {
			if len(reports) > 1 {
				out.WriteString("# " + r.Source + "\n")
			}
			if err := r.Profiles.WriteCSV(&out); err != nil {
				return err
			}
		}
	case "json":
		enc := json.NewEncoder(&out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q", profileFormat)
	}

	if profileOutput != "" {
		if err := os.WriteFile(profileOutput, []byte(out.String()), 0644); err != nil {
			return err
		}
		fmt.Printf("Results saved to %s\n", profileOutput)
		return nil
	}
	fmt.Print(out.String())
	return nil
}
