package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/extraction"
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/schemas"
	"github.com/jonathan/resume-parser/internal/vocabulary"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Extract structured fields from recognized resume text",
	Long:  "Extract structured candidate fields from one recognized-text file or a directory of .txt dumps, emitting one JSON record per document. A document that cannot be read yields an error record instead of aborting the batch.",
	RunE:  runParse,
}

var (
	parseInputPath          string
	parseOutputFile         string
	parseSkillsFile         string
	parseQualificationsFile string
	parseConfigFile         string
	parseWorkers            int
	parseVerbose            bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseInputPath, "in", "i", "", "Path to a recognized-text file or a directory of .txt dumps")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (stdout when empty)")
	parseCmd.Flags().StringVar(&parseSkillsFile, "skills", "", "Path to the skills vocabulary file (missing file = empty vocabulary)")
	parseCmd.Flags().StringVar(&parseQualificationsFile, "qualifications", "", "Path to the qualifications vocabulary file (missing file = empty vocabulary)")
	parseCmd.Flags().StringVar(&parseConfigFile, "config", "", "Path to JSON config file")
	parseCmd.Flags().IntVar(&parseWorkers, "workers", 0, "Maximum number of documents processed concurrently (0 = default)")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a formatted summary per document to stderr")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	// Flags take precedence; an explicit config file supplies defaults
	cfg := config.Config{
		Input:              parseInputPath,
		Output:             parseOutputFile,
		SkillsFile:         parseSkillsFile,
		QualificationsFile: parseQualificationsFile,
		Workers:            parseWorkers,
		Verbose:            parseVerbose,
	}
	if parseConfigFile != "" {
		fileCfg, err := config.LoadConfig(parseConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Input == "" {
		return fmt.Errorf("input path is required (use --in or config 'input')")
	}

	// Load each vocabulary once; both are shared across all documents
	skillsVocab, err := vocabulary.Load(cfg.SkillsFile)
	if err != nil {
		return err
	}
	qualificationsVocab, err := vocabulary.Load(cfg.QualificationsFile)
	if err != nil {
		return err
	}

	docs, err := ingestion.CollectDocuments(cfg.Input)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return fmt.Errorf("no documents found under %s", cfg.Input)
	}

	extractor := extraction.New(skillsVocab, qualificationsVocab)
	results := extractor.ProcessBatch(context.Background(), docs, extraction.BatchOptions{
		Workers: cfg.Workers,
	})

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		for _, result := range results {
			printer.PrintDocumentResult(result)
		}
	}

	// Validate each record against the output schema when it can be found
	if schemaPath := schemas.ResolveSchemaPath(filepath.Join("schemas", "extraction_result.schema.json")); schemaPath != "" {
		for _, result := range results {
			data, err := json.Marshal(result)
			if err != nil {
				return fmt.Errorf("failed to marshal result for %s: %w", result.File, err)
			}
			if err := schemas.ValidateDocumentResult(data, schemaPath); err != nil {
				return fmt.Errorf("result for %s failed schema validation: %w", result.File, err)
			}
		}
	}

	jsonBytes, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	if cfg.Output == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(cfg.Output, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %d results to %s\n", len(results), cfg.Output)
	return nil
}
