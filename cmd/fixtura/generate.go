package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/fixtura"
	"github.com/aretw0/fixtura/pkg/domain"
	"github.com/aretw0/fixtura/pkg/schema"
	"github.com/spf13/cobra"
)

//go:embed example.yaml
var exampleSchema []byte

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate test cases from a schema file",
	Long: `Generates records from a YAML or JSON schema and writes them to stdout.
Without --schema the built-in example schema is used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("schema")
		format, _ := cmd.Flags().GetString("format")
		verify, _ := cmd.Flags().GetBool("verify")

		if cmd.Flags().Changed("count") {
			cfg.Count, _ = cmd.Flags().GetInt("count")
		}
		if cmd.Flags().Changed("workers") {
			cfg.Workers, _ = cmd.Flags().GetInt("workers")
		}
		if cmd.Flags().Changed("seed") {
			seed, _ := cmd.Flags().GetUint64("seed")
			cfg.Seed = &seed
		}

		sc, err := loadSchema(path)
		if err != nil {
			return err
		}

		opts := []fixtura.Option{
			fixtura.WithLogger(logger),
			fixtura.WithWorkers(cfg.Workers),
			fixtura.WithSource("cli"),
		}
		if cfg.Seed != nil {
			opts = append(opts, fixtura.WithSeed(*cfg.Seed))
		}
		engine := fixtura.New(opts...)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cases, err := engine.GenerateTestCasesContext(ctx, cfg.Count, sc)
		if err != nil {
			return err
		}

		if verify {
			if err := verifyCases(sc, cases); err != nil {
				return err
			}
			logger.Info("Verified test cases", "count", len(cases))
		}

		return writeCases(cmd.OutOrStdout(), format, cases)
	},
}

func loadSchema(path string) (domain.Schema, error) {
	if path == "" {
		logger.Debug("No schema given, using built-in example")
		return schema.Parse(exampleSchema)
	}
	return schema.Load(path)
}

func verifyCases(sc domain.Schema, cases domain.TestCaseSet) error {
	for i, rec := range cases {
		if err := schema.Conforms(sc, rec); err != nil {
			for _, verr := range schema.ValidationErrors(err) {
				logger.Error("Record does not conform", "case", i, "error", verr)
			}
			return fmt.Errorf("case %d does not conform to schema: %w", i, err)
		}
	}
	return nil
}

func writeCases(w io.Writer, format string, cases domain.TestCaseSet) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cases)
	case "jsonl":
		enc := json.NewEncoder(w)
		for _, rec := range cases {
			if err := enc.Encode(rec); err != nil {
				return err
			}
		}
		return nil
	case "text":
		for i, rec := range cases {
			if _, err := fmt.Fprintf(w, "Test Case %d: %s\n", i+1, rec); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (supported: json, jsonl, text)", format)
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("schema", "s", "", "Schema file (YAML or JSON)")
	generateCmd.Flags().IntP("count", "n", 5, "Number of test cases")
	generateCmd.Flags().Uint64("seed", 0, "Seed for reproducible output")
	generateCmd.Flags().IntP("workers", "w", 1, "Parallel workers")
	generateCmd.Flags().StringP("format", "f", "json", "Output format: json, jsonl or text")
	generateCmd.Flags().Bool("verify", false, "Check every record against the schema before writing")
}
