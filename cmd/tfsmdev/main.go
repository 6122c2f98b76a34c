// Package main provides the CLI entry point for tfsmdev, a development
// helper for TextFSM template libraries laid out like ntc-templates.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/ntcforge/tfsmdev/log"
	"github.com/ntcforge/tfsmdev/runner"
	"github.com/ntcforge/tfsmdev/version"
	"github.com/ntcforge/tfsmdev/workspace"
	"github.com/ntcforge/tfsmdev/yamlfmt"
)

func main() {
	cfg := workspace.NewConfig()
	logCfg := log.NewConfig()

	rootCmd := &cobra.Command{
		Use:   "tfsmdev -v <vendor> -c <command> [flags]",
		Short: "Develop and test TextFSM templates",
		Long: `tfsmdev maintains a TextFSM template library laid out like ntc-templates:
it scaffolds raw/template file pairs, runs templates against raw samples,
rewrites whitespace in template rules, and writes canonically formatted
YAML result files.`,
		Version:       version.Short(),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			handler, err := logCfg.NewHandler(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			slog.SetDefault(slog.New(handler))

			return run(cfg, cmd)
		},
	}

	cfg.RegisterFlags(rootCmd.Flags())
	logCfg.RegisterFlags(rootCmd.PersistentFlags())

	for _, flag := range []string{cfg.Flags.Vendor, cfg.Flags.Command} {
		err := rootCmd.MarkFlagRequired(flag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "mark %s required: %v\n", flag, err)
		}
	}

	for _, register := range []func(*cobra.Command) error{
		cfg.RegisterCompletions,
		logCfg.RegisterCompletions,
	} {
		err := register(rootCmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
		}
	}

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// run dispatches to the selected operation; the first selector set wins,
// falling through to running the template and printing its records.
func run(cfg *workspace.Config, cmd *cobra.Command) error {
	switch {
	case cfg.Generate:
		return scaffold(cfg)
	case cfg.Blank:
		return blankSub(cfg)
	case cfg.YAML:
		return writeResults(cfg)
	case cfg.Short:
		return printIndexLine(cfg, cmd.InOrStdin(), cmd.OutOrStdout())
	}

	return runTemplate(cfg, cmd.OutOrStdout())
}

func scaffold(cfg *workspace.Config) error {
	err := workspace.Scaffold(cfg.Vendor, cfg.Command, cfg.Index)
	if err != nil {
		return err
	}

	rawPath, templatePath := workspace.Files(cfg.Vendor, cfg.Command, cfg.Index)
	slog.Info("scaffolded file pair", "raw", rawPath, "template", templatePath)

	return nil
}

func blankSub(cfg *workspace.Config) error {
	_, templatePath := workspace.Files(cfg.Vendor, cfg.Command, cfg.Index)

	err := workspace.BlankSub(templatePath)
	if err != nil {
		return err
	}

	slog.Info("rewrote rule whitespace", "template", templatePath)

	return nil
}

// runTemplate runs the template against the selected raw sample and prints
// the parsed records as YAML.
func runTemplate(cfg *workspace.Config, w io.Writer) error {
	rawPath, templatePath := workspace.Files(cfg.Vendor, cfg.Command, cfg.Index)

	records, err := parseRaw(templatePath, rawPath)
	if err != nil {
		return err
	}

	out, err := yaml.MarshalWithOptions(records, yaml.Indent(2), yaml.IndentSequence(true))
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}

	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("print records: %w", err)
	}

	slog.Info("parsed raw sample", "raw", rawPath, "records", len(records))

	return nil
}

// writeResults regenerates the canonical .yml result file for every raw
// sample of the command: stale .yml files are removed first, then each
// sample is parsed and written back out.
func writeResults(cfg *workspace.Config) error {
	rawPath, templatePath := workspace.Files(cfg.Vendor, cfg.Command, 1)
	rawDir := filepath.Dir(rawPath)

	entries, err := os.ReadDir(rawDir)
	if err != nil {
		return fmt.Errorf("list raw samples: %w", err)
	}

	rawCount := 0

	for _, entry := range entries {
		name := entry.Name()

		switch {
		case strings.HasSuffix(name, ".yml"):
			err := os.Remove(filepath.Join(rawDir, name))
			if err != nil {
				return fmt.Errorf("remove stale results: %w", err)
			}

		case strings.HasSuffix(name, ".raw"):
			rawCount++
		}
	}

	for index := 1; index <= rawCount; index++ {
		rawPath, _ := workspace.Files(cfg.Vendor, cfg.Command, index)

		records, err := parseRaw(templatePath, rawPath)
		if err != nil {
			return err
		}

		resultPath := workspace.ResultFile(rawPath)

		err = yamlfmt.WriteFile(yamlfmt.NewDocument(records), resultPath)
		if err != nil {
			return err
		}

		slog.Info("wrote canonical results", "file", resultPath, "records", len(records))
	}

	return nil
}

// printIndexLine prompts for the shortest form of the command and prints the
// index registration line for the template.
func printIndexLine(cfg *workspace.Config, r io.Reader, w io.Writer) error {
	fmt.Fprint(w, "input shortest cmd: ")

	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		err := scanner.Err()
		if err != nil {
			return fmt.Errorf("read short command: %w", err)
		}

		return fmt.Errorf("read short command: no input")
	}

	short := strings.TrimSpace(scanner.Text())
	line := workspace.IndexLine(cfg.Vendor, cfg.Command, cfg.Index, short)

	fmt.Fprintf(w, "\n%s\n\n", line)

	return nil
}

func parseRaw(templatePath, rawPath string) ([]yaml.MapSlice, error) {
	tmpl, err := runner.Load(templatePath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(rawPath)
	if err != nil {
		return nil, fmt.Errorf("read raw sample: %w", err)
	}

	return tmpl.Run(string(data))
}
