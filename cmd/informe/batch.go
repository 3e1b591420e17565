package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/nmoralesv/informe/internal/interpreter"
)

func batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Interpret a file of report requests",
		Long: `Read one report request per line and write the interpretations as
NDJSON, one object per line. Blank lines and lines starting with # are
skipped. Useful for evaluating the interpreter against a request corpus.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outPath, _ := cmd.Flags().GetString("output")

			requests, err := readRequests(args[0])
			if err != nil {
				return err
			}
			if len(requests) == 0 {
				return fmt.Errorf("no requests found in %s", args[0])
			}

			out := os.Stdout
			if outPath != "" {
				f, createErr := os.Create(outPath)
				if createErr != nil {
					return fmt.Errorf("failed to create output file: %w", createErr)
				}
				defer func() { _ = f.Close() }()
				out = f
			}

			bar := progressbar.NewOptions(len(requests),
				progressbar.OptionSetDescription("Interpreting"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
			)

			interp := interpreter.New()
			enc := json.NewEncoder(out)
			for _, request := range requests {
				if encodeErr := enc.Encode(interp.Interpret(request)); encodeErr != nil {
					return fmt.Errorf("failed to encode interpretation: %w", encodeErr)
				}
				_ = bar.Add(1)
			}
			_ = bar.Finish()
			fmt.Fprintln(os.Stderr)

			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "output file (default: stdout)")

	return cmd
}

func readRequests(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var requests []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		requests = append(requests, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return requests, nil
}
