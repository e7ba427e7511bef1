package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"iomode/internal/config"
	"iomode/internal/driver"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <path> [path...]",
	Short: "Clean up whitespace in Io source files",
	Long: `Fmt strips trailing whitespace and guarantees a final newline in every
*.io file under the given paths. With --reindent each line is also pushed
through the indentation estimator.`,
	Args: cobra.ArbitraryArgs,
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().Bool("check", false, "report files that need cleanup without rewriting them")
	fmtCmd.Flags().Bool("stdout", false, "print cleaned content to stdout instead of rewriting files")
	fmtCmd.Flags().Bool("reindent", false, "re-estimate the indentation of every line")
	fmtCmd.Flags().String("format", "text", "output format (text|json)")
	fmtCmd.Flags().Int("jobs", 0, "parallel workers (0 = NumCPU)")
	fmtCmd.Flags().Bool("no-cache", false, "skip the on-disk result cache")
	fmtCmd.Flags().Bool("drop-cache", false, "invalidate the on-disk result cache before cleaning")
}

func runFmt(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	writeToStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	reindent, err := cmd.Flags().GetBool("reindent")
	if err != nil {
		return err
	}
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	dropCache, err := cmd.Flags().GetBool("drop-cache")
	if err != nil {
		return err
	}

	if dropCache {
		staleCache, cacheErr := driver.OpenDiskCache("iomode")
		if cacheErr != nil {
			return cacheErr
		}
		if dropErr := staleCache.DropAll(); dropErr != nil {
			return fmt.Errorf("fmt: failed to drop cache: %w", dropErr)
		}
	}
	if len(args) == 0 {
		if dropCache {
			return nil
		}
		return fmt.Errorf("fmt: requires at least one path (or --drop-cache)")
	}

	if writeToStdout && check {
		return fmt.Errorf("fmt: --stdout cannot be used with --check")
	}
	if writeToStdout && outputFormat != "text" {
		return fmt.Errorf("fmt: --stdout is only supported with text output")
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	cfg, err := config.Discover("")
	if err != nil {
		return err
	}
	// Манифест может выключить чистку целиком; --check остаётся доступен.
	if !cfg.Editor.StripWhitespaceOnSave && !check {
		if !quiet {
			fmt.Fprintln(os.Stderr, "fmt: whitespace cleanup disabled by iomode.toml (strip_whitespace_on_save = false)")
		}
		return nil
	}

	var cache *driver.DiskCache
	if !noCache {
		// недоступный кеш не мешает чистке
		cache, _ = driver.OpenDiskCache("iomode")
	}

	results, err := driver.CleanPaths(cmd.Context(), args, driver.CleanOptions{
		Reindent: reindent,
		TabWidth: cfg.Editor.TabWidth,
		Check:    check,
		Stdout:   writeToStdout,
		Jobs:     jobs,
		Cache:    cache,
	})
	if err != nil {
		return err
	}

	var hasErrors bool
	var hasChanges bool

	switch outputFormat {
	case "text":
		if writeToStdout {
			renderFmtStdout(results, &hasErrors)
			if hasErrors {
				return fmt.Errorf("fmt: failed to clean some files")
			}
			return nil
		}
		renderFmtText(results, check, quiet, &hasErrors, &hasChanges)
	case "json":
		if err := renderFmtJSON(results, check); err != nil {
			return err
		}
		for _, res := range results {
			if res.Err != nil {
				hasErrors = true
			}
			if res.Changed {
				hasChanges = true
			}
		}
	default:
		return fmt.Errorf("fmt: unsupported output format %q", outputFormat)
	}

	if hasErrors {
		return fmt.Errorf("fmt: failed to clean some files")
	}
	if check && hasChanges {
		return fmt.Errorf("fmt: cleanup required")
	}
	return nil
}

func renderFmtStdout(results []driver.CleanResult, hasErrors *bool) {
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, res.Err)
			continue
		}
		_, _ = os.Stdout.Write(res.Cleaned)
	}
}

func renderFmtText(results []driver.CleanResult, check, quiet bool, hasErrors, hasChanges *bool) {
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, res.Err)
			continue
		}

		if check {
			if res.Changed {
				*hasChanges = true
				if !quiet {
					fmt.Fprintln(os.Stdout, res.Path)
				}
			}
			continue
		}

		if res.Changed && !quiet {
			fmt.Fprintf(os.Stdout, "cleaned %s\n", res.Path)
		}
	}
}

func renderFmtJSON(results []driver.CleanResult, check bool) error {
	type jsonResult struct {
		Path     string `json:"path"`
		Changed  bool   `json:"changed"`
		Error    string `json:"error,omitempty"`
		CheckRun bool   `json:"check"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{Path: res.Path, Changed: res.Changed, CheckRun: check}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
