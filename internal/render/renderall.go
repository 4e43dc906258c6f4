package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/poruru-code/esb-branding-tool/internal/branding"
	"github.com/poruru-code/esb-branding-tool/internal/debug"
)

// Options controls a RenderAll pass.
type Options struct {
	// Check compares rendered output against committed files instead of
	// writing; mismatching targets are collected and diffed.
	Check bool
	// Verbose prints one line per rendered template.
	Verbose bool
	// StripHeader removes the generated-file comment header from output.
	StripHeader bool
	// Out receives verbose lines and check-mode diffs. Defaults to stdout.
	Out io.Writer
}

// RenderAll renders every spec against ctx. Templates are read relative to
// toolRoot, targets resolved relative to root.
//
// In check mode no file is touched: a missing or differing target is added
// to the returned mismatch list together with a unified diff, and checking
// continues across the remaining specs so one run reports all drift.
func RenderAll(specs []TemplateSpec, toolRoot, root string, ctx branding.Context, opts Options) ([]string, error) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	var mismatches []string
	for _, spec := range specs {
		templatePath := filepath.Join(toolRoot, spec.Template)
		target, err := Render(spec.Target, ctx)
		if err != nil {
			return nil, err
		}
		targetPath := filepath.Join(root, target)

		data, err := os.ReadFile(templatePath)
		if err != nil {
			return nil, err
		}
		rendered, err := Render(string(data), ctx)
		if err != nil {
			return nil, err
		}
		if opts.StripHeader {
			rendered = StripHeader(rendered, filepath.Base(templatePath))
		}

		if opts.Check {
			existing, err := os.ReadFile(targetPath)
			if os.IsNotExist(err) {
				debug.Debug("[render] check: %s missing", targetPath)
				mismatches = append(mismatches, targetPath)
				continue
			}
			if err != nil {
				return nil, err
			}
			if string(existing) != rendered {
				mismatches = append(mismatches, targetPath)
				fmt.Fprintf(out, "Diff for %s:\n", targetPath)
				printUnifiedDiff(out, string(existing), rendered)
			}
			continue
		}

		if opts.Verbose {
			fmt.Fprintf(out, "render %s -> %s\n", templatePath, targetPath)
		}
		if err := WriteFile(targetPath, rendered); err != nil {
			return nil, err
		}
	}
	return mismatches, nil
}

func printUnifiedDiff(out io.Writer, current, generated string) {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(current),
		B:        difflib.SplitLines(generated),
		FromFile: "current",
		ToFile:   "generated",
		Context:  3,
	})
	if err != nil {
		fmt.Fprintf(out, "(diff unavailable: %v)\n", err)
		return
	}
	fmt.Fprint(out, text)
}
