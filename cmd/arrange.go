/*
Copyright 2025 The llm-d Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/llm-d/llm-d-shelf-optimizer/internal/actuator"
	"github.com/llm-d/llm-d-shelf-optimizer/internal/catalog"
	optconfig "github.com/llm-d/llm-d-shelf-optimizer/internal/config"
	"github.com/llm-d/llm-d-shelf-optimizer/internal/optimizer"
	"github.com/llm-d/llm-d-shelf-optimizer/internal/report"
)

type arrangeOptions struct {
	catalog     string
	config      string
	output      string
	metricsFile string
}

func newArrangeCmd() *cobra.Command {
	opts := &arrangeOptions{}
	cmd := &cobra.Command{
		Use:   "arrange",
		Short: "Compute a shelf arrangement for a catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArrange(cmd, opts)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&opts.catalog, "catalog", "", "catalog file (.json, .jsonl, .ndjson, .yaml or .yml)")
	fs.StringVar(&opts.config, "config", "", "optimizer config file (YAML or JSON)")
	fs.StringVarP(&opts.output, "output", "o", report.FormatText, "output format: text, yaml or json")
	fs.StringVar(&opts.metricsFile, "metrics-file", "", "write metrics in the Prometheus text format to this file")
	optconfig.AddFlags(fs)
	_ = cmd.MarkFlagRequired("catalog")
	return cmd
}

func runArrange(cmd *cobra.Command, opts *arrangeOptions) error {
	switch opts.output {
	case report.FormatText, report.FormatYAML, report.FormatJSON:
	default:
		return fmt.Errorf("%w: %q", report.ErrUnknownFormat, opts.output)
	}

	spec, err := optconfig.Load(opts.config, cmd.Flags())
	if err != nil {
		return err
	}
	src, err := catalog.NewSource(opts.catalog)
	if err != nil {
		return err
	}

	metrics := actuator.NewMetricsEmitter()
	run, runErr := optimizer.NewOptimizer(spec, src, metrics).Optimize(cmd.Context())
	if run == nil {
		return runErr
	}

	if err := writeRun(cmd.OutOrStdout(), run, opts.output); err != nil {
		return err
	}
	if opts.metricsFile != "" {
		if err := metrics.WriteTextfile(opts.metricsFile); err != nil {
			return err
		}
	}
	return runErr
}

func writeRun(w io.Writer, run *optimizer.Run, format string) error {
	if format != report.FormatText {
		return report.WriteArrangement(w, run.Arrangement, format)
	}
	best := run.Outcome.Best
	if err := report.WriteText(w, best.Solution); err != nil {
		return err
	}
	if err := report.WriteSummary(w, best); err != nil {
		return err
	}
	return report.WriteValidation(w, run.Validation, errors.Join(run.ValidationErr, run.ItemsErr))
}
