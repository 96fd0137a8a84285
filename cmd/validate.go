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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	optconfig "github.com/llm-d/llm-d-shelf-optimizer/internal/config"
	"github.com/llm-d/llm-d-shelf-optimizer/internal/optimizer"
	"github.com/llm-d/llm-d-shelf-optimizer/internal/report"
	"github.com/llm-d/llm-d-shelf-optimizer/pkg/config"
)

type validateOptions struct {
	arrangement string
	config      string
}

func newValidateCmd() *cobra.Command {
	opts := &validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a saved arrangement against the shelf limits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.arrangement, "arrangement", "", "ShelfArrangement document (YAML or JSON)")
	cmd.Flags().StringVar(&opts.config, "config", "", "check against the limits of this config instead of the recorded ones")
	_ = cmd.MarkFlagRequired("arrangement")
	return cmd
}

func runValidate(cmd *cobra.Command, opts *validateOptions) error {
	f, err := os.Open(opts.arrangement)
	if err != nil {
		return fmt.Errorf("opening arrangement: %w", err)
	}
	defer f.Close()

	doc, err := report.ReadArrangement(f)
	if err != nil {
		return err
	}

	var override *config.OptimizerSpec
	if opts.config != "" {
		spec, err := optconfig.Load(opts.config, nil)
		if err != nil {
			return err
		}
		override = &spec
	}

	rev, revErr := optimizer.Revalidate(cmd.Context(), doc, override)
	if rev == nil {
		return revErr
	}
	out := cmd.OutOrStdout()
	if err := report.WriteValidation(out, rev.Report, revErr); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "Cost: %s (recorded %s)\n",
		report.FormatFloat(rev.Breakdown.Total), report.FormatFloat(rev.Recorded)); err != nil {
		return err
	}
	return revErr
}
