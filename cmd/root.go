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
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/llm-d/llm-d-shelf-optimizer/internal/logging"
)

type rootOptions struct {
	logging logging.Options
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "shelf-optimizer",
		Short: "Arrange a book catalog on shelves with simulated annealing",
		Long: `shelf-optimizer places the books of a catalog on a fixed number of shelves,
keeping every shelf within its width and weight limits while minimizing unused
space, uneven loads and the distance between books by the same author.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.Setup(opts.logging)
			if err != nil {
				return err
			}
			cmd.SetContext(logr.NewContext(cmd.Context(), logger))
			return nil
		},
	}

	fs := cmd.PersistentFlags()
	fs.StringVar(&opts.logging.Level, "log-level", "info", "log level: error, info, debug or trace")
	fs.StringVar(&opts.logging.File, "log-file", "", "write logs to this file, rotated, instead of stderr")
	fs.BoolVar(&opts.logging.JSON, "log-json", false, "log in JSON format")
	fs.IntVar(&opts.logging.MaxSizeMB, "log-max-size", 100, "size in MB at which the log file is rotated")
	fs.IntVar(&opts.logging.MaxBackups, "log-max-backups", 3, "rotated log files to keep")
	fs.IntVar(&opts.logging.MaxAgeDays, "log-max-age", 28, "days to keep rotated log files")
	fs.BoolVar(&opts.logging.Compress, "log-compress", false, "gzip rotated log files")

	cmd.AddCommand(newArrangeCmd(), newValidateCmd(), newConfigCmd())
	return cmd
}
