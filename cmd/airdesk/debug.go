// Copyright (c) 2026 Airdesk Team
// Airdesk - flight and passenger desk
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func (a *app) debugCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "debug",
		Short:       "Dump the effective configuration, flags and AIRDESK_* environment",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipStore: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := a.out
			_, _ = fmt.Fprintln(out, "--- AIRDESK DEBUG ---")

			b, err := yaml.Marshal(a.cfg)
			if err != nil {
				return fmt.Errorf("could not marshal settings: %w", err)
			}
			_, _ = fmt.Fprintln(out, "-- effective settings --")
			_, _ = fmt.Fprint(out, string(b))

			_, _ = fmt.Fprintln(out, "-- flags --")
			cmd.Flags().VisitAll(func(f *pflag.Flag) {
				marker := ""
				if f.Changed {
					marker = " (set)"
				}
				_, _ = fmt.Fprintf(out, "%s = %s%s\n", f.Name, f.Value.String(), marker)
			})

			_, _ = fmt.Fprintln(out, "-- environment (AIRDESK_*) --")
			var env []string
			for _, e := range os.Environ() {
				if strings.HasPrefix(e, "AIRDESK_") {
					env = append(env, e)
				}
			}
			sort.Strings(env)
			for _, e := range env {
				_, _ = fmt.Fprintln(out, e)
			}
			_, _ = fmt.Fprintln(out, "--- END DEBUG ---")
			return nil
		},
	}
}
