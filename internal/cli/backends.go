package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vvka-141/pqhash/internal/digest"
	"github.com/vvka-141/pqhash/internal/digest/platform"
	"github.com/vvka-141/pqhash/internal/logging"
	"github.com/vvka-141/pqhash/internal/tui"
)

var backendsFlags hasherFlags

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "Show which digest backends are available and which one is selected",
	Long: `Probe every configured digest backend in priority order and report the result.

The selected backend is the first available one. Probing here is diagnostic:
hash and manifest select once per invocation and never re-probe.`,
	Args: cobra.NoArgs,
	RunE: runBackends,
}

func init() {
	rootCmd.AddCommand(backendsCmd)
	backendsFlags.register(backendsCmd)
}

func runBackends(cmd *cobra.Command, args []string) error {
	hasher, cfg, err := resolveHasher(cmd, backendsFlags)
	if err != nil {
		return err
	}
	kinds, err := cfg.BackendKinds()
	if err != nil {
		return err
	}
	encoder, err := digest.ParseEncoder(cfg.Encoder)
	if err != nil {
		return err
	}

	env := platform.DefaultEnvironment()
	quiet := logging.NewNullLogger()

	out := cmd.OutOrStdout()
	paint := tui.NewPainter(out)

	// STATUS stays the last column: styled text carries escape bytes tabwriter would count.
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRIORITY\tBACKEND\tSTATUS")
	for i, kind := range kinds {
		status := paint.Render(tui.MutedStyle, "disabled")
		probe := digest.NewSelector(quiet, digest.ProvidersFor([]digest.Kind{kind}, env, encoder)...)
		if reports := probe.Reports(); len(reports) > 0 {
			if err := reports[0].Err; err != nil {
				status = paint.Status(false, "unavailable: "+err.Error())
			} else {
				status = paint.Status(true, "available")
			}
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, kind, status)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	selected := hasher.Backend().Kind().String()
	fmt.Fprintf(out, "\nselected: %s\n", paint.Render(tui.HeaderStyle, selected))
	return nil
}
