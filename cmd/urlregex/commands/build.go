package commands

import (
	"github.com/jonfriesen/urlregex"
	"github.com/jonfriesen/urlregex/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (a *app) newBuildCommand() *cobra.Command {
	var showStats bool

	cmd := &cobra.Command{
		Use:   "build [url...]",
		Short: "Print the pattern for a URL sample",
		Long: `Build learns the URLs given as arguments, or one per line from --input
or stdin, and prints the induced pattern.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			urls, err := collectURLs(args, a.v.GetString(config.KeyInput), cmd.InOrStdin())
			if err != nil {
				return err
			}

			in := urlregex.NewInducer(a.options()...)
			in.Learn(urls)

			pattern, err := in.Pattern()
			if err != nil {
				return err
			}

			stats := in.Stats()
			a.log.WithFields(logrus.Fields{
				"learned": stats.LearnedCount,
				"unique":  stats.UniqueCount,
			}).Info("pattern built")

			a.printf(cmd, "%s\n", pattern)
			if showStats {
				a.printStats(cmd, stats)
			}
			return nil
		},
	}

	cmd.Flags().StringP("input", "i", "", "File with one URL per line (- for stdin)")
	cmd.Flags().BoolVar(&showStats, "stats", false, "Print sample statistics after the pattern")
	a.bind(config.KeyInput, cmd.Flags().Lookup("input"))
	return cmd
}

func (a *app) printStats(cmd *cobra.Command, stats urlregex.Stats) {
	a.printf(cmd, "learned:   %d\n", stats.LearnedCount)
	a.printf(cmd, "unique:    %d\n", stats.UniqueCount)
	a.printf(cmd, "segments:  %d\n", stats.Segments)
	a.printf(cmd, "optional:  %d\n", stats.OptionalSegments)
	a.printf(cmd, "wildcards: %d\n", stats.Wildcards)
	a.printf(cmd, "queried:   %d\n", stats.QueryCount)
	a.printf(cmd, "keys:      %d\n", stats.QueryKeys)
}
