package commands

import (
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/jonfriesen/urlregex"
	"github.com/jonfriesen/urlregex/internal/config"
	"github.com/jonfriesen/urlregex/internal/links"
	"github.com/spf13/cobra"
)

func (a *app) newLinksCommand() *cobra.Command {
	var build bool

	cmd := &cobra.Command{
		Use:   "links FILE",
		Short: "Extract links from an HTML page",
		Long: `Links prints the http and https links of an HTML file (- for stdin),
resolved against --base. With --build it prints the pattern of the
extracted links instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := links.ExtractOptions{SameHost: a.config.SameHost}

			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open html file: %w", err)
				}
				defer f.Close()
				r = f
			}

			var base *url.URL
			if a.config.BaseURL != "" {
				var err error
				if base, err = a.config.Base(); err != nil {
					return err
				}
			}

			extracted, err := links.Extract(r, base, opts)
			if err != nil {
				return err
			}
			a.log.WithField("links", len(extracted)).Info("links extracted")

			if !build {
				for _, link := range extracted {
					a.printf(cmd, "%s\n", link)
				}
				return nil
			}

			pattern, err := urlregex.BuildPattern(extracted, a.options()...)
			if err != nil {
				return err
			}
			a.printf(cmd, "%s\n", pattern)
			return nil
		},
	}

	cmd.Flags().String("base", "", "Absolute URL the page was fetched from")
	cmd.Flags().Bool("same-host", false, "Keep only links on the base host")
	cmd.Flags().BoolVar(&build, "build", false, "Print the pattern of the extracted links")
	a.bind(config.KeyBaseURL, cmd.Flags().Lookup("base"))
	a.bind(config.KeySameHost, cmd.Flags().Lookup("same-host"))
	return cmd
}
