package commands

import (
	"errors"
	"fmt"

	"github.com/coregx/coregex"
	"github.com/jonfriesen/urlregex"
	"github.com/spf13/cobra"
)

func (a *app) newMatchCommand() *cobra.Command {
	var (
		pattern string
		sample  string
		strict  bool
	)

	cmd := &cobra.Command{
		Use:   "match [url...]",
		Short: "Test URLs against a pattern",
		Long: `Match compiles --pattern, or builds one from the --sample file, and
reports for every URL whether it matches.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			re, err := a.matcher(pattern, sample, cmd)
			if err != nil {
				return err
			}

			urls, err := collectURLs(args, "", cmd.InOrStdin())
			if err != nil {
				return err
			}

			misses := 0
			for _, u := range urls {
				if re.MatchString(u) {
					a.printf(cmd, "match\t%s\n", u)
					continue
				}
				misses++
				a.printf(cmd, "no match\t%s\n", u)
			}

			a.log.WithField("pattern", re.String()).Debugf("%d of %d urls matched", len(urls)-misses, len(urls))
			if strict && misses > 0 {
				return fmt.Errorf("%d of %d urls did not match", misses, len(urls))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "Pattern to match against")
	cmd.Flags().StringVarP(&sample, "sample", "s", "", "File with a URL sample to build the pattern from")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when any URL does not match")
	return cmd
}

func (a *app) matcher(pattern, sample string, cmd *cobra.Command) (*coregex.Regex, error) {
	switch {
	case pattern != "" && sample != "":
		return nil, errors.New("--pattern and --sample are mutually exclusive")
	case pattern != "":
		re, err := coregex.Compile(pattern)
		if err != nil {
			return nil, &urlregex.PatternError{Pattern: pattern, Err: err}
		}
		return re, nil
	case sample != "":
		urls, err := readURLFile(sample, cmd.InOrStdin())
		if err != nil {
			return nil, err
		}
		return urlregex.Compile(urls, a.options()...)
	}
	return nil, errors.New("one of --pattern or --sample is required")
}
