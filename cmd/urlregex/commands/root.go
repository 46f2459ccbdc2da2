// Package commands implements the urlregex command line tool.
package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jonfriesen/urlregex"
	"github.com/jonfriesen/urlregex/internal/config"
	"github.com/jonfriesen/urlregex/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	v      *viper.Viper
	config *config.Config
	log    logrus.FieldLogger
}

func NewRootCommand() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "urlregex",
		Short: "Induce a regular expression from a sample of URLs",
		Long: `urlregex learns a sample of URLs and prints the most general regular
expression that still describes them: numeric runs become \d+, varying
segments become wildcards and segments missing from some URLs become
optional groups.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "Configuration file path")
	flags.String("log-level", "info", "Logging level (debug, info, warn, error)")
	flags.String("log-format", "text", "Log format (text, json, custom)")
	flags.String("scorer", config.ScorerDistance, "Segment scorer (distance, similarity)")

	a.bind(config.KeyConfig, flags.Lookup("config"))
	a.bind(config.KeyLogLevel, flags.Lookup("log-level"))
	a.bind(config.KeyLogFormat, flags.Lookup("log-format"))
	a.bind(config.KeyScorer, flags.Lookup("scorer"))

	root.AddCommand(
		a.newBuildCommand(),
		a.newMatchCommand(),
		a.newLinksCommand(),
	)
	return root
}

func (a *app) bind(key string, flag *pflag.Flag) {
	// BindPFlag only fails on a nil flag.
	_ = a.v.BindPFlag(key, flag)
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(a.v)
	if err != nil {
		return err
	}

	logger, err := logging.New(c.Logging(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.config = c
	a.log = logger.WithFields(logrus.Fields{
		"run_id":  uuid.NewString(),
		"command": cmd.Name(),
	})
	return nil
}

func (a *app) options() []urlregex.Option {
	return []urlregex.Option{
		urlregex.WithScorer(a.config.ScorerFunc()),
		urlregex.WithLogger(a.log),
	}
}

func (a *app) printf(cmd *cobra.Command, format string, args ...interface{}) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
