package main

import (
	"os"
	"pitch/config"
	"pitch/helper"
	"pitch/shared/logger"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var source string

	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the slot ledger schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&source, "source", "", "migration source URL (default file://migrations/postgres)")

	actions := []struct {
		name  string
		short string
	}{
		{helper.ActionUp, "Apply all pending migrations"},
		{helper.ActionDown, "Roll back the latest migration"},
		{helper.ActionStepUp, "Apply the next pending migration"},
		{helper.ActionDrop, "Roll back every migration"},
	}

	for _, action := range actions {
		root.AddCommand(&cobra.Command{
			Use:   action.name,
			Short: action.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return helper.Runner(config.Get(), action.name, source)
			},
		})
	}

	return root
}

func main() {
	logger.InitLogger(os.Getenv("SERVER_ENV"))

	if err := newRootCommand().Execute(); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
}
