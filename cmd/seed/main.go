package main

import (
	"fmt"
	"os"

	"barangay-animal-tracking/internal/bootstrap"
	"barangay-animal-tracking/internal/platform/config"
	"barangay-animal-tracking/internal/platform/logger"
	"barangay-animal-tracking/internal/seed"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Carga las cuentas demo y los animales de ejemplo",
		Long: `Crea las cuentas admin, staff y veterinarian (si no existen) y carga
los animales de ejemplo solo cuando el registro está vacío. Usa los mismos
DB_DRIVER / AUTH_MODE que la API.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.New(logger.Options{
				Level:  logger.ParseLevel(cfg.Log.Level),
				Format: logger.ParseFormat(cfg.Log.Format),
				App:    cfg.Log.App,
			})
			defer func() { _ = log.Sync() }()

			ctx := cmd.Context()
			deps, err := bootstrap.Build(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer func() { _ = deps.Close() }()

			fixtures, err := seed.Load()
			if err != nil {
				return err
			}

			s := &seed.Seeder{
				Accounts: deps.AccountsService(),
				Animals:  deps.AnimalsService(),
				Log:      log,
				Password: password,
			}
			rep, err := s.Run(ctx, fixtures)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "accounts: %d created, %d skipped, %d failed\n",
				len(rep.AccountsCreated), len(rep.AccountsSkipped), len(rep.AccountsFailed))
			if rep.AnimalsSkipped {
				fmt.Fprintln(out, "animals: skipped (collection not empty)")
			} else {
				fmt.Fprintf(out, "animals: %d created\n", rep.AnimalsCreated)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", seed.DefaultPassword, "password de las cuentas demo")

	return cmd
}
