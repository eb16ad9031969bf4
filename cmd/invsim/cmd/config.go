package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rpgo/investment-simulator/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create and check server and parameter files",
	}
	cmd.AddCommand(newConfigInitCmd(), newConfigValidateCmd(), newConfigParamsCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		out   string
		force bool
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default server configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := refuseOverwrite(out, force); err != nil {
				return err
			}
			if err := config.DefaultServerConfig().SaveToFile(out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Server configuration written to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "server.yaml", "Destination file (yaml, toml or json)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

func newConfigValidateCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a server configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadServerConfig(file)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration is valid (listen %s, cache %s)\n", cfg.HTTP.Addr, cfg.Cache.Backend)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Server config file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newConfigParamsCmd() *cobra.Command {
	var (
		out   string
		force bool
	)
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Write an example simulation parameter file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := refuseOverwrite(out, force); err != nil {
				return err
			}
			parser := config.NewInputParser()
			if err := parser.SaveToFile(parser.CreateExampleParameters(), out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example parameters written to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "params.yaml", "Destination file (yaml, toml or json)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

func refuseOverwrite(path string, force bool) error {
	if force {
		return nil
	}
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	case errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return err
	}
}
