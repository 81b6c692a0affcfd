package cli

import (
	"errors"
	"fmt"
	"os"

	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"lookup/internal/config"
)

func newConfigCommand(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(newConfigInitCommand(root))
	cmd.AddCommand(newConfigShowCommand(root))
	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), configService(root).Path())
		},
	})
	return cmd
}

func newConfigInitCommand(root *rootOptions) *cobra.Command {
	var path string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := configService(root)
			if path != "" {
				svc = config.NewConfigServiceAt(path)
			}

			if _, err := os.Stat(svc.Path()); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", svc.Path())
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			if err := svc.Save(config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", svc.Path())
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "where to write the file")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func newConfigShowCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root, nil)
			if err != nil {
				return err
			}
			out, err := gotoml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func configService(root *rootOptions) config.ConfigService {
	if root.configPath != "" {
		return config.NewConfigServiceAt(root.configPath)
	}
	return config.NewConfigService()
}

// loadConfig reads the config. A file named with --config must exist;
// the per-user file is optional.
func loadConfig(root *rootOptions, overrides map[string]any) (*config.Config, error) {
	svc := configService(root)
	if root.configPath != "" {
		return svc.LoadFromPath(root.configPath, overrides)
	}
	return svc.Load(overrides)
}
