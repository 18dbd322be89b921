package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewConfigCommand creates the config command.
func NewConfigCommand(build ContainerFunc) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect voxsh configuration",
	}

	configCmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the effective configuration",
			RunE: func(cmd *cobra.Command, args []string) error {
				container, err := build(cmd)
				if err != nil {
					return err
				}
				raw, err := yaml.Marshal(container.Config)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(raw)
				return err
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file location",
			RunE: func(cmd *cobra.Command, args []string) error {
				container, err := build(cmd)
				if err != nil {
					return err
				}
				if container.ConfigLoader == nil {
					return fmt.Errorf(ErrConfigLoaderUnavailable)
				}
				fmt.Fprintln(cmd.OutOrStdout(), container.ConfigLoader.Path())
				return nil
			},
		},
	)

	return configCmd
}
