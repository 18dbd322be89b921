package commands

import (
	"github.com/spf13/cobra"

	"github.com/doeshing/voxsh/internal/app"
)

// ContainerFunc builds the dependency graph once flags have been parsed.
type ContainerFunc func(cmd *cobra.Command) (*app.Container, error)
