package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/voxsh/internal/domain"
)

// NewDoctorCommand creates the doctor command
func NewDoctorCommand(build ContainerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check which collaborators (speech, mail, browser, assistant) are usable",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := build(cmd)
			if err != nil {
				return err
			}
			if container.DoctorService == nil {
				return fmt.Errorf(ErrDoctorServiceUnavailable)
			}

			report, err := container.DoctorService.Run(cmd.Context())

			// Display report even if there were errors
			displayDoctorReport(cmd.OutOrStdout(), report)

			if err != nil {
				return fmt.Errorf("diagnostics completed with errors: %w", err)
			}
			if report.Failed() {
				return fmt.Errorf("diagnostics found configuration errors")
			}
			return nil
		},
	}
}

func displayDoctorReport(out io.Writer, report domain.HealthReport) {
	for _, check := range report.Checks {
		fmt.Fprintf(out, "[%s] %s - %s\n",
			strings.ToUpper(string(check.Status)),
			check.Name,
			check.Details)
	}
}
