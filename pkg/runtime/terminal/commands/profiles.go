package commands

import (
	"fmt"

	"github.com/de-tools/profit-report/pkg/services/input"
	"github.com/spf13/cobra"
)

type ProfilesCmd struct {
	inputsPath string
}

func NewProfilesCmd() *cobra.Command {
	pc := &ProfilesCmd{}
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List the company profiles of an inputs file",
		Args:  cobra.NoArgs,
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.inputsPath, "inputs", "", "Path to the INI inputs file")
	_ = cmd.MarkFlagRequired("inputs")

	return cmd
}

func (pc *ProfilesCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	registry, err := input.NewProfileRegistry(pc.inputsPath)
	if err != nil {
		return err
	}

	names, err := registry.GetProfiles(ctx)
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}
	if len(names) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No profiles found in %s\n", pc.inputsPath)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Profiles in %s:\n", pc.inputsPath)
	for _, name := range names {
		profile, err := registry.GetProfile(ctx, name)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t(invalid: %v)\n", name, err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, profile.Company)
	}

	return nil
}
