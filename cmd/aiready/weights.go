package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aiready/aiready/internal/config"
	"github.com/aiready/aiready/internal/model"
	"github.com/aiready/aiready/internal/score"
)

// NewWeightsCmd creates the weights command.
func NewWeightsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weights",
		Short: "Print effective scoring weight profiles",
		Long: `Weights prints the per-page-type weight profiles that dynamic scoring
applies, after overlaying any profiles from the configuration file.

Each profile distributes 100 points across the five pillars. The default
profile backs page types without one of their own.`,
		Args: cobra.NoArgs,
		RunE: runWeightsCmd,
	}

	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .aiready in current or home directory)")

	return cmd
}

// runWeightsCmd executes the weights command.
func runWeightsCmd(cmd *cobra.Command, _ []string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	overrides := &config.File{}
	explicitConfigPath := configPath != ""
	if found := config.FindConfigFile(configPath); found != "" {
		overrides, err = config.LoadConfigFile(found)
		if err != nil {
			return fmt.Errorf("failed to load config file %s: %w", found, err)
		}
	} else if explicitConfigPath {
		return fmt.Errorf("configuration file not found: %s", configPath)
	}

	profiles, err := overrides.ProfileSet()
	if err != nil {
		return err
	}

	return printProfiles(cmd, profiles)
}

// printProfiles writes the profile table, default profile first and the
// rest in name order.
func printProfiles(cmd *cobra.Command, profiles score.ProfileSet) error {
	pageTypes := make([]model.PageType, 0, len(profiles))
	for pageType := range profiles {
		if pageType != score.DefaultProfileKey {
			pageTypes = append(pageTypes, pageType)
		}
	}
	sort.Slice(pageTypes, func(i, j int) bool { return pageTypes[i] < pageTypes[j] })
	pageTypes = append([]model.PageType{score.DefaultProfileKey}, pageTypes...)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 0, 2, ' ', 0)
	fmt.Fprint(w, "PAGE TYPE")
	for _, pillar := range model.Pillars() {
		fmt.Fprintf(w, "\t%s", pillar)
	}
	fmt.Fprintln(w)

	for _, pageType := range pageTypes {
		weights, ok := profiles[pageType]
		if !ok {
			continue
		}
		fmt.Fprint(w, string(pageType))
		for _, pillar := range model.Pillars() {
			fmt.Fprintf(w, "\t%g", weights[pillar])
		}
		fmt.Fprintln(w)
	}

	return w.Flush()
}
