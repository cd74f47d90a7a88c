package cmd

import (
	"fmt"
	"time"

	"github.com/mvanek/projboard/internal/cli"
	"github.com/mvanek/projboard/internal/pipeline"

	"github.com/spf13/cobra"
)

var flagRevealBudget bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the project summary to stdout",
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&flagRevealBudget, "reveal-budget", false, "Print the budget amount instead of the mask")
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, _ []string) error {
	projects, reqs, err := loadData()
	if err != nil {
		return err
	}

	id := resolveProjectID(projects)
	if id == "" {
		return errNoProject
	}

	var summary pipeline.Summary
	found := false
	for _, p := range projects {
		if p.ID == id {
			summary = pipeline.BuildSummary(p, reqs, time.Now(), flagRevealBudget)
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("project %q not found", id)
	}

	fmt.Println(cli.RenderSummary(summary))
	return nil
}
