package cmd

import (
	"fmt"

	"github.com/mvanek/projboard/internal/cli"
	"github.com/mvanek/projboard/internal/pipeline"

	"github.com/spf13/cobra"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List projects available in the data source",
	RunE:  runProjects,
}

func init() {
	rootCmd.AddCommand(projectsCmd)
}

func runProjects(_ *cobra.Command, _ []string) error {
	projects, reqs, err := loadData()
	if err != nil {
		return err
	}

	if len(projects) == 0 {
		fmt.Println("  No projects found.")
		return nil
	}

	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		linked := pipeline.FilterByProject(reqs, p.ID)
		rows = append(rows, []string{
			p.ID,
			p.Name,
			p.Client,
			p.Status.String(),
			cli.FormatPercent(pipeline.ProgressPercent(linked)),
		})
	}

	fmt.Println(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Name", "Client", "Status", "Progress"},
		Rows:    rows,
	}))
	return nil
}
