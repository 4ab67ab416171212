package main

import (
	"github.com/spf13/cobra"

	"github.com/aidi-lab/pubnet/internal/collab"
	"github.com/aidi-lab/pubnet/internal/viz"
)

var collabTop int

func init() {
	collabCmd.PersistentFlags().IntVar(&collabTop, "top", 0,
		"Number of collaborators to retain (default from config)")
	collabCmd.AddCommand(collabAuthorsCmd)
	collabCmd.AddCommand(collabInstitutionsCmd)
	collabCmd.AddCommand(collabCountriesCmd)
	collabCmd.AddCommand(collabDepartmentsCmd)
	rootCmd.AddCommand(collabCmd)
}

var collabCmd = &cobra.Command{
	Use:   "collab",
	Short: "Collaboration networks",
	Long: `Build collaboration networks between the home institution and its
external partners, at author, institution, country and department level.`,
}

var collabAuthorsCmd = &cobra.Command{
	Use:   "authors",
	Short: "Home-author to external-author collaboration flow",
	RunE:  runCollabAuthors,
}

var collabInstitutionsCmd = &cobra.Command{
	Use:   "institutions",
	Short: "Top collaborating external institutions",
	RunE:  runCollabInstitutions,
}

var collabCountriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "Top collaborating countries, with map rows",
	RunE:  runCollabCountries,
}

var collabDepartmentsCmd = &cobra.Command{
	Use:   "departments",
	Short: "Internal department co-authorship network",
	RunE:  runCollabDepartments,
}

func runCollabAuthors(cmd *cobra.Command, args []string) error {
	repo := openRepo()
	defer repo.Close()

	top := collabTop
	if top <= 0 {
		top = repo.Config.TopAuthors
	}

	snap := repo.Snapshot()
	bp := collab.AuthorPairs(snap, repo.Home(), top, top)
	flow := viz.BuildAuthorFlow("Author collaboration", bp)

	if humanOutput {
		printFlowHuman(flow)
		return nil
	}
	return outputJSON(flow)
}

func runCollabInstitutions(cmd *cobra.Command, args []string) error {
	repo := openRepo()
	defer repo.Close()

	top := collabTop
	if top <= 0 {
		top = repo.Config.TopCollaborators
	}

	snap := repo.Snapshot()
	counts := collab.TopN(collab.ExternalInstitutionCounts(snap, repo.Home()), top)
	flow := viz.BuildFanoutFlow("Institution collaboration", repo.HomeLabel(), counts)

	if humanOutput {
		printFlowHuman(flow)
		return nil
	}
	return outputJSON(flow)
}

// CountriesResult pairs the collaboration flow with choropleth rows.
type CountriesResult struct {
	Flow *viz.FlowData `json:"flow"`
	Map  []viz.MapRow  `json:"map"`
}

func runCollabCountries(cmd *cobra.Command, args []string) error {
	repo := openRepo()
	defer repo.Close()

	top := collabTop
	if top <= 0 {
		top = repo.Config.TopCollaborators
	}

	snap := repo.Snapshot()
	counts := collab.TopN(collab.ExternalCountryCounts(snap, repo.Home()), top)
	result := CountriesResult{
		Flow: viz.BuildCountryFlow("Country collaboration", repo.HomeLabel(), counts),
		Map:  viz.BuildMap(counts),
	}

	if humanOutput {
		printFlowHuman(result.Flow)
		return nil
	}
	return outputJSON(result)
}

func runCollabDepartments(cmd *cobra.Command, args []string) error {
	repo := openRepo()
	defer repo.Close()

	top := collabTop
	if top <= 0 {
		top = repo.Config.TopDepartments
	}

	snap := repo.Snapshot()
	net := collab.DepartmentPairs(snap, repo.Home(), top)
	flow := viz.BuildDepartmentFlow("Department collaboration", net)

	if humanOutput {
		printFlowHuman(flow)
		return nil
	}
	return outputJSON(flow)
}

// printFlowHuman renders a flow layout as an edge list.
func printFlowHuman(flow *viz.FlowData) {
	if flow.IsEmpty() {
		outputHuman("%s: %s\n", flow.Title, flow.Placeholder)
		return
	}
	outputHuman("%s\n", flow.Title)
	for _, link := range flow.Links {
		outputHuman("  %s -> %s: %d\n",
			flow.Nodes[link.Source].Label, flow.Nodes[link.Target].Label, link.Value)
	}
}
