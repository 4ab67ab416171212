package main

import (
	"github.com/spf13/cobra"

	"github.com/aidi-lab/pubnet/internal/topics"
	"github.com/aidi-lab/pubnet/internal/viz"
)

var (
	topicMinPapers      int
	topicMinConnections int
	topicCytoscape      bool
)

func init() {
	topicsCmd.Flags().IntVar(&topicMinPapers, "min-papers", 0,
		"Minimum papers per topic (default from config)")
	topicsCmd.Flags().IntVar(&topicMinConnections, "min-connections", 0,
		"Minimum co-occurrences per edge (default from config)")
	topicsCmd.Flags().BoolVar(&topicCytoscape, "cytoscape", false,
		"Emit Cytoscape.js elements JSON")
	rootCmd.AddCommand(topicsCmd)
}

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Research-topic co-occurrence network",
	Long: `Build the topic co-occurrence network with a force-directed layout.
Topics below the minimum paper count and edges below the minimum
co-occurrence count are dropped.`,
	RunE: runTopics,
}

func runTopics(cmd *cobra.Command, args []string) error {
	repo := openRepo()
	defer repo.Close()

	minPapers := topicMinPapers
	if minPapers <= 0 {
		minPapers = repo.Config.MinTopicPapers
	}
	minConnections := topicMinConnections
	if minConnections <= 0 {
		minConnections = repo.Config.MinTopicConnections
	}

	snap := repo.Snapshot()
	net := topics.Build(snap, minPapers, minConnections)
	graph := viz.BuildTopicGraph("Topic network", net)

	if topicCytoscape {
		raw, err := graph.ToCytoscapeJSON()
		if err != nil {
			exitWithError(ExitError, "%v", err)
		}
		outputHuman("%s\n", raw)
		return nil
	}

	if humanOutput {
		if graph.IsEmpty() {
			outputHuman("%s: %s\n", graph.Title, graph.Placeholder)
			return nil
		}
		outputHuman("%s (%d topics, %d edges)\n", graph.Title, len(graph.Nodes), len(graph.Edges))
		for _, n := range graph.Nodes {
			outputHuman("  %s: %d papers, degree %d\n", n.ID, n.Papers, n.Degree)
		}
		return nil
	}

	return outputJSON(graph)
}
