package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arborgraph/trismem/pkg/rdf"
	"github.com/arborgraph/trismem/pkg/triple"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Load a fixed sample of triples and run one query per planner case",
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	warnIfThresholdMismatch()
	s := loadSampleStore()
	fmt.Printf("loaded %d triples\n", s.Count())

	alice := rdf.NewNamedNode("http://example.org/alice")
	bob := rdf.NewNamedNode("http://example.org/bob")
	carol := rdf.NewNamedNode("http://example.org/carol")
	knows := rdf.NewNamedNode("http://example.org/knows")

	patterns := []struct {
		name string
		pat  triple.Pattern
	}{
		{"SPO", triple.NewPattern(alice, knows, bob)},
		{"SP?", triple.NewPattern(alice, knows, rdf.Any)},
		{"S?O", triple.NewPattern(alice, rdf.Any, carol)},
		{"S??", triple.NewPattern(alice, rdf.Any, rdf.Any)},
		{"?PO", triple.NewPattern(rdf.Any, knows, carol)},
		{"?P?", triple.NewPattern(rdf.Any, knows, rdf.Any)},
		{"??O", triple.NewPattern(rdf.Any, rdf.Any, carol)},
		{"???", triple.NewPattern(rdf.Any, rdf.Any, rdf.Any)},
	}

	for _, p := range patterns {
		count := 0
		for range s.Stream(p.pat) {
			count++
		}
		fmt.Printf("%-4s contains=%-5v matches=%d\n", p.name, s.Contains(p.pat), count)
	}
	return nil
}
