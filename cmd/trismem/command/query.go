package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arborgraph/trismem/pkg/rdf"
	"github.com/arborgraph/trismem/pkg/triple"
)

var queryCmd = &cobra.Command{
	Use:   "query <subject|*> <predicate|*> <object|*>",
	Short: "Run one pattern query against the fixed sample store",
	Args:  cobra.ExactArgs(3),
	RunE:  runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
	warnIfThresholdMismatch()
	s := loadSampleStore()

	pat := triple.NewPattern(termOrWildcard(args[0]), termOrWildcard(args[1]), termOrWildcard(args[2]))
	n := 0
	for t := range s.Stream(pat) {
		fmt.Println(t.String())
		n++
	}
	fmt.Printf("%d match(es)\n", n)
	return nil
}

func termOrWildcard(s string) rdf.Term {
	if s == "*" {
		return rdf.Any
	}
	return rdf.NewNamedNode(s)
}
