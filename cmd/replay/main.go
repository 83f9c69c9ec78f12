package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ellenbrook/stillpoint/go-core/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json")
		os.Exit(2)
	}

	f, err := replay.LoadFixture(*fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		os.Exit(2)
	}

	results, summary := replay.Run(context.Background(), f)
	os.Exit(printResults(results, summary))
}

// #endregion main

// #region output

// printResults outputs a per-case table and returns the exit code.
func printResults(results []replay.CaseResult, summary replay.Summary) int {
	if summary.Description != "" {
		fmt.Printf("Fixture: %s\n\n", summary.Description)
	}

	fmt.Printf("%-20s| %-8s| %-9s| %-16s| %s\n", "Case", "Crisis", "Severity", "Action", "Result")
	fmt.Printf("%-20s+%-9s+%-10s+%-17s+%s\n",
		"--------------------", "---------", "----------", "-----------------", "--------")

	for _, r := range results {
		status := "OK"
		if !r.Passed {
			status = "DIFF"
		}
		fmt.Printf("%-20s| %-8v| %-9s| %-16s| %s\n",
			r.CaseID, r.Detection.IsCrisis, r.Detection.Severity, r.Detection.Action, status)
		for _, m := range r.Mismatches {
			fmt.Printf("%22s %s\n", "", m)
		}
	}

	fmt.Printf("\nSummary: %d total, %d match, %d diverge\n",
		summary.TotalCases, summary.Passes, len(summary.Failures))

	if len(summary.Failures) > 0 {
		return 1
	}
	return 0
}

// #endregion output
