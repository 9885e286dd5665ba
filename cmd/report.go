package cmd

import (
	"fmt"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/octobatch/octobatch/internal/batch"
)

// newBatchBar creates the progress bar for a batch run. Returns nils
// when the bar is suppressed.
func newBatchBar(total int, quiet bool) (*mpb.Progress, *mpb.Bar) {
	if quiet {
		return nil, nil
	}
	p := mpb.New(mpb.WithWidth(48))
	barStyle := mpb.BarStyle().Lbound("╢").Filler("█").Tip("█").Padding("░").Rbound("╟")

	name := "Creating"
	bar := p.New(int64(total),
		barStyle,
		mpb.PrependDecorators(
			decor.Name(name, decor.WC{W: len(name) + 1, C: decor.DindentRight}),
			decor.CountersNoUnit("%d / %d"),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.Percentage(decor.WC{W: 5}), "done"),
		),
	)
	return p, bar
}

// printReport writes the per-profile outcomes in ascending index order,
// followed by the batch summary.
func printReport(results []batch.Result) {
	for _, res := range results {
		if res.OK() {
			fmt.Printf("  #%d created: UUID %s\n", res.Index+1, res.ProfileID)
		} else {
			fmt.Printf("  #%d failed: %s\n", res.Index+1, res.Err.Error())
		}
	}
	fmt.Println()
	fmt.Print(batch.Summarize(results).String())
}
