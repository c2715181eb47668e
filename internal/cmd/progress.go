package cmd

import (
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"
)

// progressReporter adapts a go-pretty progress bar to the engine's
// Reporter interface. It renders to stderr so it never interleaves with
// generated output.
type progressReporter struct {
	writer  progress.Writer
	tracker *progress.Tracker
}

func newProgressReporter(total int) *progressReporter {
	pw := progress.NewWriter()
	pw.SetOutputWriter(os.Stderr)
	pw.SetUpdateFrequency(100 * time.Millisecond)

	tracker := &progress.Tracker{
		Message: "Generating",
		Total:   int64(total),
		Units:   progress.UnitsDefault,
	}
	pw.AppendTracker(tracker)
	go pw.Render()

	return &progressReporter{writer: pw, tracker: tracker}
}

func (p *progressReporter) Step(n int) {
	p.tracker.Increment(int64(n))
}

// Stop finishes rendering. Safe to call once the run is over, including
// after an interrupt.
func (p *progressReporter) Stop() {
	p.tracker.MarkAsDone()
	p.writer.Stop()
}
