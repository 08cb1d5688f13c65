package main

import (
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"
)

// progressReporter renders a live row counter while the enrichment run is
// walking the file. It is only attached when stdout is a terminal and the
// run is not in verbose mode.
type progressReporter struct {
	writer  progress.Writer
	tracker *progress.Tracker
}

func newProgressReporter(out io.Writer, total int) *progressReporter {
	pw := progress.NewWriter()
	pw.SetOutputWriter(out)
	pw.SetAutoStop(false)
	pw.SetTrackerLength(30)
	pw.SetUpdateFrequency(100 * time.Millisecond)
	pw.Style().Visibility.ETA = false
	pw.Style().Visibility.Speed = false

	tracker := &progress.Tracker{
		Message: "Processing movies",
		Total:   int64(total),
		Units:   progress.UnitsDefault,
	}
	pw.AppendTracker(tracker)
	go pw.Render()

	return &progressReporter{writer: pw, tracker: tracker}
}

func (r *progressReporter) update(done, _ int) {
	r.tracker.SetValue(int64(done))
}

// finish stops the render loop and waits for the final frame so later
// output does not interleave with the bar.
func (r *progressReporter) finish() {
	if !r.tracker.IsDone() {
		r.tracker.MarkAsDone()
	}
	r.writer.Stop()
	for r.writer.IsRenderInProgress() {
		time.Sleep(5 * time.Millisecond)
	}
}
