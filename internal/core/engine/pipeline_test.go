package engine

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fmfug/fmfug/internal/core"
	"github.com/fmfug/fmfug/internal/core/format"
)

type stubTask struct {
	failOn string
}

func (s *stubTask) Generate(item core.WorkItem) []string {
	if s.failOn != "" && item.Raw == s.failOn {
		panic("malformed item")
	}
	return []string{item.Raw + "1", item.Raw + "2"}
}

type captureSink struct {
	lines   []string
	flushes int
}

func (s *captureSink) Accept(usernames []string) error {
	s.lines = append(s.lines, usernames...)
	return nil
}

func (s *captureSink) Flush() error {
	s.flushes++
	return nil
}

type countingSource struct {
	pulled int
	limit  int
}

func (s *countingSource) Next() (core.WorkItem, bool) {
	if s.pulled >= s.limit {
		return core.WorkItem{}, false
	}
	s.pulled++
	return core.WorkItem{Raw: fmt.Sprintf("name%d", s.pulled)}, true
}

// cancelReporter cancels the run after a fixed number of completions.
type cancelReporter struct {
	steps  int
	after  int
	cancel context.CancelFunc
}

func (r *cancelReporter) Step(n int) {
	r.steps += n
	if r.steps >= r.after {
		r.cancel()
	}
}

func TestPipelineTotals(t *testing.T) {
	sink := &captureSink{}
	pipeline := &Pipeline{Task: &stubTask{}, Workers: 4}

	total, err := pipeline.Run(context.Background(), &countingSource{limit: 50}, sink)
	require.NoError(t, err)
	require.Equal(t, int64(100), total)
	require.Len(t, sink.lines, 100)
	require.Equal(t, 1, sink.flushes)
}

func TestPipelineEmptySource(t *testing.T) {
	sink := &captureSink{}
	pipeline := &Pipeline{Task: &stubTask{}, Workers: 2}

	total, err := pipeline.Run(context.Background(), &countingSource{}, sink)
	require.NoError(t, err)
	require.Zero(t, total)
	require.Empty(t, sink.lines)
	require.Equal(t, 1, sink.flushes)
}

func TestPipelineErrorIsolation(t *testing.T) {
	sink := &captureSink{}
	var events []ErrorEvent
	reporter := &stepCounter{}

	pipeline := &Pipeline{
		Task:     &stubTask{failOn: "name7"},
		Workers:  4,
		Reporter: reporter,
		OnError:  func(ev ErrorEvent) { events = append(events, ev) },
	}

	total, err := pipeline.Run(context.Background(), &countingSource{limit: 20}, sink)
	require.NoError(t, err)

	// Exactly one error event carrying the offending item; every other
	// item still contributed its output.
	require.Len(t, events, 1)
	require.Equal(t, "name7", events[0].Item.Raw)
	require.ErrorContains(t, events[0].Err, "malformed item")
	require.Equal(t, int64(38), total)
	require.Len(t, sink.lines, 38)

	// Progress ticks for failures too.
	require.Equal(t, 20, reporter.steps)
}

type stepCounter struct {
	steps int
}

func (r *stepCounter) Step(n int) { r.steps += n }

func TestPipelineSingleWorkerIsDeterministic(t *testing.T) {
	generator := format.NewGenerator([]string{"first.last", "first[1]last"}, format.Options{})

	run := func() (int64, []string) {
		sink := &captureSink{}
		pipeline := &Pipeline{Task: generator, Workers: 1}
		source := core.Names([]string{"Ada Lovelace", "Grace Hopper", "Alan Turing"})
		total, err := pipeline.Run(context.Background(), source, sink)
		require.NoError(t, err)
		return total, sink.lines
	}

	firstTotal, firstLines := run()
	secondTotal, secondLines := run()

	require.Equal(t, firstTotal, secondTotal)
	require.Equal(t, firstLines, secondLines)
	require.Equal(t, []string{
		"ada.lovelace", "alovelace",
		"grace.hopper", "ghopper",
		"alan.turing", "aturing",
	}, firstLines)
}

func TestPipelineParallelMatchesSerialMultiset(t *testing.T) {
	generator := format.NewGenerator(nil, format.Options{})
	names := make([]string, 0, 40)
	for i := 0; i < 40; i++ {
		names = append(names, fmt.Sprintf("user%02d example", i))
	}

	run := func(workers int) (int64, []string) {
		sink := &captureSink{}
		pipeline := &Pipeline{Task: generator, Workers: workers}
		total, err := pipeline.Run(context.Background(), core.Names(names), sink)
		require.NoError(t, err)
		lines := append([]string(nil), sink.lines...)
		sort.Strings(lines)
		return total, lines
	}

	serialTotal, serialLines := run(1)
	parallelTotal, parallelLines := run(8)

	require.Equal(t, serialTotal, parallelTotal)
	require.Equal(t, serialLines, parallelLines)
}

func TestPipelineBoundsInFlightItems(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source := &countingSource{limit: 10000}
	sink := &captureSink{}
	pipeline := &Pipeline{
		Task:     &stubTask{},
		Workers:  4,
		Reporter: &cancelReporter{after: 1, cancel: cancel},
	}

	_, err := pipeline.Run(ctx, source, sink)
	require.ErrorIs(t, err, context.Canceled)

	// Only the first chunk (workers x 200) was ever pulled from the source.
	require.Equal(t, 4*chunkPerWorker, source.pulled)
}

func TestPipelineFlushesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out strings.Builder
	sink := NewBufferedSink(&out, 100000)
	pipeline := &Pipeline{
		Task:     &stubTask{},
		Workers:  1,
		Reporter: &cancelReporter{after: 1, cancel: cancel},
	}

	total, err := pipeline.Run(ctx, &countingSource{limit: 10}, sink)
	require.ErrorIs(t, err, context.Canceled)

	// Everything already submitted was collected and flushed; the partial
	// total matches what reached the sink.
	lines := strings.Fields(out.String())
	require.Equal(t, int(total), len(lines))
	require.NotEmpty(t, lines)
}
