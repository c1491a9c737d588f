package observability

import (
	"bytes"
	"strings"
	"testing"
)

func TestStatsSummarizeEmpty(t *testing.T) {
	s := NewStats()
	if got := s.Summarize(); got.Count != 0 {
		t.Fatalf("Summarize() on empty Stats = %+v, want zero Summary", got)
	}
}

func TestStatsRecordTrialAccumulates(t *testing.T) {
	s := NewStats()
	s.RecordTrial(0, 10)
	s.RecordTrial(0, 20)
	s.RecordTrial(1, 100)

	if got := s.Trials(); got != 3 {
		t.Fatalf("Trials() = %d, want 3", got)
	}

	sum := s.Summarize()
	if sum.Count != 3 || sum.Mean <= 0 {
		t.Fatalf("Summarize() = %+v, want count=3 and positive mean", sum)
	}

	mode0 := s.SummarizeMode(0)
	if mode0.Count != 2 || mode0.Mean != 15 {
		t.Fatalf("SummarizeMode(0) = %+v, want count=2 mean=15", mode0)
	}

	mode9 := s.SummarizeMode(9)
	if mode9.Count != 0 {
		t.Fatalf("SummarizeMode(9) on untrialled mode = %+v, want zero Summary", mode9)
	}
}

func TestStatsRecordCommitAndAnalyzerError(t *testing.T) {
	s := NewStats()
	s.RecordCommit()
	s.RecordCommit()
	s.RecordAnalyzerError()

	if got := s.Commits(); got != 2 {
		t.Fatalf("Commits() = %d, want 2", got)
	}
	if got := s.AnalyzerErrors(); got != 1 {
		t.Fatalf("AnalyzerErrors() = %d, want 1", got)
	}
}

func TestTraceLoggerNilIsNoop(t *testing.T) {
	var t1 *TraceLogger
	t1.Trialf("mode=%d cost=%f", 3, 1.5)
	t1.Commitf("mode=%d", 3)
}

func TestTraceLoggerWritesToUnderlyingWriter(t *testing.T) {
	var buf bytes.Buffer
	tl := NewTraceLoggerTo(&buf)
	tl.Trialf("mode=%d cost=%.2f", 5, 12.5)

	if !strings.Contains(buf.String(), "mode=5 cost=12.50") {
		t.Fatalf("log output = %q, want it to contain the formatted trial message", buf.String())
	}
}
