package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordSearch(t *testing.T) {
	before := testutil.ToFloat64(searchesTotal.WithLabelValues("path-found"))
	RecordSearch("path-found", 12)
	after := testutil.ToFloat64(searchesTotal.WithLabelValues("path-found"))
	if after != before+1 {
		t.Errorf("searches counter: got %v, want %v", after, before+1)
	}
}

func TestRecordRebuild(t *testing.T) {
	RecordRebuild(40, 96)
	if got := testutil.ToFloat64(graphNodes); got != 40 {
		t.Errorf("node gauge: got %v, want 40", got)
	}
	if got := testutil.ToFloat64(graphLinks); got != 96 {
		t.Errorf("link gauge: got %v, want 96", got)
	}
}
