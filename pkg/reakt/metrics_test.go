package reakt

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/reakt-dev/reakt/pkg/vdom"
)

// metricValue returns the value of a counter or gauge whose labels include
// all of labels, or -1 if there is none.
func metricValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	next:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if want, ok := labels[lp.GetName()]; ok && want != lp.GetValue() {
					continue next
				}
			}
			if c := m.GetCounter(); c != nil {
				return c.GetValue()
			}
			if g := m.GetGauge(); g != nil {
				return g.GetValue()
			}
			if h := m.GetHistogram(); h != nil {
				return float64(h.GetSampleCount())
			}
		}
	}
	return -1
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, container := newTestRuntime(WithMetrics(NewMetrics(WithRegistry(reg))))

	var set func(int)
	app := func(vdom.Props) *vdom.Element {
		n, s := UseState(1)
		set = s
		UseEffect(func() {}, n)
		if n == 0 {
			return nil
		}
		return vdom.Div(vdom.P(n))
	}
	mustRender(t, r, vdom.Create(app, nil), container)
	set(2)
	set(0)

	tests := []struct {
		name   string
		labels map[string]string
		want   float64
	}{
		{"reakt_render_passes_total", map[string]string{"result": "ok"}, 2},
		{"reakt_render_passes_total", map[string]string{"result": "error"}, 1},
		{"reakt_render_duration_seconds", nil, 3},
		{"reakt_state_updates_total", nil, 2},
		{"reakt_effect_runs_total", nil, 3},
		// div, p, text on each of two successful passes
		{"reakt_nodes_created_total", nil, 6},
		{"reakt_hook_slots", nil, 2},
	}
	for _, tt := range tests {
		if got := metricValue(t, reg, tt.name, tt.labels); got != tt.want {
			t.Errorf("%s%v = %v, want %v", tt.name, tt.labels, got, tt.want)
		}
	}
}

func TestMetricsNamespace(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg), WithNamespace("ui"), WithSubsystem("demo"),
		WithBuckets([]float64{0.001, 0.01}), WithConstLabels(prometheus.Labels{"app": "test"}))
	r, container := newTestRuntime(WithMetrics(m))
	mustRender(t, r, vdom.P("x"), container)

	if got := metricValue(t, reg, "ui_demo_render_passes_total", map[string]string{"app": "test"}); got != 1 {
		t.Errorf("ui_demo_render_passes_total = %v, want 1", got)
	}
}
