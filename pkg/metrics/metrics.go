package metrics

// Collector captures counters, gauges and histograms.
type Collector interface {
	IncCounter(name string, labels map[string]string, delta float64)
	SetGauge(name string, labels map[string]string, value float64)
	ObserveHistogram(name string, labels map[string]string, value float64)
}

// Metric names recorded by the HTTP adapter.
const (
	EngineCalls   = "algotrace_engine_calls_total"
	StepsEmitted  = "algotrace_steps_emitted_total"
	TraceLength   = "algotrace_trace_length"
	RequestErrors = "algotrace_request_errors_total"
	InputLength   = "algotrace_last_input_length"
)
