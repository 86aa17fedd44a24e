package metrics

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/zhangyunhao116/skipmap"
)

type seriesKind int

const (
	kindCounter seriesKind = iota
	kindGauge
	kindHistogram
)

type series struct {
	mu    sync.Mutex
	kind  seriesKind
	value float64 // counter/gauge value, histogram sum
	count uint64  // histogram observations
}

// Memory is an in-process Collector. Series are kept in a skipmap keyed by
// their rendered name so WriteText output is always sorted.
type Memory struct {
	series *skipmap.FuncMap[string, *series]
}

var _ Collector = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		series: skipmap.NewFunc[string, *series](func(a, b string) bool {
			return a < b
		}),
	}
}

func (m *Memory) IncCounter(name string, labels map[string]string, delta float64) {
	s := m.load(name, labels, kindCounter)
	s.mu.Lock()
	s.value += delta
	s.mu.Unlock()
}

func (m *Memory) SetGauge(name string, labels map[string]string, value float64) {
	s := m.load(name, labels, kindGauge)
	s.mu.Lock()
	s.value = value
	s.mu.Unlock()
}

func (m *Memory) ObserveHistogram(name string, labels map[string]string, value float64) {
	s := m.load(name, labels, kindHistogram)
	s.mu.Lock()
	s.value += value
	s.count++
	s.mu.Unlock()
}

// Value returns the current value of a counter or gauge, or the sum of a histogram.
func (m *Memory) Value(name string, labels map[string]string) (float64, bool) {
	s, ok := m.series.Load(seriesKey(name, labels))
	if !ok {
		return 0, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, true
}

// WriteText renders all series in a Prometheus-like text format.
// Histograms are rendered as _sum and _count pairs.
func (m *Memory) WriteText(w io.Writer) error {
	var err error
	m.series.Range(func(key string, s *series) bool {
		s.mu.Lock()
		kind, value, count := s.kind, s.value, s.count
		s.mu.Unlock()

		if kind == kindHistogram {
			name, labels := splitKey(key)
			_, err = fmt.Fprintf(w, "%s_sum%s %s\n%s_count%s %d\n",
				name, labels, formatFloat(value), name, labels, count)
		} else {
			_, err = fmt.Fprintf(w, "%s %s\n", key, formatFloat(value))
		}
		return err == nil
	})
	return err
}

func (m *Memory) load(name string, labels map[string]string, kind seriesKind) *series {
	s, _ := m.series.LoadOrStore(seriesKey(name, labels), &series{kind: kind})
	return s
}

func seriesKey(name string, labels map[string]string) string {
	if len(labels) == 0 {
		return name
	}

	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(k)
		b.WriteString(`="`)
		b.WriteString(labels[k])
		b.WriteByte('"')
	}
	b.WriteByte('}')
	return b.String()
}

func splitKey(key string) (string, string) {
	if i := strings.IndexByte(key, '{'); i >= 0 {
		return key[:i], key[i:]
	}
	return key, ""
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
