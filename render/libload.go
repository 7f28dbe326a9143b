package render

import (
	"sync"

	vizschema "github.com/reportkit/vizschema"
)

// LoadStatus is the synchronous view of one chart library's load.
type LoadStatus int

const (
	LoadReady LoadStatus = iota
	LoadPending
	LoadFailed
)

// Emitter turns a built ChartConfig into markup. The built-in emitter embeds
// the config for a client-side drawing library; embedders can substitute a
// server-side one (SVG, image service) through a LoadFunc.
type Emitter interface {
	Emit(cfg ChartConfig) string
}

// LoadFunc resolves the drawing backend for one chart library identity.
// Loads may be expensive (fetching a bundle, launching a sidecar), so the
// loader caches one in-flight/completed load per library, not per element:
// a document with twenty bar charts performs a single "cartesian" load.
type LoadFunc func(library string) (Emitter, error)

// DriverLoader caches chart drawing backends keyed by library identity.
type DriverLoader struct {
	mu     sync.Mutex
	load   LoadFunc
	async  bool
	states map[string]*libState
}

type libState struct {
	status  LoadStatus
	emitter Emitter
}

// NewDriverLoader builds a loader around fn. A nil fn selects the built-in
// embedded emitter, which resolves synchronously.
func NewDriverLoader(fn LoadFunc) *DriverLoader {
	if fn == nil {
		fn = func(string) (Emitter, error) { return builtinEmitter{}, nil }
	}
	return &DriverLoader{load: fn, states: map[string]*libState{}}
}

// Async makes subsequent first-time loads run in a goroutine; Get reports
// LoadPending until the load lands. A consumer that goes away before the
// load completes simply never reads the cached result; the loader holds no
// callback into render targets.
func (l *DriverLoader) Async() *DriverLoader {
	l.mu.Lock()
	l.async = true
	l.mu.Unlock()
	return l
}

// Get returns the backend for the library plus its load status, triggering
// the one-shot load on first request. A pending load is never re-triggered
// by re-render.
func (l *DriverLoader) Get(library string) (Emitter, LoadStatus) {
	l.mu.Lock()
	if st, ok := l.states[library]; ok {
		defer l.mu.Unlock()
		return st.emitter, st.status
	}
	st := &libState{status: LoadPending}
	l.states[library] = st
	async := l.async
	l.mu.Unlock()

	if async {
		go l.resolve(library, st)
		return nil, LoadPending
	}
	l.resolve(library, st)
	l.mu.Lock()
	defer l.mu.Unlock()
	return st.emitter, st.status
}

func (l *DriverLoader) resolve(library string, st *libState) {
	em, err := l.load(library)
	l.mu.Lock()
	if err != nil {
		st.status = LoadFailed
	} else {
		st.status = LoadReady
		st.emitter = em
	}
	l.mu.Unlock()
}

// libraryFor groups chart kinds into drawing-library identities so kinds that
// share a bundle share a load.
func libraryFor(t vizschema.ElementType) string {
	switch t {
	case vizschema.TypeBarChart, vizschema.TypeStackedBar, vizschema.TypeLineChart,
		vizschema.TypeAreaChart, vizschema.TypeBubbleChart:
		return "cartesian"
	case vizschema.TypeDonutChart, vizschema.TypeRadarChart, vizschema.TypeFunnelChart:
		return "radial"
	case vizschema.TypeHeatmap:
		return "matrix"
	case vizschema.TypeSankey:
		return "flow"
	default:
		return "cartesian"
	}
}
