// Package profiling writes pprof and execution-trace profiles for the
// CLI's --profile flags.
package profiling

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
)

// Profiler owns the profile files opened during one command run.
type Profiler struct {
	cpuFile   *os.File
	traceFile *os.File
}

// NewProfiler creates an idle profiler.
func NewProfiler() *Profiler {
	return &Profiler{}
}

// StartCPU begins CPU profiling into path. The returned stop function
// flushes and closes the profile; it must be called before exit.
func (p *Profiler) StartCPU(path string) (stop func(), err error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create cpu profile %s: %w", path, err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("start cpu profile: %w", err)
	}
	p.cpuFile = f

	return func() {
		pprof.StopCPUProfile()
		_ = p.cpuFile.Close()
		p.cpuFile = nil
	}, nil
}

// StartTrace begins execution tracing into path. The returned stop
// function flushes and closes the trace.
func (p *Profiler) StartTrace(path string) (stop func(), err error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create trace %s: %w", path, err)
	}
	if err := trace.Start(f); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("start trace: %w", err)
	}
	p.traceFile = f

	return func() {
		trace.Stop()
		_ = p.traceFile.Close()
		p.traceFile = nil
	}, nil
}

// WriteHeap writes a heap snapshot to path. A GC runs first so the
// snapshot reflects live objects rather than collectible garbage.
func (p *Profiler) WriteHeap(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create heap profile %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	runtime.GC()

	if err := pprof.WriteHeapProfile(f); err != nil {
		return fmt.Errorf("write heap profile: %w", err)
	}
	return nil
}
