package crawler

import (
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/deloschang/mini-search-engine/internal/telemetry"
)

// ResourceSnapshot is a point-in-time read of system memory and CPU,
// logged periodically during a long crawl for diagnostics. Unlike the
// teacher's ResourceMonitor — which fed an adaptive tab-pool sizing
// decision for concurrent dynamic crawling — this never gates or throttles
// the BFS loop: spec §5 mandates a strictly sequential, single-threaded
// fetch discipline with no resource-driven scaling, so there is nothing
// for a snapshot to adapt.
type ResourceSnapshot struct {
	UsedMemoryPercent float64
	CPUPercent        float64
}

// TakeResourceSnapshot samples current memory and CPU usage. Errors from
// the underlying gopsutil calls are logged and produce a zero-value
// field rather than aborting the crawl — this is diagnostic-only.
func TakeResourceSnapshot() ResourceSnapshot {
	var snap ResourceSnapshot

	if vm, err := mem.VirtualMemory(); err != nil {
		telemetry.Warnf("reading memory stats: %v", err)
	} else {
		snap.UsedMemoryPercent = vm.UsedPercent
	}

	if percents, err := cpu.Percent(0, false); err != nil {
		telemetry.Warnf("reading cpu stats: %v", err)
	} else if len(percents) > 0 {
		snap.CPUPercent = percents[0]
	}

	return snap
}

// LogResourceSnapshot logs a ResourceSnapshot at debug level, tagged with
// the number of pages fetched so far.
func LogResourceSnapshot(pagesFetched int) {
	snap := TakeResourceSnapshot()
	telemetry.Debugf("resource snapshot after %d pages: mem=%.1f%% cpu=%.1f%%",
		pagesFetched, snap.UsedMemoryPercent, snap.CPUPercent)
}
