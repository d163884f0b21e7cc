package runutil

import "runtime"

// EffectiveThreads maps the --threads flag to a worker count:
// 0 means all CPUs, anything else is used as-is.
func EffectiveThreads(n int) int {
	if n <= 0 {
		return runtime.NumCPU()
	}
	return n
}
