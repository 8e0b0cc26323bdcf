package utils

import (
	"fmt"
	"math"
	"runtime"
)

// MemUsage is a snapshot of runtime.MemStats with the sizes in MiB
type MemUsage struct {
	HeapMiB, TotalMiB, SysMiB uint64
	NumGC                     uint32
}

func ReadMemUsage() (mu MemUsage) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	const miB = 1 << 20
	return MemUsage{
		HeapMiB:  ms.HeapAlloc / miB,
		TotalMiB: ms.TotalAlloc / miB,
		SysMiB:   ms.Sys / miB,
		NumGC:    ms.NumGC,
	}
}

func (mu MemUsage) String() string {
	return fmt.Sprintf("heap %d MiB, allocated %d MiB, sys %d MiB, %d GC",
		mu.HeapMiB, mu.TotalMiB, mu.SysMiB, mu.NumGC)
}

func IsNan(A any) bool {
	switch v := A.(type) {
	case float64:
		return math.IsNaN(v)
	case []float64:
		for _, f := range v {
			if math.IsNaN(f) {
				return true
			}
		}
	case Matrix:
		return IsNan(v.Data())
	}
	return false
}

// FirstNonFinite returns the row major index of the first NaN or Inf in A,
// or -1 when every entry is finite.
func FirstNonFinite(A Matrix) (i, j int) {
	var (
		_, nc = A.Dims()
	)
	for ind, f := range A.Data() {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return ind / nc, ind % nc
		}
	}
	return -1, -1
}
