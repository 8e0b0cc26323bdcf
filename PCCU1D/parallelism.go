package PCCU1D

import (
	"github.com/notargets/goswe/utils"
	"golang.org/x/sync/errgroup"
)

// partitions holds the splits of the three index ranges the engine loops over
type partitions struct {
	parallelDegree int
	cells          *utils.PartitionMap // All Nx columns of W
	interfaces     *utils.PartitionMap // Nx-1 interfaces
	interior       *utils.PartitionMap // Nx-2 interior cells
}

func newPartitions(parallelDegree, Nx int) *partitions {
	if parallelDegree < 1 {
		parallelDegree = 1
	}
	return &partitions{
		parallelDegree: parallelDegree,
		cells:          utils.NewPartitionMap(parallelDegree, Nx),
		interfaces:     utils.NewPartitionMap(parallelDegree, Nx-1),
		interior:       utils.NewPartitionMap(parallelDegree, Nx-2),
	}
}

// forEach runs f over every bucket of pm, concurrently when the parallel
// degree exceeds one. f receives the half open range [kMin, kMax).
func (p *partitions) forEach(pm *utils.PartitionMap, f func(kMin, kMax int) error) error {
	if p.parallelDegree == 1 {
		return f(0, pm.MaxIndex)
	}
	var g errgroup.Group
	for bn := 0; bn < pm.ParallelDegree; bn++ {
		kMin, kMax := pm.GetBucketRange(bn)
		if kMin == kMax {
			continue
		}
		g.Go(func() error {
			return f(kMin, kMax)
		})
	}
	return g.Wait()
}
