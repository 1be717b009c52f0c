package localplatform

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// FanOutSum runs partitionCount independent partitions of work
// concurrently and sums their results. A Handler calls this to model a
// stage that internally splits its input across workers, the way an
// operator library might shard a channel by partition, while staying
// behind the single Execute call the driver sees.
func FanOutSum(ctx context.Context, partitionCount int, partition func(ctx context.Context, index int) (int64, error)) (int64, error) {
	var g errgroup.Group
	results := make([]int64, partitionCount)

	for i := 0; i < partitionCount; i++ {
		i := i
		g.Go(func() error {
			n, err := partition(ctx, i)
			if err != nil {
				return err
			}
			results[i] = n
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total int64
	for _, n := range results {
		total += n
	}
	return total, nil
}
