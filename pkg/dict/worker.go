// Copyright 2024 QuartzDB
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dict

import (
	"golang.org/x/sync/errgroup"

	"github.com/quartzdb/quartz/pkg/config"
)

// builder carries the tuning parameters shared by all chunk tasks of one
// driver invocation.
type builder struct {
	workers      int
	rowsPerBatch int
	maxChainHops int
}

func newBuilder(params *config.BuilderParameters) *builder {
	return &builder{
		workers:      int(params.NumWorkers),
		rowsPerBatch: int(params.RowsPerBatch),
		maxChainHops: int(params.MaxChainHops),
	}
}

// parallelFor splits [0, n) into one contiguous range per worker and joins
// every worker before returning.  The join is the phase barrier: a caller
// sequencing parallelFor invocations gets lock-step phases, and no worker
// reads a sibling's write from the previous phase before that barrier.
func (b *builder) parallelFor(n int, fn func(worker, beg, end int) error) error {
	if n <= 0 {
		return nil
	}
	workers := b.workers
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		return fn(0, 0, n)
	}
	per := (n + workers - 1) / workers
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		beg := w * per
		end := beg + per
		if end > n {
			end = n
		}
		if beg >= end {
			break
		}
		w, beg, end := w, beg, end
		g.Go(func() error {
			return fn(w, beg, end)
		})
	}
	return g.Wait()
}
