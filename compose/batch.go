package compose

import (
	"github.com/gogpu/medal/constraints"
	"github.com/gogpu/medal/internal/parallel"
)

// ComposeAll composes every composition against the same profile on up to
// workers goroutines (zero means GOMAXPROCS). Designs and errors are
// indexed like cs: for each i exactly one of designs[i] and errs[i] is
// non-nil.
//
// Compose shares no state between calls, so the designs are the same as
// composing one by one.
func ComposeAll(cs []Composition, p constraints.Profile, workers int) (designs []*Design, errs []error) {
	designs = make([]*Design, len(cs))
	errs = make([]error, len(cs))
	if len(cs) == 0 {
		return designs, errs
	}

	pool := parallel.NewPool(min(workers, len(cs)))
	defer pool.Close()

	jobs := make([]func(), len(cs))
	for i := range cs {
		jobs[i] = func() {
			designs[i], errs[i] = Compose(cs[i], p)
		}
	}
	pool.Run(jobs)
	return designs, errs
}
