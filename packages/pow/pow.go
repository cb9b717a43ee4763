package pow

import (
	"context"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/logger"
	"github.com/iotaledger/iota.go/trinary"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/atomic"

	"github.com/iotaledger/bctcurl/packages/ternary"
)

// Transformer applies the sponge permutation to the words of a register in place. It is called concurrently by all
// workers of a search.
type Transformer interface {
	Transform(low, high []uint64, rounds int)
}

// TransformerFunc is a function implementing Transformer.
type TransformerFunc func(low, high []uint64, rounds int)

// Transform calls f.
func (f TransformerFunc) Transform(low, high []uint64, rounds int) {
	f(low, high, rounds)
}

// Checker inspects a transformed register and reports the first lane that satisfies the target. It is called
// concurrently by all workers of a search.
type Checker interface {
	Check(low, high []uint64) (lane int, ok bool)
}

// CheckerFunc is a function implementing Checker.
type CheckerFunc func(low, high []uint64) (lane int, ok bool)

// Check calls f.
func (f CheckerFunc) Check(low, high []uint64) (lane int, ok bool) {
	return f(low, high)
}

// Window is the range [From, To) of register indices holding the nonce.
type Window struct {
	From int
	To   int
}

// Len returns the number of indices in the window.
func (w Window) Len() int {
	return w.To - w.From
}

// Result describes a found nonce.
type Result struct {
	// Nonce contains the trits of the winning lane over the whole nonce window, before the transform.
	Nonce trinary.Trits
	// Lane is the lane of the batch in which the nonce was found.
	Lane int
	// Worker is the id of the worker that found the nonce.
	Worker int
	// Batches is the number of batches all workers processed until the nonce was found.
	Batches uint64
}

// Worker searches nonces on a bit-sliced register, testing NumberOfLanes candidates per transform.
type Worker struct {
	transformer Transformer
	numWorkers  int
	log         *logger.Logger
	metrics     *Metrics
}

// New creates a new Worker using the given transform.
func New(transformer Transformer, opts ...Option) *Worker {
	options := newOptions(opts...)

	return &Worker{
		transformer: transformer,
		numWorkers:  options.numWorkers,
		log:         options.log,
		metrics:     options.metrics,
	}
}

// NumWorkers returns the number of parallel searches.
func (w *Worker) NumWorkers() int {
	return w.numWorkers
}

// Mine searches a nonce in the given window of state. The state must be fully absorbed and initialized; it is not
// modified. The first WorkerPrefixLength(numWorkers) indices of the window separate the workers, the rest is the
// counter that each worker increments to fill the lanes of a batch.
func (w *Worker) Mine(ctx context.Context, state *ternary.Register, nonce Window, checker Checker) (*Result, error) {
	if w.transformer == nil {
		return nil, ErrMissingTransformer
	}
	if checker == nil {
		return nil, ErrMissingChecker
	}

	prefix := WorkerPrefixLength(w.numWorkers)
	if nonce.From < 0 || nonce.To > state.Len() || nonce.Len() <= prefix {
		return nil, errors.Wrapf(ErrInvalidWindow, "window [%d, %d) on register of length %d with %d worker trits", nonce.From, nonce.To, state.Len(), prefix)
	}
	if err := state.Validate(nonce.From, nonce.To); err != nil {
		return nil, errors.Wrap(err, "nonce window is not initialized")
	}

	pool, err := ants.NewPool(w.numWorkers)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create worker pool")
	}
	defer pool.Release()

	var (
		done    = atomic.NewBool(false)
		batches = atomic.NewUint64(0)
		wg      sync.WaitGroup
		results = make(chan *Result, w.numWorkers)
		errs    = make(chan error, w.numWorkers)
		closing = make(chan struct{})
		start   = time.Now()
	)

	// stop when the context has been cancelled
	go func() {
		select {
		case <-ctx.Done():
			done.Store(true)
		case <-closing:
		}
	}()

	w.debugw("start PoW", "numWorkers", w.numWorkers, "from", nonce.From, "to", nonce.To, "workerTrits", prefix)

	for i := 0; i < w.numWorkers; i++ {
		workerID := i
		wg.Add(1)
		if submitErr := pool.Submit(func() {
			defer wg.Done()

			result, workerErr := w.worker(workerID, state, nonce, prefix, checker, done, batches)
			switch {
			case workerErr == nil:
				done.Store(true)
				results <- result
			case errors.Is(workerErr, errDone), errors.Is(workerErr, ErrExhausted):
				errs <- workerErr
			default:
				done.Store(true)
				errs <- workerErr
			}
		}); submitErr != nil {
			wg.Done()
			done.Store(true)
			errs <- errors.Wrap(submitErr, "failed to start worker")
		}
	}
	wg.Wait()
	close(closing)
	close(results)
	close(errs)

	w.metrics.searchFinished(time.Since(start))

	if result, ok := <-results; ok {
		result.Batches = batches.Load()
		w.metrics.nonceFound()
		w.debugw("PoW done", "worker", result.Worker, "lane", result.Lane, "batches", result.Batches)

		return result, nil
	}

	exhausted := 0
	for workerErr := range errs {
		switch {
		case errors.Is(workerErr, ErrExhausted):
			exhausted++
		case !errors.Is(workerErr, errDone):
			return nil, workerErr
		}
	}
	if exhausted == w.numWorkers {
		w.debugw("PoW exhausted", "batches", batches.Load())
		return nil, ErrExhausted
	}

	w.debugw("PoW cancelled", "batches", batches.Load(), "err", ctx.Err())

	return nil, ErrCancelled
}

func (w *Worker) worker(workerID int, state *ternary.Register, nonce Window, prefix int, checker Checker, done *atomic.Bool, batches *atomic.Uint64) (*Result, error) {
	local := state.Duplicate()
	for i := 0; i < workerID; i++ {
		if _, err := local.Increment(nonce.From, nonce.From+prefix); err != nil {
			return nil, err
		}
	}
	prefixTrits, err := local.Snapshot(nonce.From, nonce.From+prefix)
	if err != nil {
		return nil, err
	}

	counter := Window{From: nonce.From + prefix, To: nonce.To}
	origin, err := local.Snapshot(counter.From, counter.To)
	if err != nil {
		return nil, err
	}

	var (
		multiplexer = ternary.NewBCTernaryMultiplexer()
		wrapped     bool
		exhausted   bool
	)
	for !exhausted {
		if done.Load() {
			return nil, errDone
		}

		multiplexer.Reset()
		for multiplexer.Len() < ternary.NumberOfLanes {
			carry, err := local.Increment(counter.From, counter.To)
			if err != nil {
				return nil, err
			}
			wrapped = wrapped || carry

			snapshot, err := local.Snapshot(counter.From, counter.To)
			if err != nil {
				return nil, err
			}
			if _, err = multiplexer.Add(snapshot); err != nil {
				return nil, err
			}
			// the counter is back where it started, every state has been queued once
			if wrapped && equalTrits(snapshot, origin) {
				exhausted = true
				break
			}
		}

		lanes, err := multiplexer.Extract()
		if err != nil {
			return nil, err
		}
		candidate := local.Duplicate()
		if err = candidate.Store(counter.From, lanes); err != nil {
			return nil, err
		}

		candidate.Apply(w.transformer.Transform)
		batches.Inc()
		w.metrics.batchProcessed(multiplexer.Len())

		var (
			lane  int
			found bool
		)
		candidate.Apply(func(low, high []uint64, _ int) {
			lane, found = checker.Check(low, high)
		})
		if found && lane >= 0 && lane < multiplexer.Len() {
			result := &Result{
				Nonce:  make(trinary.Trits, 0, nonce.Len()),
				Lane:   lane,
				Worker: workerID,
			}
			result.Nonce = append(result.Nonce, prefixTrits...)
			result.Nonce = append(result.Nonce, multiplexer.Get(lane)...)

			return result, nil
		}
	}

	return nil, ErrExhausted
}

func (w *Worker) debugw(msg string, keysAndValues ...interface{}) {
	if w.log != nil {
		w.log.Debugw(msg, keysAndValues...)
	}
}

// WorkerPrefixLength returns the number of trits needed to give each of numWorkers workers a distinct prefix.
func WorkerPrefixLength(numWorkers int) int {
	length := 0
	for capacity := 1; capacity < numWorkers; capacity *= 3 {
		length++
	}

	return length
}

func equalTrits(a, b trinary.Trits) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
