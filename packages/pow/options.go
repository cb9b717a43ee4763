package pow

import (
	"github.com/iotaledger/hive.go/logger"
)

// region WithNumWorkers ///////////////////////////////////////////////////////////////////////////////////////////////

// WithNumWorkers is an Option for the Worker that sets the number of goroutines searching in parallel. Each of them
// owns its own copy of the register.
func WithNumWorkers(numWorkers int) (option Option) {
	return func(options *options) {
		if numWorkers > 0 {
			options.numWorkers = numWorkers
		}
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region WithLogger ///////////////////////////////////////////////////////////////////////////////////////////////////

// WithLogger is an Option for the Worker that sets the logger used to report the progress of a search.
func WithLogger(log *logger.Logger) (option Option) {
	return func(options *options) {
		options.log = log
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region WithMetrics //////////////////////////////////////////////////////////////////////////////////////////////////

// WithMetrics is an Option for the Worker that sets the collectors updated during a search.
func WithMetrics(metrics *Metrics) (option Option) {
	return func(options *options) {
		options.metrics = metrics
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region options //////////////////////////////////////////////////////////////////////////////////////////////////////

// options is a container for all configurable parameters of the Worker.
type options struct {
	// numWorkers contains the number of parallel searches.
	numWorkers int

	// log contains the logger, nil disables logging.
	log *logger.Logger

	// metrics contains the collectors, nil disables metrics.
	metrics *Metrics
}

// newOptions returns a new options object that corresponds to the handed in options and which is derived from the
// default options.
func newOptions(option ...Option) *options {
	return (&options{
		numWorkers: 1,
	}).apply(option...)
}

// apply modifies the options object by overriding the handed in options.
func (o *options) apply(options ...Option) (self *options) {
	for _, option := range options {
		option(o)
	}

	return o
}

// Option represents the return type of optional parameters that can be handed into the constructor of the Worker
// to configure its behavior.
type Option func(*options)

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
