package main

import (
	"time"

	flag "github.com/spf13/pflag"
)

const (
	// CfgPOWNumThreads defines the config flag of the number of threads used to do the PoW.
	CfgPOWNumThreads = "pow.numThreads"
	// CfgPOWTimeout defines the config flag for the duration of the benchmark.
	CfgPOWTimeout = "pow.timeout"
	// CfgBenchStateLength defines the config flag of the number of register indices.
	CfgBenchStateLength = "bench.stateLength"
	// CfgBenchRounds defines the config flag of the rounds handed to the transform.
	CfgBenchRounds = "bench.rounds"
	// CfgBenchNonceFrom defines the config flag of the first nonce index.
	CfgBenchNonceFrom = "bench.nonceFrom"
	// CfgBenchNonceTo defines the config flag of the index after the last nonce index.
	CfgBenchNonceTo = "bench.nonceTo"
	// CfgBenchReportInterval defines the config flag of the interval between two rate reports.
	CfgBenchReportInterval = "bench.reportInterval"
	// CfgBenchMetricsBindAddress defines the config flag of the prometheus endpoint, empty disables it.
	CfgBenchMetricsBindAddress = "bench.metricsBindAddress"
)

func init() {
	flag.Int(CfgPOWNumThreads, 1, "number of threads used to do the PoW")
	flag.Duration(CfgPOWTimeout, 10*time.Second, "duration of the benchmark")
	flag.Int(CfgBenchStateLength, 729, "number of register indices")
	flag.Int(CfgBenchRounds, 81, "number of rounds handed to the transform")
	flag.Int(CfgBenchNonceFrom, 162, "first register index of the nonce")
	flag.Int(CfgBenchNonceTo, 243, "register index after the last nonce index")
	flag.Duration(CfgBenchReportInterval, time.Second, "interval between two rate reports")
	flag.String(CfgBenchMetricsBindAddress, "", "bind address of the prometheus endpoint, empty disables it")
}
