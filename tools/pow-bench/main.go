// pow-bench measures how many nonce candidates per second the bit-sliced search driver can prepare. It uses an
// identity transform and a checker that never matches, so the numbers reflect the register and lane assembly only.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/configuration"
	"github.com/iotaledger/hive.go/logger"
	"github.com/paulbellamy/ratecounter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/iotaledger/bctcurl/packages/pow"
	"github.com/iotaledger/bctcurl/packages/ternary"
)

const loggerName = "PoWBench"

func main() {
	config, err := loadConfig()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	log, err := initLogger()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if err = run(config, log); err != nil {
		log.Errorw("benchmark failed", "err", err)
		os.Exit(1)
	}
}

// loadConfig merges the command line flags with environment variables, POW_NUMTHREADS overrides pow.numThreads.
func loadConfig() (*viper.Viper, error) {
	flag.Parse()

	config := viper.New()
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()
	if err := config.BindPFlags(flag.CommandLine); err != nil {
		return nil, errors.Wrap(err, "failed to bind flags")
	}

	return config, nil
}

// initLogger sets up the global logger and returns the named logger of the tool.
func initLogger() (*logger.Logger, error) {
	if err := logger.InitGlobalLogger(configuration.New()); err != nil {
		return nil, errors.Wrap(err, "failed to initialize logger")
	}

	return logger.NewLogger(loggerName), nil
}

func run(config *viper.Viper, log *logger.Logger) error {
	var (
		stateLength    = config.GetInt(CfgBenchStateLength)
		nonce          = pow.Window{From: config.GetInt(CfgBenchNonceFrom), To: config.GetInt(CfgBenchNonceTo)}
		reportInterval = config.GetDuration(CfgBenchReportInterval)
	)
	if stateLength <= 0 || reportInterval <= 0 {
		return errors.Errorf("invalid benchmark parameters: stateLength %d, reportInterval %s", stateLength, reportInterval)
	}

	state := ternary.NewRegister(stateLength, config.GetInt(CfgBenchRounds))
	if err := state.Initialize(0, stateLength); err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	metrics, err := pow.NewMetrics(registry)
	if err != nil {
		return err
	}
	if bindAddress := config.GetString(CfgBenchMetricsBindAddress); bindAddress != "" {
		go serveMetrics(bindAddress, registry, log)
	}

	candidates := ratecounter.NewRateCounter(reportInterval)
	checker := pow.CheckerFunc(func([]uint64, []uint64) (int, bool) {
		candidates.Incr(ternary.NumberOfLanes)
		return 0, false
	})
	transformer := pow.TransformerFunc(func([]uint64, []uint64, int) {})

	worker := pow.New(transformer,
		pow.WithNumWorkers(config.GetInt(CfgPOWNumThreads)),
		pow.WithLogger(log),
		pow.WithMetrics(metrics),
	)

	ctx, cancel := context.WithTimeout(context.Background(), config.GetDuration(CfgPOWTimeout))
	defer cancel()

	go report(ctx, candidates, reportInterval, log)

	log.Infow("starting benchmark", "numWorkers", worker.NumWorkers(), "stateLength", stateLength, "nonceFrom", nonce.From, "nonceTo", nonce.To)

	_, err = worker.Mine(ctx, state, nonce, checker)
	switch {
	case errors.Is(err, pow.ErrCancelled):
		log.Infow("benchmark finished", "candidatesPerSecond", perSecond(candidates.Rate(), reportInterval))
		return nil
	case errors.Is(err, pow.ErrExhausted):
		log.Infow("nonce space exhausted before the timeout, use a wider nonce window")
		return nil
	default:
		return err
	}
}

func report(ctx context.Context, candidates *ratecounter.RateCounter, interval time.Duration, log *logger.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			log.Infof("%d candidates/s", perSecond(candidates.Rate(), interval))
		}
	}
}

func serveMetrics(bindAddress string, registry *prometheus.Registry, log *logger.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	log.Infow("serving metrics", "bindAddress", bindAddress)
	if err := http.ListenAndServe(bindAddress, mux); err != nil {
		log.Warnw("metrics endpoint stopped", "err", err)
	}
}

func perSecond(count int64, interval time.Duration) int64 {
	return count * int64(time.Second) / int64(interval)
}
