package main

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/logger"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *viper.Viper {
	config := viper.New()
	config.Set(CfgPOWNumThreads, 2)
	config.Set(CfgPOWTimeout, 50*time.Millisecond)
	config.Set(CfgBenchStateLength, 243)
	config.Set(CfgBenchRounds, 27)
	config.Set(CfgBenchNonceFrom, 81)
	config.Set(CfgBenchNonceTo, 162)
	config.Set(CfgBenchReportInterval, 10*time.Millisecond)

	return config
}

func TestRun(t *testing.T) {
	log := logger.NewExampleLogger(loggerName)

	require.NoError(t, run(testConfig(), log))

	// a tiny nonce window is exhausted long before the timeout
	config := testConfig()
	config.Set(CfgBenchNonceTo, 85)
	require.NoError(t, run(config, log))

	config = testConfig()
	config.Set(CfgBenchNonceTo, 300)
	assert.Error(t, run(config, log))

	config = testConfig()
	config.Set(CfgBenchStateLength, 0)
	assert.Error(t, run(config, log))
}

func TestInitLogger(t *testing.T) {
	log, err := initLogger()
	require.NoError(t, err)
	assert.NotNil(t, log)

	// the global logger can only be set up once, the failure is returned instead of panicking
	_, err = initLogger()
	assert.True(t, errors.Is(err, logger.ErrGlobalLoggerAlreadyInitialized))
}

func TestPerSecond(t *testing.T) {
	assert.Equal(t, int64(640), perSecond(64, 100*time.Millisecond))
	assert.Equal(t, int64(32), perSecond(64, 2*time.Second))
}
