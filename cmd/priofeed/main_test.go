package main

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"priofeed/pkg/config"
	"priofeed/pkg/domain"
	"priofeed/pkg/scoring"
)

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: "non-existent-config.yml"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "invalid-config-*.yml")
	require.NoError(t, err)
	defer os.Remove(tmpFile.Name()) //nolint:errcheck

	_, err = tmpFile.WriteString("invalid: yaml: content: [")
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err = run(ctx, Opts{Config: tmpFile.Name()})
	require.Error(t, err)
	require.Contains(t, err.Error(), "load config")
}

func TestRun_ServerStartStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	wd, err := os.Getwd()
	require.NoError(t, err)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- run(ctx, Opts{Config: wd + "/testdata/test_config.yml"})
	}()

	// give the server a moment to start, then shut it down
	time.Sleep(200 * time.Millisecond)
	cancel()

	select {
	case err := <-serverErr:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop in time")
	}
}

func TestScoringWeights_Empty(t *testing.T) {
	assert.Nil(t, scoringWeights(nil))
	assert.Nil(t, scoringWeights(map[string]map[string]float64{}))
}

func TestScoringWeights_MergesOntoDefaults(t *testing.T) {
	got := scoringWeights(map[string]map[string]float64{
		"task": {"priority": 0.5},
	})
	require.NotNil(t, got)

	assert.InDelta(t, 0.5, got[domain.SourceTask][scoring.FactorPriority], 0.0001)
	// untouched factors and sources keep defaults
	assert.InDelta(t, 0.25, got[domain.SourceTask][scoring.FactorOverdue], 0.0001)
	assert.InDelta(t, 0.40, got[domain.SourceDocument][scoring.FactorRecency], 0.0001)
}

func TestKeywordTiers_Empty(t *testing.T) {
	assert.Nil(t, keywordTiers(config.ScoringConfig{}))
}

func TestKeywordTiers_PartialOverride(t *testing.T) {
	var cfg config.ScoringConfig
	cfg.Keywords.Critical = []string{"sev1"}

	got := keywordTiers(cfg)
	require.NotNil(t, got)
	assert.Equal(t, []string{"sev1"}, got.Critical)
	// untouched tiers keep defaults
	assert.Equal(t, scoring.DefaultKeywordTiers().High, got.High)
}

func TestSetupLog(t *testing.T) {
	// exercises both branches, no assertions beyond not panicking
	setupLog(false)
	setupLog(true, "secret")
}
