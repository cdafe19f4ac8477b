package bench

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-itersort/internal/config"
	"github.com/ajroetker/go-itersort/internal/lcg"
	"github.com/ajroetker/go-itersort/internal/platform"
	"github.com/ajroetker/go-itersort/itersort"
)

func smallConfig() config.Config {
	cfg := config.Default()
	cfg.Bench = config.Suite{Runs: 5, Length: lcg.Range{Min: 100, Max: 500}, Values: lcg.Range{Min: 0, Max: 1000}}
	return cfg
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestRun(t *testing.T) {
	results, err := Run(context.Background(), smallConfig(), quietLogger())
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, itersort.Hoare, results[0].Strategy)
	assert.Equal(t, itersort.Lomuto, results[1].Strategy)
	for _, r := range results {
		assert.Equal(t, 5, r.Runs)
		assert.Equal(t, results[0].Elements, r.Elements)
		assert.GreaterOrEqual(t, r.Elements, 5*100)
		assert.LessOrEqual(t, r.Fastest, r.Mean)
		assert.LessOrEqual(t, r.Mean, r.Slowest)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, smallConfig(), quietLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSummarize(t *testing.T) {
	r := summarize(itersort.Lomuto, []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond})
	assert.Equal(t, Result{
		Strategy: itersort.Lomuto,
		Runs:     3,
		Total:    6 * time.Millisecond,
		Mean:     2 * time.Millisecond,
		Fastest:  time.Millisecond,
		Slowest:  3 * time.Millisecond,
	}, r)

	assert.Equal(t, Result{Strategy: itersort.Hoare}, summarize(itersort.Hoare, nil))
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	info := platform.Info{OS: "linux", Arch: "amd64", CPUs: 4, Features: []string{"avx2"}}
	results := []Result{{Strategy: itersort.Hoare, Runs: 2, Elements: 10, Total: 2 * time.Microsecond}}

	require.NoError(t, Write(&buf, info, results))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "platform: linux/amd64 4 cpus [avx2]", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "STRATEGY"))
	assert.True(t, strings.HasPrefix(lines[2], "hoare"))
	assert.Contains(t, lines[2], "2µs")
}
