package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faed235/hyperf-saas-helper/foundation/utils/mathx"
	"github.com/faed235/hyperf-saas-helper/pkg/calc"
)

func TestInstrument(t *testing.T) {
	c := NewCollector()
	b := c.Instrument(mathx.NewBigBackend())
	assert.Equal(t, mathx.BackendBig, b.Name())

	r, err := b.Add("1.5", "2", 10)
	require.NoError(t, err)
	assert.Equal(t, "3.5", r)

	_, err = b.Div("1", "0", 10)
	assert.Error(t, err)
	assert.Equal(t, 1, b.Cmp("2", "1", 10))

	assert.Equal(t, 1.0, testutil.ToFloat64(c.Operations.WithLabelValues("big", "add", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Operations.WithLabelValues("big", "div", OutcomeError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Operations.WithLabelValues("big", "cmp", OutcomeOK)))

	assert.Nil(t, c.Instrument(nil))
}

func TestSummaryWithCalculator(t *testing.T) {
	c := NewCollector()
	calculator := calc.Default().WithBackend(c.Instrument(mathx.NewBigBackend()))

	r, err := calculator.MustInit("10").Add(5).Multiply(2).Sub(1).Result(2, false)
	require.NoError(t, err)
	assert.Equal(t, "29", r)

	rows, err := c.Summary()
	require.NoError(t, err)
	assert.Equal(t, []OpCount{
		{Backend: "big", Op: "add", Outcome: OutcomeOK, Count: 1},
		{Backend: "big", Op: "mul", Outcome: OutcomeOK, Count: 1},
		{Backend: "big", Op: "sub", Outcome: OutcomeOK, Count: 1},
	}, rows)
}

func TestSummaryEmpty(t *testing.T) {
	rows, err := NewCollector().Summary()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCollectorsAreIndependent(t *testing.T) {
	a, b := NewCollector(), NewCollector()
	_, _ = a.Instrument(mathx.NewFloatBackend()).Mul("2", "3", 2)

	assert.Equal(t, 1, testutil.CollectAndCount(a.Operations))
	assert.Equal(t, 0, testutil.CollectAndCount(b.Operations))
	assert.NotSame(t, a.Registry(), b.Registry())
}
