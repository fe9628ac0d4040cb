package classifier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func solidTensor(v float32) Tensor {
	t := make(Tensor, TensorLen)
	for i := range t {
		t[i] = v
	}
	return t
}

func TestDemoScoresSumToOne(t *testing.T) {
	clf := NewDemo()

	scores, err := clf.Classify(context.Background(), solidTensor(0.25))
	require.NoError(t, err)
	require.Len(t, scores, NumClasses)

	var total float32
	for _, s := range scores {
		require.GreaterOrEqual(t, s, float32(0))
		total += s
	}
	require.InDelta(t, 1.0, total, 1e-5)
}

func TestDemoDeterministicPerInput(t *testing.T) {
	clf := NewDemo()
	ctx := context.Background()

	first, err := clf.Classify(ctx, solidTensor(0.5))
	require.NoError(t, err)
	second, err := clf.Classify(ctx, solidTensor(0.5))
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestDemoVariesAcrossInputs(t *testing.T) {
	clf := NewDemo()
	ctx := context.Background()

	a, err := clf.Classify(ctx, solidTensor(0.1))
	require.NoError(t, err)
	b, err := clf.Classify(ctx, solidTensor(0.9))
	require.NoError(t, err)

	require.NotEqual(t, a, b)
}

func TestDemoCancelledContext(t *testing.T) {
	clf := NewDemo()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := clf.Classify(ctx, solidTensor(0.5))
	require.Error(t, err)
}
