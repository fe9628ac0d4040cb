package classifier

import (
	"context"
	"encoding/binary"
	"hash/fnv"
	"math"
	"math/rand"
)

// Demo is the placeholder classifier used when no trained model file is
// available. It hashes the input tensor and uses the hash to seed a
// PRNG, so the scores look like an untrained network's output but stay
// identical for identical inputs.
type Demo struct{}

func NewDemo() *Demo {
	return &Demo{}
}

func (d *Demo) Name() string {
	return "demo (untrained)"
}

func (d *Demo) Classify(ctx context.Context, t Tensor) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	h := fnv.New64a()
	var buf [4]byte
	for _, v := range t {
		binary.LittleEndian.PutUint32(buf[:], math.Float32bits(v))
		h.Write(buf[:])
	}

	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	scores := make([]float32, NumClasses)
	var total float32
	for i := range scores {
		scores[i] = rng.Float32()
		total += scores[i]
	}
	if total == 0 {
		// All-zero draw; fall back to a uniform distribution.
		for i := range scores {
			scores[i] = 1.0 / NumClasses
		}
		return scores, nil
	}
	for i := range scores {
		scores[i] /= total
	}

	return scores, nil
}
