package classifier

import "context"

// Fixed always returns the same scores (or the same error). Test stub.
type Fixed struct {
	Scores []float32
	Err    error
}

func (f *Fixed) Name() string {
	return "fixed"
}

func (f *Fixed) Classify(ctx context.Context, t Tensor) ([]float32, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Scores, nil
}
