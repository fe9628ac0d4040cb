package classifier

import "context"

// Model input configuration. The CNN this service fronts takes a fixed
// 224x224 RGB input and produces one softmax score per class.
const (
	ImageSize  = 224
	Channels   = 3
	NumClasses = 2

	TensorLen = ImageSize * ImageSize * Channels
)

// Labels is the fixed class ordering. Index 0 wins ties.
var Labels = [NumClasses]string{"no_tumor", "tumor"}

// DisplayNames maps each class index to the label shown to users.
var DisplayNames = [NumClasses]string{"No Tumor", "Tumor Detected"}

// Tensor is a preprocessed image in HWC order, values in [0,1].
type Tensor []float32

// Classifier is the model port. Implementations must be safe for
// concurrent use and must return the same scores for the same tensor.
type Classifier interface {
	// Classify runs a single forward pass and returns one raw score
	// per class, in Labels order.
	Classify(ctx context.Context, t Tensor) ([]float32, error)

	// Name identifies the active runtime for the system endpoints.
	Name() string
}
