//go:build onnx
// +build onnx

package classifier

import (
	"context"
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// ONNX runs the trained brain-tumor model through onnxruntime. The
// session owns reusable input/output tensors, so forward passes are
// serialized with a mutex.
type ONNX struct {
	mu           sync.Mutex
	session      *ort.AdvancedSession
	inputTensor  *ort.Tensor[float32]
	outputTensor *ort.Tensor[float32]
}

// NewONNX initializes the onnxruntime environment and loads the model
// from modelPath. Call Close when done to release the session.
func NewONNX(modelPath string) (*ONNX, error) {
	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("failed to initialize ONNX environment: %w", err)
	}

	inputShape := ort.NewShape(1, ImageSize, ImageSize, Channels)
	outputShape := ort.NewShape(1, NumClasses)

	inputTensor, err := ort.NewEmptyTensor[float32](inputShape)
	if err != nil {
		return nil, fmt.Errorf("failed to create input tensor: %w", err)
	}

	outputTensor, err := ort.NewEmptyTensor[float32](outputShape)
	if err != nil {
		inputTensor.Destroy()
		return nil, fmt.Errorf("failed to create output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(modelPath,
		[]string{"input"}, []string{"output"},
		[]ort.ArbitraryTensor{inputTensor}, []ort.ArbitraryTensor{outputTensor},
		nil)
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		return nil, fmt.Errorf("failed to create ONNX session: %w", err)
	}

	return &ONNX{
		session:      session,
		inputTensor:  inputTensor,
		outputTensor: outputTensor,
	}, nil
}

func (o *ONNX) Name() string {
	return "onnxruntime"
}

func (o *ONNX) Classify(ctx context.Context, t Tensor) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	copy(o.inputTensor.GetData(), t)

	if err := o.session.Run(); err != nil {
		return nil, fmt.Errorf("inference failed: %w", err)
	}

	scores := make([]float32, NumClasses)
	copy(scores, o.outputTensor.GetData())

	return scores, nil
}

func (o *ONNX) Close() {
	if o.inputTensor != nil {
		o.inputTensor.Destroy()
	}
	if o.outputTensor != nil {
		o.outputTensor.Destroy()
	}
	if o.session != nil {
		o.session.Destroy()
	}
	ort.DestroyEnvironment()
}
