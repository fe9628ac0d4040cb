//go:build !onnx
// +build !onnx

package classifier

import (
	"context"
	"errors"
)

// ONNX stub for builds without the onnx tag (no onnxruntime shared
// library required). Construction fails, so startup falls back to the
// demo classifier.
type ONNX struct{}

func NewONNX(modelPath string) (*ONNX, error) {
	return nil, errors.New("onnx build tag is not enabled")
}

func (o *ONNX) Name() string {
	return "onnxruntime"
}

func (o *ONNX) Classify(ctx context.Context, t Tensor) ([]float32, error) {
	return nil, errors.New("onnx build tag is not enabled")
}

func (o *ONNX) Close() {}
