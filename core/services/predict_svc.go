package services

import (
	"context"
	"math"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-rithik/MRI-Based-Brain-Tumor-Detection-and-Classification-with-Deep-Learning-and-neural-networks/core/classifier"
	"github.com/m-rithik/MRI-Based-Brain-Tumor-Detection-and-Classification-with-Deep-Learning-and-neural-networks/core/dtos"
)

// MaxUploadBytes is the hard cap on a single MRI upload.
const MaxUploadBytes = 16 << 20

var allowedMIMETypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
}

var allowedExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

type PredictSvc interface {
	// ValidateUpload enforces the MIME and size constraints. It must
	// be called before the payload is decoded or stored.
	ValidateUpload(filename, contentType string, size int64) error

	// Predict runs the full pipeline on a stored upload:
	// decode -> preprocess -> classify -> interpret.
	Predict(ctx context.Context, path string) (dtos.PredictionResult, error)
}

type predictSvcImpl struct {
	clf classifier.Classifier
}

func NewPredictSvc(clf classifier.Classifier) PredictSvc {
	return &predictSvcImpl{clf: clf}
}

func (s *predictSvcImpl) ValidateUpload(filename, contentType string, size int64) error {
	if size > MaxUploadBytes {
		return validationErr("File too large. Maximum upload size is %d MB", MaxUploadBytes>>20)
	}

	mimeType := contentType
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = mimeType[:i]
	}
	mimeType = strings.TrimSpace(strings.ToLower(mimeType))

	// Some clients send a generic type; fall back to the extension.
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = mime.TypeByExtension(strings.ToLower(filepath.Ext(filename)))
		if i := strings.Index(mimeType, ";"); i >= 0 {
			mimeType = mimeType[:i]
		}
	}

	if !allowedMIMETypes[mimeType] {
		return validationErr("Invalid file type. Please upload PNG, JPG, or JPEG")
	}

	if !allowedExts[strings.ToLower(filepath.Ext(filename))] {
		return validationErr("Invalid file type. Please upload PNG, JPG, or JPEG")
	}

	return nil
}

func (s *predictSvcImpl) Predict(ctx context.Context, path string) (dtos.PredictionResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return dtos.PredictionResult{}, inferenceErr(err, "Prediction failed: could not read uploaded file")
	}
	defer f.Close()

	img, err := classifier.Decode(f)
	if err != nil {
		return dtos.PredictionResult{}, decodeErr(err, "Could not decode image. The file is not a valid PNG or JPEG")
	}

	tensor := classifier.Preprocess(img)

	scores, err := s.clf.Classify(ctx, tensor)
	if err != nil {
		return dtos.PredictionResult{}, inferenceErr(err, "Prediction failed: %v", err)
	}
	if len(scores) != classifier.NumClasses {
		return dtos.PredictionResult{}, inferenceErr(nil, "Prediction failed: model returned %d scores, expected %d", len(scores), classifier.NumClasses)
	}

	return interpret(scores), nil
}

// interpret maps raw class scores onto the response shape: argmax with
// the first label winning ties, percentages normalized to sum to 100.
func interpret(scores []float32) dtos.PredictionResult {
	var total float64
	for _, v := range scores {
		total += float64(v)
	}

	pct := make([]float64, len(scores))
	for i, v := range scores {
		if total > 0 {
			pct[i] = round2(float64(v) / total * 100)
		} else {
			pct[i] = round2(100.0 / float64(len(scores)))
		}
	}

	best := 0
	for i, v := range scores {
		if v > scores[best] {
			best = i
		}
	}

	return dtos.PredictionResult{
		Classification: classifier.DisplayNames[best],
		Confidence:     pct[best],
		Probabilities: dtos.Probabilities{
			NoTumor: pct[0],
			Tumor:   pct[1],
		},
		TumorDetected: best == 1,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
