package dtos

// Probabilities is the per-label score breakdown, in percent. The two
// fields sum to 100 within rounding tolerance.
type Probabilities struct {
	NoTumor float64 `json:"no_tumor"`
	Tumor   float64 `json:"tumor"`
}

type PredictionResult struct {
	Classification string        `json:"classification"`
	Confidence     float64       `json:"confidence"`
	Probabilities  Probabilities `json:"probabilities"`
	TumorDetected  bool          `json:"tumor_detected"`
}

type PredictRes struct {
	Success bool              `json:"success"`
	Result  *PredictionResult `json:"result"`
}

type ErrorRes struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
