package prediction

import (
	"fmt"
	"time"
)

// Features are the 13 clinical inputs of the heart disease model.
type Features struct {
	Age      float64 `json:"age"`
	Sex      float64 `json:"sex"`
	CP       float64 `json:"cp"`
	TrestBPS float64 `json:"trestbps"`
	Chol     float64 `json:"chol"`
	FBS      float64 `json:"fbs"`
	RestECG  float64 `json:"restecg"`
	Thalach  float64 `json:"thalach"`
	Exang    float64 `json:"exang"`
	Oldpeak  float64 `json:"oldpeak"`
	Slope    float64 `json:"slope"`
	CA       float64 `json:"ca"`
	Thal     float64 `json:"thal"`
}

// FeatureRange bounds one feature, inclusive.
type FeatureRange struct {
	Name string
	Min  float64
	Max  float64
}

// FeatureRanges lists features in the model's input order.
var FeatureRanges = []FeatureRange{
	{"age", 1, 120},
	{"sex", 0, 1},
	{"cp", 0, 3},
	{"trestbps", 50, 250},
	{"chol", 50, 700},
	{"fbs", 0, 1},
	{"restecg", 0, 2},
	{"thalach", 50, 250},
	{"exang", 0, 1},
	{"oldpeak", 0, 10},
	{"slope", 0, 2},
	{"ca", 0, 4},
	{"thal", 0, 3},
}

// Vector returns the features in model input order.
func (f Features) Vector() []float64 {
	return []float64{
		f.Age, f.Sex, f.CP, f.TrestBPS, f.Chol, f.FBS, f.RestECG,
		f.Thalach, f.Exang, f.Oldpeak, f.Slope, f.CA, f.Thal,
	}
}

// Validate checks every feature against FeatureRanges.
func (f Features) Validate() error {
	for i, v := range f.Vector() {
		r := FeatureRanges[i]
		if v < r.Min || v > r.Max {
			return fmt.Errorf("%w: %s=%v outside [%v, %v]", ErrInvalidFeatures, r.Name, v, r.Min, r.Max)
		}
	}
	return nil
}

// Log is one stored prediction.
type Log struct {
	ID           string
	Features     Features
	Result       []float64
	ModelVersion string
	CreatedAt    time.Time
}

// --- UseCase Inputs ---

type PredictInput struct {
	Features Features
}

type ListLogsInput struct {
	Limit int
}

// --- UseCase Outputs ---

type PredictOutput struct {
	Prediction   []float64
	Risk         float64
	ModelVersion string
}

type ListLogsOutput struct {
	Logs []Log
}
