package prediction

import (
	"errors"
	"testing"
)

func TestFeaturesValidate(t *testing.T) {
	valid := Features{
		Age: 63, Sex: 1, CP: 3, TrestBPS: 145, Chol: 233, FBS: 1, RestECG: 0,
		Thalach: 150, Exang: 0, Oldpeak: 2.3, Slope: 0, CA: 0, Thal: 1,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Features)
	}{
		{"age zero", func(f *Features) { f.Age = 0 }},
		{"sex out of range", func(f *Features) { f.Sex = 2 }},
		{"cp negative", func(f *Features) { f.CP = -1 }},
		{"oldpeak too high", func(f *Features) { f.Oldpeak = 11 }},
		{"thal too high", func(f *Features) { f.Thal = 4 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.mutate(&f)
			if err := f.Validate(); !errors.Is(err, ErrInvalidFeatures) {
				t.Errorf("expected ErrInvalidFeatures, got %v", err)
			}
		})
	}
}

func TestVectorOrder(t *testing.T) {
	f := Features{Age: 1, Sex: 2, CP: 3, TrestBPS: 4, Chol: 5, FBS: 6, RestECG: 7, Thalach: 8, Exang: 9, Oldpeak: 10, Slope: 11, CA: 12, Thal: 13}
	v := f.Vector()
	if len(v) != len(FeatureRanges) {
		t.Fatalf("expected %d features, got %d", len(FeatureRanges), len(v))
	}
	for i, x := range v {
		if x != float64(i+1) {
			t.Errorf("position %d (%s): expected %d, got %v", i, FeatureRanges[i].Name, i+1, x)
		}
	}
}
