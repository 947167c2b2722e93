package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func floatsEqual(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func TestROCCurve(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   []float64
		yScore  []float64
		wantFPR []float64
		wantTPR []float64
		wantAUC float64
		wantErr bool
	}{
		{
			name:    "Typical case",
			yTrue:   []float64{0, 0, 1, 1},
			yScore:  []float64{0.1, 0.4, 0.35, 0.8},
			wantFPR: []float64{0, 0, 0.5, 0.5, 1},
			wantTPR: []float64{0, 0.5, 0.5, 1, 1},
			wantAUC: 0.75,
		},
		{
			name:    "Perfect classifier",
			yTrue:   []float64{0, 0, 1, 1},
			yScore:  []float64{0.1, 0.2, 0.8, 0.9},
			wantFPR: []float64{0, 0, 0, 0.5, 1},
			wantTPR: []float64{0, 0.5, 1, 1, 1},
			wantAUC: 1.0,
		},
		{
			name:    "Tied scores collapse to one point",
			yTrue:   []float64{0, 1, 0, 1},
			yScore:  []float64{0.5, 0.5, 0.5, 0.5},
			wantFPR: []float64{0, 1},
			wantTPR: []float64{0, 1},
			wantAUC: 0.5,
		},
		{
			name:    "Only positives",
			yTrue:   []float64{1, 1},
			yScore:  []float64{0.2, 0.8},
			wantErr: true,
		},
		{
			name:    "Non-binary label",
			yTrue:   []float64{0, 2},
			yScore:  []float64{0.2, 0.8},
			wantErr: true,
		},
		{
			name:    "Length mismatch",
			yTrue:   []float64{0, 1},
			yScore:  []float64{0.5},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			curve, err := ROCCurve(tt.yTrue, tt.yScore)
			if (err != nil) != tt.wantErr {
				t.Errorf("ROCCurve() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if !floatsEqual(curve.FPR, tt.wantFPR, 1e-9) {
				t.Errorf("FPR = %v, want %v", curve.FPR, tt.wantFPR)
			}
			if !floatsEqual(curve.TPR, tt.wantTPR, 1e-9) {
				t.Errorf("TPR = %v, want %v", curve.TPR, tt.wantTPR)
			}
			if math.Abs(curve.AUC-tt.wantAUC) > 1e-9 {
				t.Errorf("AUC = %v, want %v", curve.AUC, tt.wantAUC)
			}
			if !math.IsInf(curve.Thresholds[0], 1) {
				t.Errorf("Thresholds[0] = %v, want +Inf", curve.Thresholds[0])
			}
		})
	}
}

func TestAUC(t *testing.T) {
	tests := []struct {
		name    string
		x       []float64
		y       []float64
		want    float64
		wantErr bool
	}{
		{name: "Diagonal", x: []float64{0, 1}, y: []float64{0, 1}, want: 0.5},
		{name: "Decreasing x", x: []float64{1, 0}, y: []float64{1, 0}, want: 0.5},
		{name: "Unit square", x: []float64{0, 0, 1}, y: []float64{0, 1, 1}, want: 1.0},
		{name: "Too few points", x: []float64{0}, y: []float64{0}, wantErr: true},
		{name: "Non-monotonic", x: []float64{0, 1, 0.5}, y: []float64{0, 1, 1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AUC(tt.x, tt.y)
			if (err != nil) != tt.wantErr {
				t.Errorf("AUC() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AUC() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPerClassROC(t *testing.T) {
	yTrue := mat.NewDense(4, 2, []float64{
		1, 0,
		1, 0,
		0, 1,
		0, 1,
	})
	yScore := mat.NewDense(4, 2, []float64{
		0.9, 0.1,
		0.8, 0.2,
		0.2, 0.8,
		0.1, 0.9,
	})

	curves, err := PerClassROC(yTrue, yScore)
	if err != nil {
		t.Fatalf("PerClassROC() error = %v", err)
	}
	if len(curves) != 2 {
		t.Fatalf("got %d curves, want 2", len(curves))
	}
	for j, curve := range curves {
		if math.Abs(curve.AUC-1.0) > 1e-9 {
			t.Errorf("class %d AUC = %v, want 1.0", j, curve.AUC)
		}
	}
}

func TestMicroAverageROC(t *testing.T) {
	yTrue := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	yScore := mat.NewDense(2, 2, []float64{0.9, 0.1, 0.2, 0.8})

	micro, err := MicroAverageROC(yTrue, yScore)
	if err != nil {
		t.Fatalf("MicroAverageROC() error = %v", err)
	}
	if math.Abs(micro.AUC-1.0) > 1e-9 {
		t.Errorf("micro AUC = %v, want 1.0", micro.AUC)
	}
}

func TestMacroAverageROC(t *testing.T) {
	base, err := ROCCurve([]float64{0, 0, 1, 1}, []float64{0.1, 0.4, 0.35, 0.8})
	if err != nil {
		t.Fatalf("ROCCurve() error = %v", err)
	}

	// Averaging a curve with itself reproduces it.
	macro, err := MacroAverageROC([]*ROC{base, base})
	if err != nil {
		t.Fatalf("MacroAverageROC() error = %v", err)
	}
	if math.Abs(macro.AUC-base.AUC) > 1e-9 {
		t.Errorf("macro AUC = %v, want %v", macro.AUC, base.AUC)
	}

	if _, err := MacroAverageROC(nil); err == nil {
		t.Error("empty curve list should fail")
	}
}
