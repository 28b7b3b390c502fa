package errors

import (
	"math"
	"testing"
)

func TestValidateWeights(t *testing.T) {
	tests := []struct {
		name    string
		weights []float64
		wantErr bool
	}{
		{
			name:    "valid weights",
			weights: []float64{500, 433, 78, 25, 25, 7},
			wantErr: false,
		},
		{
			name:    "single weight",
			weights: []float64{1},
			wantErr: false,
		},
		{
			name:    "tiny weights",
			weights: []float64{1e-12, 2e-12},
			wantErr: false,
		},
		{
			name:    "empty",
			weights: nil,
			wantErr: true,
		},
		{
			name:    "zero weight",
			weights: []float64{1, 0, 2},
			wantErr: true,
		},
		{
			name:    "all zeros",
			weights: []float64{0, 0, 0},
			wantErr: true,
		},
		{
			name:    "negative weight",
			weights: []float64{1, -2, 3},
			wantErr: true,
		},
		{
			name:    "NaN weight",
			weights: []float64{1, math.NaN()},
			wantErr: true,
		},
		{
			name:    "infinite weight",
			weights: []float64{1, math.Inf(1)},
			wantErr: true,
		},
		{
			name:    "overflowing sum",
			weights: []float64{math.MaxFloat64, math.MaxFloat64},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWeights(tt.weights)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateWeights() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidWeights) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidWeights)
			}
		})
	}
}

func TestValidateFrame(t *testing.T) {
	tests := []struct {
		name         string
		x, y, dx, dy float64
		wantErr      bool
	}{
		{
			name: "valid frame",
			x:    0, y: 0, dx: 1000, dy: 1000,
			wantErr: false,
		},
		{
			name: "negative origin is fine",
			x:    -50, y: -25, dx: 100, dy: 50,
			wantErr: false,
		},
		{
			name: "zero width",
			x:    0, y: 0, dx: 0, dy: 10,
			wantErr: true,
		},
		{
			name: "negative width",
			x:    0, y: 0, dx: -5, dy: 10,
			wantErr: true,
		},
		{
			name: "negative height",
			x:    0, y: 0, dx: 5, dy: -10,
			wantErr: true,
		},
		{
			name: "NaN origin",
			x:    math.NaN(), y: 0, dx: 5, dy: 10,
			wantErr: true,
		},
		{
			name: "infinite width",
			x:    0, y: 0, dx: math.Inf(1), dy: 10,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFrame(tt.x, tt.y, tt.dx, tt.dy)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFrame() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeDegenerateRect) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeDegenerateRect)
			}
		})
	}
}
