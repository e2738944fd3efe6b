package geom2

import "testing"

func TestIsZero(t *testing.T) {
	tests := []struct {
		name string
		x    float32
		want bool
	}{
		{"zero", 0, true},
		{"below eps", EPS / 2, true},
		{"below eps negative", -EPS / 2, true},
		{"at eps", EPS, false},
		{"above eps", 1e-6, false},
		{"large", 42, false},
		{"large negative", -42, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsZero(tt.x); got != tt.want {
				t.Errorf("IsZero(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b float32
		want bool
	}{
		{"identical", 1.5, 1.5, true},
		{"within eps", 1.5, 1.5 + EPS/2, true},
		{"distinct", 1.5, 1.6, false},
		{"sign", 1, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSign(t *testing.T) {
	tests := []struct {
		name string
		x    float32
		want int
	}{
		{"zero", 0, 0},
		{"near zero", EPS / 2, 0},
		{"near zero negative", -EPS / 2, 0},
		{"positive", 0.25, 1},
		{"negative", -0.25, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sign(tt.x); got != tt.want {
				t.Errorf("Sign(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}
