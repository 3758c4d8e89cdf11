package env

import "testing"

func TestDetectMode(t *testing.T) {
	tests := []struct {
		value string
		want  Mode
	}{
		{value: "", want: ModeProd},
		{value: "0", want: ModeProd},
		{value: "yes", want: ModeProd},
		{value: "1", want: ModeDev},
		{value: "true", want: ModeDev},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("DATATABLE_DEV", tt.value)
			if got := DetectMode(); got != tt.want {
				t.Errorf("DetectMode() with %q = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestPort(t *testing.T) {
	t.Setenv("PORT", "")
	if got := Port("8080"); got != "8080" {
		t.Errorf("Expected fallback, got %q", got)
	}

	t.Setenv("PORT", "3000")
	if got := Port("8080"); got != "3000" {
		t.Errorf("Expected 3000, got %q", got)
	}
}
