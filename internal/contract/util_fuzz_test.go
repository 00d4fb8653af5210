package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// FuzzParseThresholds fuzzes ParseThresholds with random comma-separated input.
func FuzzParseThresholds(f *testing.F) {
	seeds := []string{"", "50,100,150,200,250", "5, 20", "20,10", "0", "-1,2", "a,b", ",,,", "9999999999999999999"}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, s string) {
		got, err := ParseThresholds(s)
		if err != nil {
			return
		}
		assert.NotEmpty(t, got)
		assert.LessOrEqual(t, len(got), MaxThresholds)
		for i, n := range got {
			assert.Positive(t, n)
			if i > 0 {
				assert.Greater(t, n, got[i-1])
			}
		}
	})
}

// FuzzParseBoolString fuzzes ParseBoolString with random strings.
func FuzzParseBoolString(f *testing.F) {
	for _, seed := range []string{"yes", "no", "TRUE", "0", "", "maybe"} {
		f.Add(seed)
	}

	f.Fuzz(func(_ *testing.T, s string) {
		_, _ = ParseBoolString(s)
	})
}
