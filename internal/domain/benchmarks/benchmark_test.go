//go:build unit
// +build unit

package benchmarks

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBenchmarkValidation(t *testing.T) {
	tests := []struct {
		name          string
		benchmark     *Benchmark
		expectedError bool
	}{
		{
			name: "valid benchmark",
			benchmark: &Benchmark{
				Name:  "tenured database researchers",
				Query: "database AND tenure",
			},
			expectedError: false,
		},
		{
			name: "valid benchmark with description",
			benchmark: &Benchmark{
				Name:        "hci faculty",
				Query:       "human computer interaction",
				Description: strPtr("Faculty members working on HCI."),
			},
			expectedError: false,
		},
		{
			name:          "missing name",
			benchmark:     &Benchmark{Query: "database"},
			expectedError: true,
		},
		{
			name:          "missing query",
			benchmark:     &Benchmark{Name: "database researchers"},
			expectedError: true,
		},
		{
			name: "name too long",
			benchmark: &Benchmark{
				Name:  strings.Repeat("x", 257),
				Query: "database",
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.benchmark.Validate()

			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSuggestionValidation(t *testing.T) {
	authorID := uint(7)
	created := time.Now()

	tests := []struct {
		name          string
		suggestion    *Suggestion
		expectedError bool
	}{
		{
			name: "valid suggestion without author",
			suggestion: &Suggestion{
				BenchmarkID:    1,
				ScholarWebsite: strPtr("https://scholar.example.edu/profile"),
				Rationale:      strPtr("Highly cited in the area."),
				Created:        &created,
			},
			expectedError: false,
		},
		{
			name: "valid suggestion with author",
			suggestion: &Suggestion{
				AuthorID:    &authorID,
				BenchmarkID: 1,
			},
			expectedError: false,
		},
		{
			name:          "missing benchmark",
			suggestion:    &Suggestion{AuthorID: &authorID},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.suggestion.Validate()

			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func strPtr(s string) *string {
	return &s
}
