package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromTuple(t *testing.T) {
	tests := []struct {
		name  string
		tuple []string
		want  Record
		err   error
	}{
		{
			name:  "complete with context",
			tuple: []string{"Dr. Lee", "lee@uni.edu", "http://example.org/paper", "met at conference"},
			want:  Record{Name: "Dr. Lee", Email: "lee@uni.edu", SourceRef: "http://example.org/paper", Context: "met at conference"},
		},
		{
			name:  "context defaults to empty when absent",
			tuple: []string{"Dr. Lee", "lee@uni.edu", "http://example.org/paper"},
			want:  Record{Name: "Dr. Lee", Email: "lee@uni.edu", SourceRef: "http://example.org/paper"},
		},
		{
			name:  "two fields only",
			tuple: []string{"Dr. Lee", "lee@uni.edu"},
			err:   ErrIncomplete,
		},
		{
			name:  "blank required field counts as missing",
			tuple: []string{"Dr. Lee", "   ", "http://example.org/paper"},
			err:   ErrIncomplete,
		},
		{
			name:  "empty tuple",
			tuple: nil,
			err:   ErrIncomplete,
		},
		{
			name:  "fields are trimmed",
			tuple: []string{" Dr. Lee ", " lee@uni.edu ", " ref "},
			want:  Record{Name: "Dr. Lee", Email: "lee@uni.edu", SourceRef: "ref"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromTuple(tt.tuple)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
