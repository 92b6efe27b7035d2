package recovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{
			name: "pure object",
			raw:  `{"a":1}`,
			want: `{"a":1}`,
		},
		{
			name: "prose around object",
			raw:  "Here is your plan:\n{\"a\":{\"b\":2}}\nEnjoy!",
			want: `{"a":{"b":2}}`,
		},
		{
			name: "markdown fence",
			raw:  "Sure! ```json\n{\"a\":1}\n```",
			want: `{"a":1}`,
		},
		{
			name: "two objects are over-captured",
			raw:  `first {"a":1} then {"b":2} done`,
			want: `{"a":1} then {"b":2}`,
		},
		{
			name:    "no braces",
			raw:     "no json here at all",
			wantErr: ErrExtractionFailed,
		},
		{
			name:    "closing before opening",
			raw:     "} nothing {",
			wantErr: ErrExtractionFailed,
		},
		{
			name:    "opening only",
			raw:     `{"a":1`,
			wantErr: ErrExtractionFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
