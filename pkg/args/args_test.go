package args

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name      string
		arguments []string
		want      LogLevel
	}{
		{
			name:      "no arguments",
			arguments: nil,
			want:      Info,
		},
		{
			name:      "short debug flag",
			arguments: []string{"-d"},
			want:      Debug,
		},
		{
			name:      "long debug flag",
			arguments: []string{"--debug"},
			want:      Debug,
		},
		{
			name:      "short verbose flag",
			arguments: []string{"-v"},
			want:      Debug,
		},
		{
			name:      "long verbose flag",
			arguments: []string{"--verbose"},
			want:      Debug,
		},
		{
			name:      "unknown tokens only",
			arguments: []string{"--foo", "bar", "-x"},
			want:      Info,
		},
		{
			name:      "verbose followed by unknown flag",
			arguments: []string{"--verbose", "--foo"},
			want:      Debug,
		},
		{
			name:      "debug flag between unknown tokens",
			arguments: []string{"--foo", "-d", "--bar"},
			want:      Debug,
		},
		{
			name:      "repeated debug flags",
			arguments: []string{"-d", "-d", "--debug"},
			want:      Debug,
		},
		{
			name:      "all aliases together",
			arguments: []string{"-d", "--debug", "-v", "--verbose"},
			want:      Debug,
		},
		{
			name:      "flags take no value",
			arguments: []string{"-d", "info"},
			want:      Debug,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Scan(tt.arguments))
		})
	}
}
