package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"W", KeyW},
		{"w", KeyW},
		{" space ", KeySpace},
		{"Escape", KeyEscape},
		{"esc", KeyEscape},
		{"ArrowUp", KeyUp},
		{"down", KeyDown},
		{"7", Key7},
		{"f12", KeyF12},
		{"Return", KeyEnter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKey(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseKey("hyper")
	assert.Error(t, err)
	_, err = ParseKey("unknown")
	assert.Error(t, err, "the placeholder name is not bindable")
}

func TestKeyNamesRoundTrip(t *testing.T) {
	for _, k := range Keys() {
		parsed, err := ParseKey(k.String())
		require.NoError(t, err, k.String())
		assert.Equal(t, k, parsed)
	}

	assert.Equal(t, "Unknown", Key(-3).String())
	assert.Equal(t, "Q", KeyQ.String())
	assert.Equal(t, "F1", KeyF1.String())
}
