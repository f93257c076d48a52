package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/weak-observer-go/example/counter/core"
)

func Test_ValueIncremented_PayloadToJSON(t *testing.T) {
	payload, err := core.BuildValueIncremented(5).PayloadToJSON()

	require.NoError(t, err)
	assert.JSONEq(t, `{"Value":5}`, string(payload))
}

func Test_ValueIncrementedFromJSON(t *testing.T) {
	tests := []struct {
		name        string
		payloadJSON []byte
		expected    core.ValueIncremented
		expectedErr error
	}{
		{
			name:        "positive delta",
			payloadJSON: []byte(`{"Value":1}`),
			expected:    core.BuildValueIncremented(1),
		},
		{
			name:        "negative delta",
			payloadJSON: []byte(`{"Value":-3}`),
			expected:    core.BuildValueIncremented(-3),
		},
		{
			name:        "missing value defaults to zero",
			payloadJSON: []byte(`{}`),
			expected:    core.BuildValueIncremented(0),
		},
		{
			name:        "invalid json",
			payloadJSON: []byte(`{"Value": one}`),
			expectedErr: core.ErrUnmarshalValueIncremented,
		},
		{
			name:        "wrong type",
			payloadJSON: []byte(`{"Value":"1"}`),
			expectedErr: core.ErrUnmarshalValueIncremented,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := core.ValueIncrementedFromJSON(tt.payloadJSON)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, event)
			assert.Equal(t, core.ValueIncrementedEventType, event.EventType())
		})
	}
}
