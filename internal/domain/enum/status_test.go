package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{`true`, StatusActive},
		{`false`, StatusInactive},
		{`1`, StatusActive},
		{`0`, StatusInactive},
		{`"1"`, StatusActive},
		{`"Inactive"`, StatusInactive},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var s Status
			require.NoError(t, json.Unmarshal([]byte(tt.in), &s))
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestStatus_UnmarshalJSON_Invalid(t *testing.T) {
	var s Status
	assert.Error(t, json.Unmarshal([]byte(`"maybe"`), &s))
	assert.Error(t, json.Unmarshal([]byte(`{}`), &s))
}

func TestStatus_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		Estado Status `json:"Estado"`
	}{StatusActive})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Estado":1}`, string(out))
}
