package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswer_UnmarshalJSON(t *testing.T) {
	var answers map[string]Answer
	body := `{"o1":"ok","o2":{"status":"maybe","note":"after 7pm"},"o3":{"status":"ng"}}`
	require.NoError(t, json.Unmarshal([]byte(body), &answers))

	assert.Equal(t, StatusOK, answers["o1"].Status)
	assert.Nil(t, answers["o1"].Note)
	assert.Equal(t, StatusMaybe, answers["o2"].Status)
	require.NotNil(t, answers["o2"].Note)
	assert.Equal(t, "after 7pm", *answers["o2"].Note)
	assert.Equal(t, StatusNG, answers["o3"].Status)

	var bad map[string]Answer
	assert.Error(t, json.Unmarshal([]byte(`{"o1":42}`), &bad))
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, StatusOK.Valid())
	assert.True(t, StatusMaybe.Valid())
	assert.True(t, StatusNG.Valid())
	assert.False(t, Status("").Valid())
	assert.False(t, Status("OK").Valid())
}
