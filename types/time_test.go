package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeUnmarshalJSON(t *testing.T) {
	t.Parallel()
	var target struct {
		Date Time `json:"exec_date"`
	}

	err := json.Unmarshal([]byte(`{"exec_date":"2015-07-08T02:43:34.823"}`), &target)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2015, 7, 8, 2, 43, 34, 823000000, time.UTC), target.Date.Time())

	err = json.Unmarshal([]byte(`{"exec_date":"2022-02-11T00:00:00Z"}`), &target)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2022, 2, 11, 0, 0, 0, 0, time.UTC), target.Date.Time())

	err = json.Unmarshal([]byte(`{"exec_date":null}`), &target)
	require.NoError(t, err)
	assert.True(t, target.Date.Time().IsZero())

	err = json.Unmarshal([]byte(`{"exec_date":"horse"}`), &target)
	assert.Error(t, err)
}
