package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringListAcceptsArrayOrDelimitedString(t *testing.T) {
	var fromArray StringList
	require.NoError(t, json.Unmarshal([]byte(`[" Go ", "SQL", ""]`), &fromArray))
	require.Equal(t, StringList{"Go", "SQL"}, fromArray)

	var fromString StringList
	require.NoError(t, json.Unmarshal([]byte(`"Go, SQL; Docker"`), &fromString))
	require.Equal(t, StringList{"Go", "SQL", "Docker"}, fromString)

	var invalid StringList
	require.Error(t, json.Unmarshal([]byte(`42`), &invalid))
}

func TestStringListInRequestBody(t *testing.T) {
	var req CreateJobRequest
	body := `{"title":"Backend Engineer","requirements":"Go, SQL","skills":["Go","PostgreSQL"]}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	require.Equal(t, StringList{"Go", "SQL"}, req.Requirements)
	require.Equal(t, StringList{"Go", "PostgreSQL"}, req.Skills)
}
