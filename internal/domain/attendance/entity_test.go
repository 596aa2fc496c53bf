package attendance

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTime_UnmarshalJSON_AcceptsUpstreamShapes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"zoneless ISO", `"2026-03-02T08:01:00"`, "2026-03-02T08:01:00"},
		{"zoneless with fraction", `"2026-03-02T08:01:00.123"`, "2026-03-02T08:01:00"},
		{"RFC3339", `"2026-03-02T08:01:00Z"`, "2026-03-02T08:01:00"},
		{"space separated", `"2026-03-02 08:01:00"`, "2026-03-02T08:01:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var parsed Time
			require.NoError(t, json.Unmarshal([]byte(tc.input), &parsed))
			assert.Equal(t, tc.want, parsed.Format("2006-01-02T15:04:05"))
		})
	}
}

func TestTime_UnmarshalJSON_RejectsGarbage(t *testing.T) {
	t.Parallel()

	var parsed Time
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &parsed))
}

func TestRecord_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	raw := `{
		"employeeId": "emp-1",
		"employeeName": "Ayu Lestari",
		"date": "2026-03-02T00:00:00",
		"checkInTime": "2026-03-02T08:01:00",
		"status": "Present",
		"sessions": [
			{"sessionId": "s-1", "checkInTime": "2026-03-02T08:01:00", "hours": 0}
		]
	}`

	// Act
	var rec Record
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))

	// Assert
	assert.Equal(t, "emp-1", rec.EmployeeID)
	assert.Equal(t, "emp-1|2026-03-02", rec.GroupKey())
	require.NotNil(t, rec.CheckIn)
	assert.Nil(t, rec.CheckOut)
	require.Len(t, rec.Sessions, 1)
	assert.Equal(t, "s-1", rec.Sessions[0].ID)
	assert.Nil(t, rec.Sessions[0].CheckOut)
}
