package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProspectSpec_UnsetRangesAbsentFromPayload(t *testing.T) {
	spec := DefaultProspectSpec()
	spec.Name = "Padarias SP"
	spec.Revenue = IntRange{Lower: 100_000}

	raw, err := json.Marshal(spec)
	require.NoError(t, err)

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &payload))

	assert.NotContains(t, payload, "employee_count")
	assert.NotContains(t, payload, "share_capital")
	assert.NotContains(t, payload, "vehicle_count")
	assert.Contains(t, payload, "revenue")
	assert.Contains(t, payload, "neighborhoodies")
}
