package handler

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeStatistics(t *testing.T, res ToolCallResult) statisticsPayload {
	t.Helper()
	require.Len(t, res.Content, 1)
	require.Equal(t, "text", res.Content[0].Type)

	var payload statisticsPayload
	require.NoError(t, json.Unmarshal([]byte(res.Content[0].Text), &payload))
	return payload
}

func TestGetStatisticsAfterLoad(t *testing.T) {
	h := newTestHandler(t, sampleRecords()...)

	res, err := h.GetStatistics(context.Background())
	require.NoError(t, err)

	payload := decodeStatistics(t, res)
	assert.True(t, payload.DataLoaded)
	assert.Equal(t, 3, payload.TotalRecords)
	assert.Equal(t, 2, payload.MismatchCount)
	assert.NotEmpty(t, payload.SnapshotVersion)

	loadedAt, err := time.Parse(time.RFC3339, payload.LastLoadTime)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), loadedAt, time.Minute)
}

func TestGetStatisticsBeforeLoad(t *testing.T) {
	h := newTestHandler(t)

	res, err := h.GetStatistics(context.Background())
	require.NoError(t, err)

	payload := decodeStatistics(t, res)
	assert.False(t, payload.DataLoaded)
	assert.Equal(t, 0, payload.TotalRecords)
	assert.Empty(t, payload.LastLoadTime)
}
