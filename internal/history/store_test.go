package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndRecent(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	base := time.Now().Truncate(time.Second)

	for i := 0; i < 3; i++ {
		err := store.Append(ctx, Record{
			BuildID:  "build-" + string(rune('a'+i)),
			Started:  base.Add(time.Duration(i) * time.Minute),
			Duration: 1500 * time.Millisecond,
			Pages:    10 + i,
			Skipped:  i,
			Outcome:  "success",
		})
		require.NoError(t, err)
	}

	records, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest first.
	assert.Equal(t, "build-c", records[0].BuildID)
	assert.Equal(t, 12, records[0].Pages)
	assert.Equal(t, 2, records[0].Skipped)
	assert.Equal(t, 1500*time.Millisecond, records[0].Duration)
	assert.Equal(t, "build-b", records[1].BuildID)
}

func TestRecentEmpty(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	records, err := store.Recent(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, records)
}
