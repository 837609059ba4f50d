package events

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	payload := FocusRecorded{RecordID: "record_1", WishID: "wish_1", Hours: 2.5, TotalHours: 10}

	event, err := New(TypeFocusRecorded, 2025, payload)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, TypeFocusRecorded, event.Type)
	assert.Equal(t, 2025, event.Year)
	assert.WithinDuration(t, time.Now(), event.CreatedAt, 2*time.Second)

	var decoded FocusRecorded
	require.NoError(t, event.UnmarshalPayload(&decoded))
	assert.Equal(t, payload, decoded)
}

func TestNewRejectsUnencodablePayload(t *testing.T) {
	_, err := New(TypeFocusRecorded, 2025, make(chan int))
	assert.Error(t, err)
}
