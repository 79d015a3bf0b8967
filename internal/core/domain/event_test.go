package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventPartsTable(t *testing.T) {
	// Проверяем таблицу целиком: каждый тег раскладывается в ожидаемую пару.
	expected := map[NotificationEvent]EventParts{
		EventCoachCreated:        {Entity: "COACH", Action: "CREATED"},
		EventCoachUpdated:        {Entity: "COACH", Action: "UPDATED"},
		EventCoachDeleted:        {Entity: "COACH", Action: "DELETED"},
		EventPlayerCreated:       {Entity: "PLAYER", Action: "CREATED"},
		EventPlayerUpdated:       {Entity: "PLAYER", Action: "UPDATED"},
		EventPlayerDeleted:       {Entity: "PLAYER", Action: "DELETED"},
		EventTeamCreated:         {Entity: "TEAM", Action: "CREATED"},
		EventEvaluationSubmitted: {Entity: "EVALUATION", Action: "SUBMITTED"},
		EventDrillCreated:        {Entity: "DRILL", Action: "CREATED"},
		EventHomeworkAssigned:    {Entity: "HOMEWORK", Action: "ASSIGNED"},
	}

	require.Len(t, KnownEvents(), len(expected), "event table size changed, update the test")

	for event, want := range expected {
		parts, ok := event.Parts()
		require.True(t, ok, "event %s must be registered", event)
		assert.Equal(t, want, parts, "event %s", event)
		assert.True(t, event.IsKnown())
	}
}

func TestUnknownEvent(t *testing.T) {
	unknown := NotificationEvent("SOMETHING_HAPPENED")

	assert.False(t, unknown.IsKnown())

	parts, ok := unknown.Parts()
	assert.False(t, ok)
	assert.Empty(t, parts.Entity)
	assert.Empty(t, parts.Action)
}
