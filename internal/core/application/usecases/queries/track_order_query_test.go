package queries_test

import (
	"testing"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackOrderQuery_Valid(t *testing.T) {
	query, err := queries.NewTrackOrderQuery("session-1", kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewTrackOrderQuery_EmptySessionID(t *testing.T) {
	_, err := queries.NewTrackOrderQuery("", kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrSessionIDIsRequired)
}

func TestNewTrackOrderQuery_EmptyOrderID(t *testing.T) {
	_, err := queries.NewTrackOrderQuery("session-1", kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrOrderIDIsRequired)
}

func TestTrackOrderQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.TrackOrderQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrTrackOrderQueryIsNotConstructed)
}
