package queries_test

import (
	"testing"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCandidateCouriersQuery_Valid(t *testing.T) {
	query, err := queries.NewGetCandidateCouriersQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetCandidateCouriersQuery_EmptyTenantID(t *testing.T) {
	_, err := queries.NewGetCandidateCouriersQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrTenantIDIsRequired)
}

func TestGetCandidateCouriersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetCandidateCouriersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCandidateCouriersQueryIsNotConstructed)
}
