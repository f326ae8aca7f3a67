package common_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/application/common"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/shared"
	"github.com/braydenokley13-ux/T101-M1-L2/test/helpers"
)

func TestTeamResolver(t *testing.T) {
	resolver := common.NewTeamResolver(helpers.NewTestCatalog(t))

	for _, input := range []string{"spurs", "Spurs", "SAS", " sas "} {
		team, err := resolver.ResolveTeam(input)
		require.NoError(t, err, input)
		assert.Equal(t, helpers.TestSpurs, team.ID())
	}

	_, err := resolver.ResolveTeam("knicks")
	assert.ErrorIs(t, err, shared.ErrInvalidTeam)
}

func TestTeamResolver_EmptyCatalog(t *testing.T) {
	resolver := common.NewTeamResolver(nil)

	_, err := resolver.ResolveTeam("spurs")

	assert.ErrorIs(t, err, shared.ErrDataNotLoaded)
}
