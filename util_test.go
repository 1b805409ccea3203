package binstream

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModRejectsNonPositiveDivisorAsInvalidArgument(t *testing.T) {
	_, err := Mod(5, 0)
	var target *InvalidArgumentError
	require.ErrorAs(t, err, &target)
}

func TestModMatchesEuclideanExample(t *testing.T) {
	r, err := Mod(-1, 8)
	require.NoError(t, err)
	require.EqualValues(t, 7, r)
}
