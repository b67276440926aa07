package assessrec_test

import (
	"testing"

	"github.com/fwojciec/assessrec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssessment_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid assessment passes", func(t *testing.T) {
		t.Parallel()

		a := assessrec.Assessment{
			Name: "Verify Numerical Ability",
			URL:  "https://www.shl.com/products/verify-numerical/",
		}

		require.NoError(t, a.Validate())
	})

	t.Run("missing name fails", func(t *testing.T) {
		t.Parallel()

		a := assessrec.Assessment{URL: "https://www.shl.com/products/x/"}

		err := a.Validate()
		require.Error(t, err)
		assert.Equal(t, assessrec.EINVALID, assessrec.ErrorCode(err))
	})

	t.Run("missing URL fails", func(t *testing.T) {
		t.Parallel()

		a := assessrec.Assessment{Name: "OPQ Personality"}

		err := a.Validate()
		require.Error(t, err)
		assert.Equal(t, assessrec.EINVALID, assessrec.ErrorCode(err))
	})
}
