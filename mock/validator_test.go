package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/distcheck"
	"github.com/fwojciec/distcheck/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ distcheck.Validator = &mock.Validator{}
}

func TestValidator_Validate(t *testing.T) {
	t.Parallel()

	t.Run("delegates to ValidateFn", func(t *testing.T) {
		t.Parallel()

		var calledWith string
		v := &mock.Validator{
			ValidateFn: func(_ context.Context, dir string) (*distcheck.Report, error) {
				calledWith = dir
				return &distcheck.Report{Name: "meta"}, nil
			},
		}

		report, err := v.Validate(context.Background(), "/srv/dist")

		require.NoError(t, err)
		assert.Equal(t, "/srv/dist", calledWith)
		assert.Equal(t, "meta", report.Name)
	})
}
