//go:build unit

package wash_test

import (
	"testing"

	"washclub/internal/domain/wash"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewType(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  wash.Type
		errIs error
	}{
		{name: "in and out", input: "in_and_out", want: wash.TypeInAndOut},
		{name: "outside only", input: "outside_only", want: wash.TypeOutsideOnly},
		{name: "unknown type", input: "underbody", errIs: wash.ErrInvalidType},
		{name: "empty", input: "", errIs: wash.ErrInvalidType},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := wash.NewType(c.input)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}
