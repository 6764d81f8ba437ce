//go:build unit

package errs_test

import (
	"testing"

	"canteen-coupon/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractStackLines(t *testing.T) {
	t.Run("nil error has no lines", func(t *testing.T) {
		assert.Nil(t, errs.ExtractStackLines(nil, 5))
	})

	t.Run("first line is the message", func(t *testing.T) {
		err := errs.Wrap(errs.New("disk full"), "saving menu")

		lines := errs.ExtractStackLines(err, 0)

		require.NotEmpty(t, lines)
		assert.Equal(t, "saving menu: disk full", lines[0])
		assert.Greater(t, len(lines), 1)
	})

	t.Run("output is capped at maxLines", func(t *testing.T) {
		err := errs.Wrap(errs.New("disk full"), "saving menu")

		assert.Len(t, errs.ExtractStackLines(err, 3), 3)
	})
}
