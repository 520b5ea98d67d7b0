package identity

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Run("format", func(t *testing.T) {
		id := Default("billing")
		require.Regexp(t, regexp.MustCompile(`^billing-[0-9a-f]{16}$`), id)
	})

	t.Run("stable within a process", func(t *testing.T) {
		require.Equal(t, Default("billing"), Default("billing"))
	})

	t.Run("distinct per service", func(t *testing.T) {
		require.NotEqual(t, Default("billing"), Default("shipping"))
	})
}
