package keys

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	req := require.New(t)
	req.Equal("overview:0xabc", Key(PfxOverview, "0xabc"))
	req.Equal("a-b-c", CustomKey("-", "a", "b", "c"))
}
