package ens

import (
	"strings"

	"github.com/warrantify/goapi/base/ctx"
	"github.com/warrantify/goapi/domain"
)

type ENS interface {
	Resolve(ctx ctx.Ctx, name string) (domain.Address, error)
	ReverseResolve(ctx ctx.Ctx, address domain.Address) (string, error)
}

// IsName reports whether s looks like an ens name rather than a hex address
func IsName(s string) bool {
	s = strings.TrimSpace(s)
	return strings.Contains(s, ".") && !strings.HasPrefix(s, "0x")
}
