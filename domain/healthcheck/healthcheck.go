package healthcheck

import (
	"github.com/wallet-hq/nftflow/base/ctx"
)

// Usecase reports whether the upstream dependencies answer.
type Usecase interface {
	Check(c ctx.Ctx) error
}
