package notification

import (
	"github.com/wallet-hq/nftflow/base/ctx"
)

type ModalName string

const (
	ModalNameNftOrder ModalName = "NFT_ORDER"
)

// Notifier surfaces user visible success / error messages. Raw errors go
// to the log channel, never here.
type Notifier interface {
	DisplaySuccess(c ctx.Ctx, msg string)
	DisplayError(c ctx.Ctx, msg string)
}

// Modals opens and closes host modals by name
type Modals interface {
	Show(c ctx.Ctx, name ModalName)
	CloseAll(c ctx.Ctx)
}

// Router navigates the host by path
type Router interface {
	Push(c ctx.Ctx, path string)
}
