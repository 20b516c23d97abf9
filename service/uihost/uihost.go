// Package uihost provides in-process adapters standing in for the
// wallet UI host: user visible alerts, modal registry and router. The
// raw error log channel stays on ctx, these only carry what the user
// sees.
package uihost

import (
	"sync"

	"github.com/google/uuid"

	"github.com/wallet-hq/nftflow/base/ctx"
	"github.com/wallet-hq/nftflow/domain"
	"github.com/wallet-hq/nftflow/domain/notification"
	"github.com/wallet-hq/nftflow/domain/wallet"
)

type AlertLevel string

const (
	AlertLevelSuccess AlertLevel = "success"
	AlertLevelError   AlertLevel = "error"
)

type Alert struct {
	Id      string     `json:"id"`
	Level   AlertLevel `json:"level"`
	Message string     `json:"message"`
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

type Notifier struct {
	mu     sync.Mutex
	alerts []Alert
}

func (n *Notifier) DisplaySuccess(c ctx.Ctx, msg string) {
	n.push(c, AlertLevelSuccess, msg)
}

func (n *Notifier) DisplayError(c ctx.Ctx, msg string) {
	n.push(c, AlertLevelError, msg)
}

func (n *Notifier) push(c ctx.Ctx, level AlertLevel, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.alerts = append(n.alerts, Alert{
		Id:      uuid.NewString(),
		Level:   level,
		Message: msg,
	})
	c.WithField("alert", msg).Info("alert displayed")
}

// Drain returns the pending alerts and clears them
func (n *Notifier) Drain() []Alert {
	n.mu.Lock()
	defer n.mu.Unlock()
	alerts := n.alerts
	n.alerts = nil
	return alerts
}

func NewModals() *Modals {
	return &Modals{open: map[notification.ModalName]bool{}}
}

type Modals struct {
	mu   sync.Mutex
	open map[notification.ModalName]bool
}

func (m *Modals) Show(c ctx.Ctx, name notification.ModalName) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open[name] = true
}

func (m *Modals) CloseAll(c ctx.Ctx) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = map[notification.ModalName]bool{}
}

func (m *Modals) IsOpen(name notification.ModalName) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open[name]
}

func NewRouter() *Router {
	return &Router{path: "/"}
}

type Router struct {
	mu   sync.Mutex
	path string
}

func (r *Router) Push(c ctx.Ctx, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.path = path
}

func (r *Router) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.path
}

// NewPassphrasePrompter returns a prompter answering with a fixed
// secret, standing in for the host's passphrase dialog. An empty secret
// behaves like a dismissed prompt.
func NewPassphrasePrompter(secret string) wallet.PassphrasePrompter {
	return func(c ctx.Ctx) (string, error) {
		if secret == "" {
			return "", domain.ErrSigner
		}
		return secret, nil
	}
}
