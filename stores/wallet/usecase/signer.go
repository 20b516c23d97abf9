package usecase

import (
	hdwallet "github.com/miguelmota/go-ethereum-hdwallet"

	"github.com/wallet-hq/nftflow/base/ctx"
	"github.com/wallet-hq/nftflow/domain"
	"github.com/wallet-hq/nftflow/domain/wallet"
)

const defaultDerivationPath = "m/44'/60'/0'/0/0"

type SignerProviderCfg struct {
	Prompt wallet.PassphrasePrompter
	Vault  wallet.MnemonicVault
	// DerivationPath defaults to the first ethereum account
	DerivationPath string
}

type impl struct {
	prompt wallet.PassphrasePrompter
	vault  wallet.MnemonicVault
	path   string
}

func NewSignerProvider(cfg *SignerProviderCfg) wallet.Provider {
	path := cfg.DerivationPath
	if path == "" {
		path = defaultDerivationPath
	}
	return &impl{
		prompt: cfg.Prompt,
		vault:  cfg.Vault,
		path:   path,
	}
}

// GetSigner prompts for the passphrase, unlocks the mnemonic and derives
// the account key. Every failure collapses into the one generic signer
// error; the cause is only logged.
func (im *impl) GetSigner(c ctx.Ctx) (*wallet.Signer, error) {
	password, err := im.prompt(c)
	if err != nil {
		c.WithError(err).Error("passphrase prompt failed")
		return nil, domain.ErrSigner
	}
	mnemonic, err := im.vault.Mnemonic(c, password)
	if err != nil {
		c.WithError(err).Error("vault.Mnemonic failed")
		return nil, domain.ErrSigner
	}
	w, err := hdwallet.NewFromMnemonic(mnemonic)
	if err != nil {
		c.WithError(err).Error("hdwallet.NewFromMnemonic failed")
		return nil, domain.ErrSigner
	}
	path, err := hdwallet.ParseDerivationPath(im.path)
	if err != nil {
		c.WithError(err).Error("hdwallet.ParseDerivationPath failed")
		return nil, domain.ErrSigner
	}
	account, err := w.Derive(path, false)
	if err != nil {
		c.WithError(err).Error("wallet.Derive failed")
		return nil, domain.ErrSigner
	}
	key, err := w.PrivateKey(account)
	if err != nil {
		c.WithError(err).Error("wallet.PrivateKey failed")
		return nil, domain.ErrSigner
	}
	return wallet.NewSigner(key), nil
}

// NewStaticAddressProvider serves the wallet's default receive address
// without touching secret material, for flows that only read state.
func NewStaticAddressProvider(address domain.Address) wallet.AddressProvider {
	return &staticAddressProvider{address: address.ToLower()}
}

type staticAddressProvider struct {
	address domain.Address
}

func (p *staticAddressProvider) DefaultAddress(c ctx.Ctx) (domain.Address, error) {
	if p.address.IsEmpty() {
		return "", domain.ErrInvalidAddress
	}
	return p.address, nil
}
