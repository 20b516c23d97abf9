package wallet

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/wallet-hq/nftflow/base/ctx"
	"github.com/wallet-hq/nftflow/domain"
)

// PassphrasePrompter suspends the calling flow until the user answers the
// passphrase prompt or dismisses it.
type PassphrasePrompter func(c ctx.Ctx) (string, error)

// MnemonicVault releases the wallet mnemonic for a correct passphrase.
type MnemonicVault interface {
	Mnemonic(c ctx.Ctx, passphrase string) (string, error)
}

// Provider obtains a transaction signer from user held secret material.
type Provider interface {
	GetSigner(c ctx.Ctx) (*Signer, error)
}

// AddressProvider serves the wallet's default receive address without
// unlocking any secret material.
type AddressProvider interface {
	DefaultAddress(c ctx.Ctx) (domain.Address, error)
}

// Signer holds the derived account key and exposes the signing primitives
// consumed by the order builder and submitter.
type Signer struct {
	address domain.Address
	key     *ecdsa.PrivateKey
}

func NewSigner(key *ecdsa.PrivateKey) *Signer {
	addr := crypto.PubkeyToAddress(key.PublicKey)
	return &Signer{
		address: domain.Address(addr.Hex()).ToLower(),
		key:     key,
	}
}

func (s *Signer) Address() domain.Address {
	return s.address
}

// SignHash signs a 32 byte digest and normalizes V to 27/28 as the
// exchange contract expects.
func (s *Signer) SignHash(digest []byte) ([]byte, error) {
	sig, err := crypto.Sign(digest, s.key)
	if err != nil {
		return nil, err
	}
	sig[64] += 27
	return sig, nil
}

// SignTx signs a chain transaction with the EIP-155 signer for chainId.
func (s *Signer) SignTx(tx *types.Transaction, chainId *big.Int) (*types.Transaction, error) {
	return types.SignTx(tx, types.NewEIP155Signer(chainId), s.key)
}
