package repository

import (
	"encoding/json"
	"io/ioutil"

	"github.com/ethereum/go-ethereum/accounts/keystore"

	"github.com/wallet-hq/nftflow/base/ctx"
	"github.com/wallet-hq/nftflow/base/log"
	"github.com/wallet-hq/nftflow/domain/wallet"
)

// fileVault keeps the wallet mnemonic in a keystore-encrypted blob on
// disk. The mnemonic only exists in memory between unlock and key
// derivation.
type fileVault struct {
	path string
}

func NewFileVault(path string) wallet.MnemonicVault {
	return &fileVault{path: path}
}

func (v *fileVault) Mnemonic(c ctx.Ctx, passphrase string) (string, error) {
	raw, err := ioutil.ReadFile(v.path)
	if err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"path": v.path,
		}).Error("ioutil.ReadFile failed")
		return "", err
	}
	blob := keystore.CryptoJSON{}
	if err := json.Unmarshal(raw, &blob); err != nil {
		c.WithError(err).Error("json.Unmarshal failed")
		return "", err
	}
	mnemonic, err := keystore.DecryptDataV3(blob, passphrase)
	if err != nil {
		c.WithError(err).Error("keystore.DecryptDataV3 failed")
		return "", err
	}
	return string(mnemonic), nil
}

// Seal encrypts a mnemonic for later unlocks. Used by the enrollment
// path and the test fixtures.
func Seal(path, mnemonic, passphrase string) error {
	blob, err := keystore.EncryptDataV3([]byte(mnemonic), []byte(passphrase), keystore.StandardScryptN, keystore.StandardScryptP)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(blob)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, raw, 0600)
}
