package repository

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	bCtx "github.com/wallet-hq/nftflow/base/ctx"
)

const testMnemonic = "tag volcano eight thank tide danger coast health above argon"

type vaultTestSuite struct {
	suite.Suite
}

func TestFileVault(t *testing.T) {
	suite.Run(t, new(vaultTestSuite))
}

func (s *vaultTestSuite) TestSealUnlockRoundTrip() {
	path := filepath.Join(s.T().TempDir(), "vault.json")
	s.Require().NoError(Seal(path, testMnemonic, "hunter2"))

	mnemonic, err := NewFileVault(path).Mnemonic(bCtx.Background(), "hunter2")
	s.Require().NoError(err)
	s.Equal(testMnemonic, mnemonic)
}

func (s *vaultTestSuite) TestWrongPassphrase() {
	path := filepath.Join(s.T().TempDir(), "vault.json")
	s.Require().NoError(Seal(path, testMnemonic, "hunter2"))

	_, err := NewFileVault(path).Mnemonic(bCtx.Background(), "wrong")
	s.Error(err)
}

func (s *vaultTestSuite) TestMissingFile() {
	path := filepath.Join(s.T().TempDir(), "vault.json")

	_, err := NewFileVault(path).Mnemonic(bCtx.Background(), "hunter2")
	s.Error(err)
}

func (s *vaultTestSuite) TestCorruptBlob() {
	path := filepath.Join(s.T().TempDir(), "vault.json")
	s.Require().NoError(ioutil.WriteFile(path, []byte("{not json"), 0600))

	_, err := NewFileVault(path).Mnemonic(bCtx.Background(), "hunter2")
	s.Error(err)
}
