package usecase

import (
	"time"

	"github.com/wallet-hq/nftflow/base/ctx"
	"github.com/wallet-hq/nftflow/domain/healthcheck"
	"github.com/wallet-hq/nftflow/service/chain"
	"github.com/wallet-hq/nftflow/service/marketplace"
)

type HealthCheckCfg struct {
	Marketplace marketplace.Client
	Chain       chain.Provider
}

type impl struct {
	marketplace marketplace.Client
	chain       chain.Provider
}

func New(cfg *HealthCheckCfg) healthcheck.Usecase {
	return &impl{
		marketplace: cfg.Marketplace,
		chain:       cfg.Chain,
	}
}

func (im *impl) Check(context ctx.Ctx) error {
	c, cancel := ctx.WithTimeout(context, 2*time.Second)
	defer cancel()
	if _, err := im.chain.ChainId(c); err != nil {
		c.WithField("err", err).Error("ping chain rpc error")
		return err
	}
	if _, err := im.marketplace.GetOpenSeaStatus(c); err != nil {
		c.WithField("err", err).Error("ping marketplace gateway error")
		return err
	}
	return nil
}
