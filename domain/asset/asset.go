package asset

import (
	"github.com/wallet-hq/nftflow/domain"
)

// Id identifies an asset by (contract address, token id). Identity is
// immutable, listing and ownership state is fetched externally.
type Id struct {
	ContractAddress domain.Address `json:"contractAddress"`
	TokenId         domain.TokenId `json:"tokenId"`
}

type Asset struct {
	ContractAddress domain.Address `json:"asset_contract_address"`
	TokenId         domain.TokenId `json:"token_id"`
	Name            string         `json:"name"`
	ImageUrl        string         `json:"image_url"`
	Owner           domain.Address `json:"owner"`
	CollectionSlug  string         `json:"collection_slug"`
	TokenType       int            `json:"token_type"`
}

func (a *Asset) ToId() Id {
	return Id{
		ContractAddress: a.ContractAddress.ToLower(),
		TokenId:         a.TokenId,
	}
}

type Collection struct {
	Slug     string         `json:"slug"`
	Name     string         `json:"name"`
	ImageUrl string         `json:"image_url"`
	Address  domain.Address `json:"address"`
}

type CollectionInfo struct {
	Slug        string         `json:"slug"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	ImageUrl    string         `json:"image_url"`
	Address     domain.Address `json:"address"`
}

type AssetContract struct {
	Address    domain.Address `json:"address"`
	Symbol     string         `json:"symbol"`
	Collection Collection     `json:"collection"`
}

// Offer is an offer event made on an asset, as reported by the
// marketplace events feed
type Offer struct {
	Asset        Asset          `json:"asset"`
	FromAddress  domain.Address `json:"from_address"`
	PaymentToken domain.Address `json:"payment_token"`
	Amount       string         `json:"amount"`
	CreatedDate  string         `json:"created_date"`
}
