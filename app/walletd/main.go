package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/wallet-hq/nftflow/base/ctx"
	"github.com/wallet-hq/nftflow/base/log"
	"github.com/wallet-hq/nftflow/base/metrics"
	bValidator "github.com/wallet-hq/nftflow/base/validator"
	"github.com/wallet-hq/nftflow/domain"
	mmiddleware "github.com/wallet-hq/nftflow/middleware"
	"github.com/wallet-hq/nftflow/service/chain"
	"github.com/wallet-hq/nftflow/service/marketplace"
	"github.com/wallet-hq/nftflow/service/uihost"
	healthcheck_delivery "github.com/wallet-hq/nftflow/stores/healthcheck/delivery/http"
	healthcheck_usecase "github.com/wallet-hq/nftflow/stores/healthcheck/usecase"
	orderflow_delivery "github.com/wallet-hq/nftflow/stores/orderflow/delivery/http"
	orderflow_usecase "github.com/wallet-hq/nftflow/stores/orderflow/usecase"
	order_usecase "github.com/wallet-hq/nftflow/stores/order/usecase"
	token_delivery "github.com/wallet-hq/nftflow/stores/token/delivery/http"
	token_usecase "github.com/wallet-hq/nftflow/stores/token/usecase"
	wallet_repository "github.com/wallet-hq/nftflow/stores/wallet/repository"
	wallet_usecase "github.com/wallet-hq/nftflow/stores/wallet/usecase"
)

func init() {
	configPath := pflag.String("config", "infra/configs/walletd/config.yaml", "config file path")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configPath)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.SetDevelopment()
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	metrics.AgentHost = viper.GetString("metrics.agentHost")
	metrics.AgentPort = viper.GetString("metrics.agentPort")

	chainId := domain.ChainId(viper.GetInt32("chain.chainId"))
	exchangeContract := domain.Address(viper.GetString("chain.exchangeContract")).ToLower()
	wrappedNative := domain.Address(viper.GetString("chain.wrappedNative")).ToLower()

	// init marketplace gateway
	context.Info("init marketplace client")
	httpTimeout := viper.GetDuration("http.timeout")
	marketplaceClient := marketplace.NewClient(&marketplace.ClientCfg{
		HttpClient: http.Client{},
		BaseUrl:    viper.GetString("marketplace.baseUrl"),
		Timeout:    httpTimeout,
		Apikey:     viper.GetString("marketplace.apikey"),
		Metrics:    metrics.New("marketplace"),
	})

	// init chain provider
	context.Info("init chain provider")
	chainProvider, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrl: viper.GetString("chain.rpcUrl"),
	})
	if err != nil {
		context.WithField("err", err).Panic("chain provider failed to start")
	}

	// ui host adapters
	notifier := uihost.NewNotifier()
	modals := uihost.NewModals()
	router := uihost.NewRouter()

	// wallet layer
	vault := wallet_repository.NewFileVault(viper.GetString("wallet.vaultPath"))
	prompter := uihost.NewPassphrasePrompter(viper.GetString("wallet.passphrase"))
	signerProvider := wallet_usecase.NewSignerProvider(&wallet_usecase.SignerProviderCfg{
		Prompt:         prompter,
		Vault:          vault,
		DerivationPath: viper.GetString("wallet.derivationPath"),
	})
	addressProvider := wallet_usecase.NewStaticAddressProvider(
		domain.Address(viper.GetString("wallet.address")))

	// order layer
	builder := order_usecase.NewBuilder(&order_usecase.BuilderCfg{
		ChainId:          chainId,
		ExchangeContract: exchangeContract,
		WrappedNative:    wrappedNative,
		OfferTtl:         viper.GetDuration("orderflow.ttl"),
	})
	estimator := order_usecase.NewFeeEstimator(&order_usecase.EstimatorCfg{
		Marketplace:      marketplaceClient,
		Chain:            chainProvider,
		ExchangeContract: exchangeContract,
		WrappedNative:    wrappedNative,
	})
	submitter := order_usecase.NewSubmitter(&order_usecase.SubmitterCfg{
		Marketplace:      marketplaceClient,
		Chain:            chainProvider,
		ChainId:          chainId,
		ExchangeContract: exchangeContract,
	})

	// view + flow layer
	tokenUsecase := token_usecase.New(&token_usecase.TokenCfg{
		Marketplace: marketplaceClient,
		Wallet:      addressProvider,
	})
	orderflowUsecase := orderflow_usecase.New(&orderflow_usecase.OrderFlowCfg{
		Marketplace: marketplaceClient,
		Wallet:      signerProvider,
		Address:     addressProvider,
		Builder:     builder,
		Estimator:   estimator,
		Submitter:   submitter,
		Token:       tokenUsecase,
		Notifier:    notifier,
		Modals:      modals,
		Router:      router,
	})

	healthUsecase := healthcheck_usecase.New(&healthcheck_usecase.HealthCheckCfg{
		Marketplace: marketplaceClient,
		Chain:       chainProvider,
	})

	token_delivery.New(e, tokenUsecase)
	orderflow_delivery.New(e, orderflowUsecase)
	healthcheck_delivery.New(e, healthUsecase)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	shutdownCtx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
