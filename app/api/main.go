package main

import (
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"cloud.google.com/go/storage"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/warrantify/goapi/base/ctx"
	"github.com/warrantify/goapi/base/ethereum"
	"github.com/warrantify/goapi/base/log"
	bValidator "github.com/warrantify/goapi/base/validator"
	"github.com/warrantify/goapi/domain"
	"github.com/warrantify/goapi/domain/file"
	"github.com/warrantify/goapi/domain/keys"
	mmiddleware "github.com/warrantify/goapi/middleware"
	"github.com/warrantify/goapi/service/cache"
	"github.com/warrantify/goapi/service/cache/provider/primitive"
	"github.com/warrantify/goapi/service/chain"
	"github.com/warrantify/goapi/service/chain/contract"
	"github.com/warrantify/goapi/service/ens"
	"github.com/warrantify/goapi/service/ipfs"
	"github.com/warrantify/goapi/service/notifier"
	"github.com/warrantify/goapi/service/pinata"
	auth_delivery "github.com/warrantify/goapi/stores/auth/delivery/http"
	auth_middleware "github.com/warrantify/goapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/warrantify/goapi/stores/auth/usecase"
	collection_delivery "github.com/warrantify/goapi/stores/collection/delivery/http"
	collection_usecase "github.com/warrantify/goapi/stores/collection/usecase"
	ens_delivery "github.com/warrantify/goapi/stores/ens/delivery/http"
	file_repository "github.com/warrantify/goapi/stores/file/repository"
	file_usecase "github.com/warrantify/goapi/stores/file/usecase"
	hc_delivery "github.com/warrantify/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/warrantify/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/warrantify/goapi/stores/healthcheck/usecase"
	warranty_delivery "github.com/warrantify/goapi/stores/warranty/delivery/http"
	warranty_usecase "github.com/warrantify/goapi/stores/warranty/usecase"
)

func init() {
	pflag.String("config", "infra/configs/config.yaml", "path of the yaml config file")
	pflag.Parse()
	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		panic(err)
	}

	viper.SetConfigType("yaml")
	viper.SetConfigFile(viper.GetString("config"))
	viper.SetEnvPrefix("warranty")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if err := log.SetLevel(viper.GetString("log.level")); err != nil {
		log.Log().WithField("err", err).Warn("invalid log.level, keep info")
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	defer log.Sync()

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

	// in-process caches
	context.Info("init local cache")
	localCache := primitive.NewPrimitive("local", viper.GetInt("cache.sizeMB"))
	mmiddleware.SetupCache(viper.GetInt("cache.httpSizeMB"))

	// init chain service
	context.Info("init chain client")
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrl:         viper.GetString("chain.rpcUrl"),
		ChainId:        domain.ChainId(viper.GetInt64("chain.chainId")),
		MaxConcurrency: viper.GetInt("chain.maxConcurrency"),
		SignerKey:      viper.GetString("chain.signerKey"),
		TxTimeout:      viper.GetDuration("chain.txTimeout"),
	})
	if err != nil {
		context.WithField("err", err).Panic("chain.NewClient failed")
	}
	factoryService := contract.NewFactory(chainService, domain.Address(viper.GetString("chain.factory")))
	warrantyService := contract.NewWarranty(chainService)

	// ens lives on ethereum mainnet, which need not be the chain the collections are on
	var ensService ens.ENS
	if rpcUrl := viper.GetString("ens.rpcUrl"); len(rpcUrl) > 0 {
		client, err := ethclient.DialContext(context, rpcUrl)
		if err != nil {
			context.WithField("err", err).Panic("ethclient.Dial for ens failed")
		}
		ensService = ens.New(ethereum.NewTrottledClient(client, viper.GetInt("ens.maxConcurrency")))
	}

	// content addressed storage, a local ipfs node takes precedence over pinata
	var contentStore file.ContentStore
	if apiUrl := viper.GetString("ipfs.apiUrl"); len(apiUrl) > 0 {
		contentStore = ipfs.New(apiUrl, viper.GetDuration("ipfs.timeout"))
	} else {
		contentStore = pinata.New(pinata.Config{
			Endpoint:   viper.GetString("pinata.endpoint"),
			ApiKey:     viper.GetString("pinata.apiKey"),
			ApiSecret:  viper.GetString("pinata.apiSecret"),
			CidVersion: pinata.CidVersion(viper.GetInt("pinata.cidVersion")),
		}, &http.Client{Timeout: viper.GetDuration("http.timeout")})
	}

	var mirror file.MirrorRepository
	if bucket := viper.GetString("mirror.bucket"); len(bucket) > 0 {
		storageClient, err := storage.NewClient(context)
		if err != nil {
			context.WithField("err", err).Panic("storage.NewClient failed")
		}
		defer storageClient.Close()
		mirror, err = file_repository.NewCloudStorageWriterRepo(&file_repository.CloudStorageWriterRepoCfg{
			Timeout:    viper.GetDuration("mirror.timeout"),
			Client:     storageClient,
			BucketName: bucket,
			Url:        viper.GetString("mirror.url"),
		})
		if err != nil {
			context.WithField("err", err).Panic("NewCloudStorageWriterRepo failed")
		}
	}

	notify := notifier.NewNop()
	if botKey := viper.GetString("discord.botKey"); len(botKey) > 0 {
		notify, err = notifier.NewDiscord(notifier.DiscordConfig{
			BotKey:      botKey,
			ChannelId:   viper.GetString("discord.channelId"),
			ExplorerUrl: viper.GetString("chain.explorerUrl"),
			IpfsGateway: viper.GetString("ipfs.gateway"),
		})
		if err != nil {
			context.WithField("err", err).Warn("notifier.NewDiscord failed, notifications disabled")
			notify = notifier.NewNop()
		}
	}

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(chainService, cache.New(cache.ServiceConfig{
		Ttl:   30 * time.Second,
		Pfx:   "healthCheck",
		Cache: localCache,
	}))
	hc := hc_usecase.New(hcRepo)

	auth := auth_usecase.New(&auth_usecase.AuthUseCaseCfg{
		JwtSecret:    viper.GetString("auth.jwtSecret"),
		SignatureMsg: viper.GetString("auth.signatureMsg"),
		NonceCache: cache.New(cache.ServiceConfig{
			Ttl:   5 * time.Minute,
			Pfx:   keys.PfxSignInNonce,
			Cache: localCache,
		}),
	})

	fileUC := file_usecase.New(&file_usecase.FileUseCaseCfg{
		Store:        contentStore,
		Mirror:       mirror,
		MaxImageSize: viper.GetInt64("upload.maxImageSize"),
	})

	collection := collection_usecase.New(&collection_usecase.CollectionUseCaseCfg{
		Factory:  factoryService,
		Warranty: warrantyService,
		InfoCache: cache.New(cache.ServiceConfig{
			Ttl:   viper.GetDuration("cache.infoTtl"),
			Pfx:   keys.PfxCollectionInfo,
			Cache: localCache,
		}),
		SnapshotCache: cache.New(cache.ServiceConfig{
			Ttl:   viper.GetDuration("cache.overviewTtl"),
			Pfx:   keys.PfxOverview,
			Cache: localCache,
		}),
		Notifier:     notify,
		Operator:     chainService.Signer(),
		Concurrency:  viper.GetInt("aggregation.concurrency"),
		RefreshDelay: viper.GetDuration("aggregation.refreshDelay"),
	})

	warranty := warranty_usecase.New(&warranty_usecase.WarrantyUseCaseCfg{
		Warranty:   warrantyService,
		Collection: collection,
		File:       fileUC,
		Ens:        ensService,
		Notifier:   notify,
	})

	auth_middleware := auth_middleware.New(auth)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth)
	collection_delivery.New(e, collection, auth_middleware)
	warranty_delivery.New(e, warranty, auth_middleware)
	if ensService != nil {
		ens_delivery.New(e, ensService)
	}

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
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
