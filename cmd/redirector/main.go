package main

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/sstmlab/nfc-redirect/internal/app/server"
	"github.com/sstmlab/nfc-redirect/internal/app/service"
	"github.com/sstmlab/nfc-redirect/internal/config"
	"github.com/sstmlab/nfc-redirect/internal/logger"
	"github.com/sstmlab/nfc-redirect/internal/repository"
	"github.com/sstmlab/nfc-redirect/internal/storage"

	_ "net/http/pprof"
)

var buildVersion string
var buildDate string
var buildCommit string

// gateways bundles the storage interfaces a backend must provide.
type gateways interface {
	service.RedirectStore
	service.UserDirectory
	service.ClaimLedger
}

func main() {
	options := config.Parse()
	hostname := options.Port
	dbName := options.DatabaseDSN
	useTLS := options.EnableHTTPS

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	log := logger.New()
	defer func() {
		_ = log.Log.Sync()
	}()

	err := log.Init("Info")
	zapLogger := log.Log
	if err != nil {
		panic(err)
	}

	if options.JWTSecret == "" {
		zapLogger.Fatal("token signing secret is required (JWT_SECRET_KEY or -j)")
	}

	if options.EnablePprof {
		go func() {
			zapLogger.Info("Starting pprof server", zap.String("addr", "localhost:6060"))
			if err := http.ListenAndServe("localhost:6060", nil); err != nil {
				zapLogger.Error("pprof server error", zap.Error(err))
			}
		}()
	}

	var store gateways

	if dbName != "" {
		zapLogger.Info("using db", zap.String("dbName", dbName))
		db := repository.InitDB(dbName, zapLogger)
		defer db.Close()
		store = repository.New(db, zapLogger)
		zapLogger.Info("Database connected and tables ready.")
	} else {
		zapLogger.Info("using in memory storage")

		store, err = storage.CreateMemoryStorage()
		if err != nil {
			panic(err)
		}
	}

	codec := service.NewCodec(options.JWTSecret)

	resolver, err := service.NewResolver(codec, store, store, options.IdentityBaseURL, zapLogger)
	if err != nil {
		panic(err)
	}

	guard := service.NewClaimGuard(store, store, zapLogger)

	r := server.Init(zapLogger, resolver, guard, codec, store, store)

	if useTLS {
		manager := &autocert.Manager{
			Cache:      autocert.DirCache("cache-dir"),
			Prompt:     autocert.AcceptTOS,
			HostPolicy: autocert.HostWhitelist("redirect.ss-tm.org"),
		}
		tlsServer := &http.Server{
			Addr:      ":443",
			Handler:   r,
			TLSConfig: manager.TLSConfig(),
		}
		zapLogger.Info("Server is running with TLS", zap.String("hostname", hostname))
		if err := tlsServer.ListenAndServeTLS("", ""); err != nil {
			panic(err)
		}
	} else {
		zapLogger.Info("Server is running", zap.String("hostname", hostname))
		err = http.ListenAndServe(hostname, r)

		if err != nil {
			panic(err)
		}
	}
}
