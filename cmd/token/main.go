// cmd/token/main.go
//
// token mints a seller access token for local development:
//
//	go run ./cmd/token -seller <uuid>
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/seller-products/internal/config"
	"github.com/javajoker/seller-products/internal/utils"
)

func main() {
	sellerFlag := flag.String("seller", "", "seller id the token acts for")
	ttl := flag.Int("ttl", 0, "token lifetime in hours (defaults to JWT_ACCESS_TTL)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	sellerID, err := uuid.Parse(*sellerFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "a valid -seller id is required")
		flag.Usage()
		os.Exit(2)
	}

	hours := cfg.Auth.AccessTokenTTL
	if *ttl > 0 {
		hours = *ttl
	}

	utils.SetJWTSecret(cfg.Auth.SecretKey)
	token, err := utils.GenerateJWT(sellerID, hours)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to sign token")
	}

	fmt.Println(token)
}
