package main

import (
	"context"
	"encoding/base64"
	"fmt"

	"tasmeem/pkg/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/gorilla/securecookie"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

func loadConfig(logger *logrus.Logger) (*types.Config, error) {
	c := new(types.Config)
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}

	if c.DatabaseURL == "" {
		return nil, fmt.Errorf("set DATABASE_URL")
	}

	if c.ServerPort == 0 {
		c.ServerPort = 8080
	}

	if c.ReadTimeoutSec == 0 {
		c.ReadTimeoutSec = 10
	}

	if c.WriteTimeoutSec == 0 {
		c.WriteTimeoutSec = 30
	}

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}
	logger.SetLevel(level)

	// Generated keys do not survive a restart: sessions, drafts and admin
	// logins are lost with them.
	if c.CookieHashKey == "" {
		logger.Warn("COOKIE_HASH_KEY not set, generating a random key")
		c.CookieHashKey = randomKey(64)
	}
	if c.CookieBlockKey == "" {
		logger.Warn("COOKIE_BLOCK_KEY not set, generating a random key")
		c.CookieBlockKey = randomKey(32)
	}
	if c.CSRFKey == "" {
		logger.Warn("CSRF_KEY not set, generating a random key")
		c.CSRFKey = randomKey(32)
	}

	return c, nil
}

func randomKey(length int) string {
	return base64.StdEncoding.EncodeToString(securecookie.GenerateRandomKey(length))
}

func loadAWSConfig(ctx context.Context) (aws.Config, error) {
	config, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load aws config: %w", err)
	}

	return config, nil
}

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	return logger
}
