package infra

import (
	"github.com/umalmyha/customer-relay/internal/auth"
	"github.com/umalmyha/customer-relay/internal/collector"
	"github.com/umalmyha/customer-relay/internal/config"
)

// Collector builds collector client, requests are signed only if private key file is configured
func Collector(cfg config.CollectorCfg) (*collector.Client, error) {
	httpClient := collector.NewHTTPClient(cfg.Timeout)

	var signer collector.TokenSigner
	if cfg.AuthCfg.Enabled() {
		issuer, err := auth.NewEd25519JwtIssuerFromFile(cfg.AuthCfg.Issuer, cfg.AuthCfg.TimeToLive, cfg.AuthCfg.PrivateKeyFile)
		if err != nil {
			return nil, err
		}
		signer = issuer
	}

	return collector.NewClient(cfg.URL, cfg.MediaType, httpClient, signer), nil
}
