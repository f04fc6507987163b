package client

import (
	"crypto/tls"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

type ParkingClient struct {
	HTTP   *resty.Client
	Config ClientConfig
	log    *slog.Logger
}

type ClientConfig struct {
	BaseURL  string
	Insecure bool          // skip TLS verification (self-signed test deployments)
	Timeout  time.Duration // 0 means no timeout
	Logger   *slog.Logger  // diagnostic channel, slog.Default() when nil
}

func New(cfg ClientConfig) *ParkingClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := resty.New()
	r.SetBaseURL(cfg.BaseURL)
	r.SetHeader("Content-Type", "application/json")
	r.SetHeader("Accept", "application/json")

	if cfg.Insecure {
		r.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	if cfg.Timeout > 0 {
		r.SetTimeout(cfg.Timeout)
	}

	return &ParkingClient{
		HTTP:   r,
		Config: cfg,
		log:    logger,
	}
}

// send issues the single request for op and decodes a 2xx body into result.
// Non-2xx answers become *APIError. Every failure is logged once here and
// returned unchanged.
func (c *ParkingClient) send(op Operation, plate string, payload, result interface{}) error {
	ep, err := Lookup(op)
	if err != nil {
		return err
	}

	req := c.HTTP.R()
	if ep.HasBody && payload != nil {
		req.SetBody(payload)
	}

	resp, err := req.Execute(ep.Method, ep.Target(plate))
	if err != nil {
		c.log.Error("network or API error", "operation", op, "url", ep.URL(c.Config.BaseURL, plate), "err", err)
		return err
	}

	if !resp.IsSuccess() {
		apiErr := newAPIError(resp.StatusCode(), resp.Body())
		c.log.Error("network or API error", "operation", op, "status", resp.StatusCode(), "err", apiErr)
		return apiErr
	}

	if err := json.Unmarshal(resp.Body(), result); err != nil {
		c.log.Error("network or API error", "operation", op, "status", resp.StatusCode(), "err", err)
		return err
	}

	return nil
}
