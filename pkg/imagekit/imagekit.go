// Package imagekit signs browser upload requests for the hosted image CDN.
// The browser uploads directly to the CDN; the server only issues the
// short-lived signed parameters the uploader widget needs.
package imagekit

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// TokenValidity is how long issued upload parameters stay usable.
const TokenValidity = 30 * time.Minute

// Config holds the CDN account credentials.
type Config struct {
	PublicKey   string
	PrivateKey  string
	URLEndpoint string
}

// AuthParams are the signed parameters the browser uploader submits together
// with the file.
type AuthParams struct {
	Token     string `json:"token"`
	Expire    int64  `json:"expire"`
	Signature string `json:"signature"`
}

// Client issues signed upload parameters.
type Client struct {
	cfg Config
}

// NewClient creates a new Client.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg: cfg,
	}
}

// AuthParams returns one-time signed parameters: a fresh token, an expiry
// timestamp, and an HMAC-SHA1 signature over token+expire keyed with the
// private key. This matches what the CDN's upload API verifies.
func (c *Client) AuthParams(now time.Time) (AuthParams, error) {
	if c.cfg.PrivateKey == "" {
		return AuthParams{}, fmt.Errorf("imagekit private key is not configured")
	}

	token := uuid.New().String()
	expire := now.Add(TokenValidity).Unix()

	return AuthParams{
		Token:     token,
		Expire:    expire,
		Signature: c.sign(token, expire),
	}, nil
}

func (c *Client) sign(token string, expire int64) string {
	mac := hmac.New(sha1.New, []byte(c.cfg.PrivateKey))
	mac.Write([]byte(token + strconv.FormatInt(expire, 10)))
	return hex.EncodeToString(mac.Sum(nil))
}
