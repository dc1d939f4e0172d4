package imagekit_test

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"strconv"
	"testing"
	"time"

	"etalase/pkg/imagekit"

	"github.com/stretchr/testify/assert"
)

func TestAuthParams(t *testing.T) {
	client := imagekit.NewClient(imagekit.Config{
		PublicKey:   "public_test",
		PrivateKey:  "private_test",
		URLEndpoint: "https://ik.example.com/test",
	})

	now := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	params, err := client.AuthParams(now)
	assert.NoError(t, err)

	assert.NotEmpty(t, params.Token)
	assert.Equal(t, now.Add(imagekit.TokenValidity).Unix(), params.Expire)

	// The signature must be the hex HMAC-SHA1 of token+expire under the
	// private key, since that is what the CDN recomputes.
	mac := hmac.New(sha1.New, []byte("private_test"))
	mac.Write([]byte(params.Token + strconv.FormatInt(params.Expire, 10)))
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), params.Signature)
}

func TestAuthParamsTokensAreUnique(t *testing.T) {
	client := imagekit.NewClient(imagekit.Config{PrivateKey: "private_test"})

	first, err := client.AuthParams(time.Now())
	assert.NoError(t, err)
	second, err := client.AuthParams(time.Now())
	assert.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
}

func TestAuthParamsRequiresPrivateKey(t *testing.T) {
	client := imagekit.NewClient(imagekit.Config{PublicKey: "public_test"})

	_, err := client.AuthParams(time.Now())
	assert.Error(t, err)
}
