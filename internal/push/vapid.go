package push

import (
	"fmt"

	webpush "github.com/SherClockHolmes/webpush-go"
)

// VAPIDKeys is an application server key pair, base64url encoded.
type VAPIDKeys struct {
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey"`
}

// GenerateVAPIDKeys creates a key pair for a push-sending server. The
// public key is what the client subscribes with.
func GenerateVAPIDKeys() (VAPIDKeys, error) {
	private, public, err := webpush.GenerateVAPIDKeys()
	if err != nil {
		return VAPIDKeys{}, fmt.Errorf("generate vapid keys: %w", err)
	}
	return VAPIDKeys{PublicKey: public, PrivateKey: private}, nil
}
