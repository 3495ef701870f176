// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package push

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/MKhiriev/go-story-keeper/internal/store"
	"github.com/MKhiriev/go-story-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/hkdf"
)

// ContentEncoding is the only accepted Content-Encoding.
const ContentEncoding = "aes128gcm"

const (
	saltSize      = 16
	headerSize    = saltSize + 4 + 1
	tagSize       = 16
	keySize       = 16
	nonceSize     = 12
	ikmSize       = 32
	minRecordSize = 18

	delimiterLast  = 0x02
	delimiterOther = 0x01
)

// Dispatcher hands decrypted payloads to the worker.
type Dispatcher interface {
	DispatchPush(ctx context.Context, data []byte) error
}

// Message is a push message as posted to a local endpoint.
type Message struct {
	SubscriptionID  string
	ContentEncoding string
	// Authorization is the raw Authorization header.
	Authorization string
	Body          []byte
}

// Receiver accepts messages for [LocalPlatform] endpoints, decrypts them
// and dispatches a push event.
type Receiver struct {
	repo       store.PushSubscriptionRepository
	dispatcher Dispatcher
	origin     string
	logger     *logger.Logger
}

// NewReceiver constructs a [Receiver]. receiverURL must be the base the
// endpoints were minted under; VAPID tokens must name its origin as
// audience.
func NewReceiver(repo store.PushSubscriptionRepository, dispatcher Dispatcher, receiverURL string, logger *logger.Logger) (*Receiver, error) {
	u, err := url.Parse(receiverURL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid receiver url %q", receiverURL)
	}
	return &Receiver{
		repo:       repo,
		dispatcher: dispatcher,
		origin:     u.Scheme + "://" + u.Host,
		logger:     logger,
	}, nil
}

// Receive authenticates, decrypts and dispatches msg. A message without a
// body is a push without payload.
func (r *Receiver) Receive(ctx context.Context, msg Message) error {
	sub, found, err := r.repo.GetSubscriptionByID(ctx, msg.SubscriptionID)
	if err != nil {
		return fmt.Errorf("read subscription: %w", err)
	}
	if !found {
		return ErrUnknownSubscription
	}

	if sub.ApplicationServerKey != "" {
		if err = r.verifyVAPID(msg.Authorization, sub.ApplicationServerKey); err != nil {
			return err
		}
	}

	var data []byte
	if len(msg.Body) > 0 {
		if !strings.EqualFold(msg.ContentEncoding, ContentEncoding) {
			return fmt.Errorf("%w: %q", ErrUnsupportedEncoding, msg.ContentEncoding)
		}
		if data, err = Decrypt(sub, msg.Body); err != nil {
			return err
		}
	}

	logger.FromContext(ctx).Debug().
		Str("func", "Receiver.Receive").
		Str("subscription", sub.ID).
		Int("size", len(data)).
		Msg("push message received")

	return r.dispatcher.DispatchPush(ctx, data)
}

// verifyVAPID checks an RFC 8292 "vapid t=<jwt>, k=<key>" header: the key
// must be the one the subscription was made with and must have signed a
// live token for this origin.
func (r *Receiver) verifyVAPID(header, serverKey string) error {
	scheme, params, _ := strings.Cut(header, " ")
	if !strings.EqualFold(scheme, "vapid") {
		return fmt.Errorf("%w: scheme %q", ErrInvalidAuthorization, scheme)
	}

	var token, key string
	for _, part := range strings.Split(params, ",") {
		name, value, _ := strings.Cut(strings.TrimSpace(part), "=")
		switch name {
		case "t":
			token = value
		case "k":
			key = value
		}
	}
	if token == "" || strings.TrimRight(key, "=") != strings.TrimRight(serverKey, "=") {
		return fmt.Errorf("%w: unexpected key", ErrInvalidAuthorization)
	}

	raw, err := decodeKey(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAuthorization, err)
	}
	pub, err := ecdsa.ParseUncompressedPublicKey(elliptic.P256(), raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAuthorization, err)
	}

	_, err = jwt.Parse(token, func(*jwt.Token) (any, error) { return pub, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodES256.Alg()}),
		jwt.WithAudience(r.origin),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAuthorization, err)
	}
	return nil
}

// Decrypt opens an aes128gcm body (RFC 8188) encrypted for sub as
// described in RFC 8291.
func Decrypt(sub models.PlatformSubscription, body []byte) ([]byte, error) {
	if len(body) < headerSize {
		return nil, fmt.Errorf("%w: short header", ErrMalformedMessage)
	}

	salt := body[:saltSize]
	rs := binary.BigEndian.Uint32(body[saltSize : saltSize+4])
	idLen := int(body[saltSize+4])
	if rs < minRecordSize || len(body) < headerSize+idLen {
		return nil, fmt.Errorf("%w: bad header", ErrMalformedMessage)
	}
	senderKey := body[headerSize : headerSize+idLen]
	ciphertext := body[headerSize+idLen:]

	cek, baseNonce, err := deriveKeys(sub, salt, senderKey)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(cek)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	var plaintext []byte
	for seq := uint64(0); len(ciphertext) > 0; seq++ {
		n := min(int(rs), len(ciphertext))
		record := ciphertext[:n]
		ciphertext = ciphertext[n:]
		last := len(ciphertext) == 0

		opened, err := gcm.Open(nil, recordNonce(baseNonce, seq), record, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrDecryptionFailed, seq, err)
		}

		content, err := unpad(opened, last)
		if err != nil {
			return nil, err
		}
		plaintext = append(plaintext, content...)
	}

	return plaintext, nil
}

// deriveKeys computes the content encryption key and base nonce.
func deriveKeys(sub models.PlatformSubscription, salt, senderKey []byte) (cek, nonce []byte, err error) {
	curve := ecdh.P256()

	priv, err := curve.NewPrivateKey(sub.PrivateKey)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: subscription key: %w", ErrDecryptionFailed, err)
	}
	senderPub, err := curve.NewPublicKey(senderKey)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: sender key: %w", ErrMalformedMessage, err)
	}
	shared, err := priv.ECDH(senderPub)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	authSecret, err := decodeKey(sub.Keys.Auth)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: auth secret: %w", ErrDecryptionFailed, err)
	}

	keyInfo := make([]byte, 0, 14+2*len(senderKey))
	keyInfo = append(keyInfo, "WebPush: info\x00"...)
	keyInfo = append(keyInfo, priv.PublicKey().Bytes()...)
	keyInfo = append(keyInfo, senderKey...)

	ikm, err := expand(hkdf.Extract(sha256.New, shared, authSecret), keyInfo, ikmSize)
	if err != nil {
		return nil, nil, err
	}

	prk := hkdf.Extract(sha256.New, ikm, salt)
	if cek, err = expand(prk, []byte("Content-Encoding: aes128gcm\x00"), keySize); err != nil {
		return nil, nil, err
	}
	if nonce, err = expand(prk, []byte("Content-Encoding: nonce\x00"), nonceSize); err != nil {
		return nil, nil, err
	}
	return cek, nonce, nil
}

func expand(prk, info []byte, size int) ([]byte, error) {
	out := make([]byte, size)
	if _, err := io.ReadFull(hkdf.Expand(sha256.New, prk, info), out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	return out, nil
}

// recordNonce XORs the record sequence number into the low bytes of the
// base nonce.
func recordNonce(base []byte, seq uint64) []byte {
	nonce := make([]byte, len(base))
	copy(nonce, base)

	var s [8]byte
	binary.BigEndian.PutUint64(s[:], seq)
	for i := range s {
		nonce[len(nonce)-8+i] ^= s[i]
	}
	return nonce
}

// unpad strips trailing zero padding and the record delimiter.
func unpad(record []byte, last bool) ([]byte, error) {
	i := len(record) - 1
	for i >= 0 && record[i] == 0 {
		i--
	}
	if i < 0 {
		return nil, fmt.Errorf("%w: missing delimiter", ErrMalformedMessage)
	}

	want := byte(delimiterOther)
	if last {
		want = delimiterLast
	}
	if record[i] != want {
		return nil, fmt.Errorf("%w: delimiter %#x", ErrMalformedMessage, record[i])
	}
	return record[:i], nil
}

// decodeKey accepts base64url with or without padding and standard
// base64, as push services do.
func decodeKey(s string) ([]byte, error) {
	s = strings.TrimRight(s, "=")
	if b, err := base64.RawURLEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	return base64.RawStdEncoding.DecodeString(s)
}
