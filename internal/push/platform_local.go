package push

import (
	"context"
	"crypto/ecdh"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/MKhiriev/go-story-keeper/internal/store"
	"github.com/MKhiriev/go-story-keeper/internal/utils"
	"github.com/MKhiriev/go-story-keeper/models"
)

// EndpointPath is the path prefix of endpoints minted by [LocalPlatform].
const EndpointPath = "/push/"

const authSecretSize = 16

// Prompter asks the user whether notifications may be shown.
type Prompter func(ctx context.Context) (bool, error)

// LocalPlatform is a self-hosted push service. Subscriptions and their
// private keys are kept in the client database; endpoints point at the
// local proxy's receiver.
type LocalPlatform struct {
	repo        store.PushSubscriptionRepository
	permissions PermissionStore
	prompt      Prompter
	receiverURL string

	ids    *utils.UUIDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewLocalPlatform constructs a [LocalPlatform]. receiverURL is the
// externally reachable base URL of the push receiver. A nil prompt grants
// permission without asking.
func NewLocalPlatform(repo store.PushSubscriptionRepository, permissions PermissionStore, prompt Prompter, receiverURL string, logger *logger.Logger) *LocalPlatform {
	if prompt == nil {
		prompt = func(context.Context) (bool, error) { return true, nil }
	}
	return &LocalPlatform{
		repo:        repo,
		permissions: permissions,
		prompt:      prompt,
		receiverURL: strings.TrimRight(receiverURL, "/"),
		ids:         utils.NewUUIDGenerator(),
		now:         time.Now,
		logger:      logger,
	}
}

func (p *LocalPlatform) PermissionState(ctx context.Context) (Permission, error) {
	v, err := p.permissions.PushPermission(ctx)
	if err != nil {
		return PermissionDefault, fmt.Errorf("read permission: %w", err)
	}
	switch Permission(v) {
	case PermissionGranted, PermissionDenied:
		return Permission(v), nil
	default:
		return PermissionDefault, nil
	}
}

// RequestPermission prompts only while the state is default; a granted or
// denied decision sticks.
func (p *LocalPlatform) RequestPermission(ctx context.Context) (Permission, error) {
	state, err := p.PermissionState(ctx)
	if err != nil || state != PermissionDefault {
		return state, err
	}

	granted, err := p.prompt(ctx)
	if err != nil {
		return PermissionDefault, fmt.Errorf("prompt for permission: %w", err)
	}

	state = PermissionDenied
	if granted {
		state = PermissionGranted
	}
	if err = p.permissions.SetPushPermission(ctx, string(state)); err != nil {
		return state, fmt.Errorf("store permission: %w", err)
	}

	p.logger.Info().
		Str("func", "LocalPlatform.RequestPermission").
		Str("permission", string(state)).
		Msg("notification permission decided")
	return state, nil
}

func (p *LocalPlatform) GetSubscription(ctx context.Context) (models.PushSubscription, bool, error) {
	sub, found, err := p.repo.GetActiveSubscription(ctx)
	if err != nil || !found {
		return models.PushSubscription{}, false, err
	}
	return sub.Public(), true, nil
}

func (p *LocalPlatform) Subscribe(ctx context.Context, applicationServerKey string) (models.PushSubscription, error) {
	state, err := p.PermissionState(ctx)
	if err != nil {
		return models.PushSubscription{}, err
	}
	if state != PermissionGranted {
		return models.PushSubscription{}, ErrPermissionDenied
	}

	existing, found, err := p.repo.GetActiveSubscription(ctx)
	if err != nil {
		return models.PushSubscription{}, fmt.Errorf("read subscription: %w", err)
	}
	if found {
		if existing.ApplicationServerKey != applicationServerKey {
			return models.PushSubscription{}, ErrServerKeyMismatch
		}
		return existing.Public(), nil
	}

	sub, err := p.newSubscription(applicationServerKey)
	if err != nil {
		return models.PushSubscription{}, err
	}
	if err = p.repo.SaveSubscription(ctx, sub); err != nil {
		return models.PushSubscription{}, fmt.Errorf("save subscription: %w", err)
	}

	p.logger.Info().
		Str("func", "LocalPlatform.Subscribe").
		Str("endpoint", sub.Endpoint).
		Msg("push subscription created")
	return sub.Public(), nil
}

func (p *LocalPlatform) Unsubscribe(ctx context.Context) (bool, error) {
	existing, found, err := p.repo.GetActiveSubscription(ctx)
	if err != nil {
		return false, fmt.Errorf("read subscription: %w", err)
	}
	if !found {
		return false, nil
	}
	if err = p.repo.DeleteSubscription(ctx, existing.ID); err != nil {
		return false, fmt.Errorf("delete subscription: %w", err)
	}
	return true, nil
}

func (p *LocalPlatform) newSubscription(applicationServerKey string) (models.PlatformSubscription, error) {
	key, err := ecdh.P256().GenerateKey(rand.Reader)
	if err != nil {
		return models.PlatformSubscription{}, fmt.Errorf("generate key pair: %w", err)
	}

	auth := make([]byte, authSecretSize)
	if _, err = rand.Read(auth); err != nil {
		return models.PlatformSubscription{}, fmt.Errorf("generate auth secret: %w", err)
	}

	id := p.ids.Generate()
	return models.PlatformSubscription{
		ID:       id,
		Endpoint: p.receiverURL + EndpointPath + id,
		Keys: models.PushKeys{
			P256dh: base64.RawURLEncoding.EncodeToString(key.PublicKey().Bytes()),
			Auth:   base64.RawURLEncoding.EncodeToString(auth),
		},
		PrivateKey:           key.Bytes(),
		ApplicationServerKey: applicationServerKey,
		CreatedAt:            p.now().UTC(),
	}, nil
}
