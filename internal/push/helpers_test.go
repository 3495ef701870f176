package push

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-story-keeper/models"
)

// memoryRepo is an in-memory push subscription repository.
type memoryRepo struct {
	mu   sync.Mutex
	subs []models.PlatformSubscription
}

func (r *memoryRepo) SaveSubscription(_ context.Context, sub models.PlatformSubscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs = append(r.subs, sub)
	return nil
}

func (r *memoryRepo) GetActiveSubscription(_ context.Context) (models.PlatformSubscription, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.subs) == 0 {
		return models.PlatformSubscription{}, false, nil
	}
	return r.subs[len(r.subs)-1], true, nil
}

func (r *memoryRepo) GetSubscriptionByID(_ context.Context, id string) (models.PlatformSubscription, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, sub := range r.subs {
		if sub.ID == id {
			return sub, true, nil
		}
	}
	return models.PlatformSubscription{}, false, nil
}

func (r *memoryRepo) DeleteSubscription(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, sub := range r.subs {
		if sub.ID == id {
			r.subs = append(r.subs[:i], r.subs[i+1:]...)
			break
		}
	}
	return nil
}

// memoryPermissions stores the permission decision in a field.
type memoryPermissions struct {
	value string
}

func (p *memoryPermissions) PushPermission(context.Context) (string, error) { return p.value, nil }

func (p *memoryPermissions) SetPushPermission(_ context.Context, v string) error {
	p.value = v
	return nil
}

// recordingDispatcher keeps every dispatched payload.
type recordingDispatcher struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (d *recordingDispatcher) DispatchPush(_ context.Context, data []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.payloads = append(d.payloads, data)
	return nil
}

func (d *recordingDispatcher) received() [][]byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.payloads
}
