package wpsync

import (
	"context"
	"errors"
	"strings"

	"nectar/internal/domain"
	applog "nectar/internal/log"
)

type OutcomeKind string

const (
	OutcomeCreated OutcomeKind = "created"
	OutcomeUpdated OutcomeKind = "updated"
	OutcomeFailed  OutcomeKind = "failed"
)

// Outcome is the tagged result of one sync attempt. It is reported to
// logs only, never persisted.
type Outcome struct {
	Kind       OutcomeKind
	ExternalID int64
	Err        error
}

// RemoteAPI is the slice of the client the engine needs.
type RemoteAPI interface {
	CreateProperty(ctx context.Context, p Payload) (int64, error)
	UpdateProperty(ctx context.Context, externalID int64, p Payload) (int64, error)
}

// PropertyStore persists the remote link after a confirmed remote write.
// It is the only local write this package ever performs.
type PropertyStore interface {
	SetExternalID(id string, externalID int64) error
}

// Engine decides create vs. update and drives mapper, resolver and
// client for one property at a time. The OnProperty* hooks run on the
// Runner so the triggering request never waits on the remote site;
// concurrent attempts for the same record may overlap or reorder.
type Engine struct {
	remote   RemoteAPI
	resolver *Resolver
	store    PropertyStore
	runner   *Runner
}

func NewEngine(remote RemoteAPI, resolver *Resolver, store PropertyStore, runner *Runner) *Engine {
	return &Engine{remote: remote, resolver: resolver, store: store, runner: runner}
}

// OnPropertyCreated schedules a background push of a freshly created
// record. Fire-and-forget: the outcome surfaces in logs only.
func (e *Engine) OnPropertyCreated(p domain.Property) {
	e.runner.Submit(func(ctx context.Context) {
		e.report(p, e.SyncCreated(ctx, p))
	})
}

// OnPropertyUpdated schedules a background push of an edited record.
func (e *Engine) OnPropertyUpdated(p domain.Property) {
	e.runner.Submit(func(ctx context.Context) {
		e.report(p, e.SyncUpdated(ctx, p))
	})
}

// SyncCreated pushes a record that has no remote counterpart yet.
// On success the assigned post id is persisted onto the local record.
// On failure the record keeps its null external id; the next edit
// retries via the update path's create fallback.
func (e *Engine) SyncCreated(ctx context.Context, p domain.Property) Outcome {
	payload, err := e.buildPayload(ctx, p)
	if err != nil {
		return Outcome{Kind: OutcomeFailed, Err: err}
	}
	id, err := e.remote.CreateProperty(ctx, payload)
	if err != nil {
		return Outcome{Kind: OutcomeFailed, Err: err}
	}
	if err := e.store.SetExternalID(p.ID, id); err != nil {
		// The remote post exists but the link was not recorded; the next
		// update will create a duplicate rather than corrupt the record.
		return Outcome{Kind: OutcomeFailed, Err: err}
	}
	return Outcome{Kind: OutcomeCreated, ExternalID: id}
}

// SyncUpdated pushes an edited record. A record that never got linked is
// healed through the create path; a remotely deleted post likewise falls
// back to create, overwriting the dangling link.
func (e *Engine) SyncUpdated(ctx context.Context, p domain.Property) Outcome {
	if p.ExternalID == nil {
		return e.SyncCreated(ctx, p)
	}
	payload, err := e.buildPayload(ctx, p)
	if err != nil {
		return Outcome{Kind: OutcomeFailed, Err: err}
	}
	id, err := e.remote.UpdateProperty(ctx, *p.ExternalID, payload)
	if errors.Is(err, ErrRemoteNotFound) {
		return e.SyncCreated(ctx, p)
	}
	if err != nil {
		return Outcome{Kind: OutcomeFailed, Err: err}
	}
	return Outcome{Kind: OutcomeUpdated, ExternalID: id}
}

func (e *Engine) buildPayload(ctx context.Context, p domain.Property) (Payload, error) {
	payload := BuildPayload(p)
	if cat := strings.TrimSpace(p.Profile.Category); cat != "" {
		id, err := e.resolver.Resolve(ctx, cat)
		if err != nil {
			return Payload{}, err
		}
		payload.ACF.ProfileGroup.CategoryID = id
	}
	return payload, nil
}

func (e *Engine) report(p domain.Property, out Outcome) {
	switch out.Kind {
	case OutcomeFailed:
		applog.Error(nil, "sync.failed", out.Err, map[string]any{"property": p.ID, "title": p.Title})
	default:
		applog.Info(nil, "sync."+string(out.Kind), map[string]any{
			"property": p.ID, "external_id": out.ExternalID,
		})
	}
}
