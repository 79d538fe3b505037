package wpsync

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nectar/internal/domain"
)

type fakeRemote struct {
	createID   int64
	createErr  error
	updateID   int64
	updateErr  error
	creates    int
	updates    int
	lastTarget int64
	lastBody   Payload
}

func (f *fakeRemote) CreateProperty(ctx context.Context, p Payload) (int64, error) {
	f.creates++
	f.lastBody = p
	if f.createErr != nil {
		return 0, f.createErr
	}
	return f.createID, nil
}

func (f *fakeRemote) UpdateProperty(ctx context.Context, externalID int64, p Payload) (int64, error) {
	f.updates++
	f.lastTarget = externalID
	f.lastBody = p
	if f.updateErr != nil {
		return 0, f.updateErr
	}
	if f.updateID != 0 {
		return f.updateID, nil
	}
	return externalID, nil
}

type fakeStore struct {
	links map[string]int64
	err   error
}

func (f *fakeStore) SetExternalID(id string, externalID int64) error {
	if f.err != nil {
		return f.err
	}
	if f.links == nil {
		f.links = map[string]int64{}
	}
	f.links[id] = externalID
	return nil
}

func newTestEngine(remote *fakeRemote, store *fakeStore, api CategoryAPI) *Engine {
	if api == nil {
		api = &fakeCategoryAPI{}
	}
	return NewEngine(remote, NewResolver(api, NewMemoryCache()), store, NewRunner(time.Second))
}

func linked(id int64) domain.Property {
	p := sampleProperty()
	p.ExternalID = &id
	return p
}

func TestSyncCreatedPersistsAssignedID(t *testing.T) {
	remote := &fakeRemote{createID: 42}
	store := &fakeStore{}
	e := newTestEngine(remote, store, nil)

	out := e.SyncCreated(context.Background(), sampleProperty())
	assert.Equal(t, OutcomeCreated, out.Kind)
	assert.Equal(t, int64(42), out.ExternalID)
	assert.Equal(t, int64(42), store.links["p-1"])
}

func TestSyncCreatedFailureLeavesRecordUnlinked(t *testing.T) {
	remote := &fakeRemote{createErr: &RemoteError{Status: 500, Body: "down"}}
	store := &fakeStore{}
	e := newTestEngine(remote, store, nil)

	out := e.SyncCreated(context.Background(), sampleProperty())
	assert.Equal(t, OutcomeFailed, out.Kind)
	assert.Error(t, out.Err)
	assert.Empty(t, store.links)
}

func TestSyncCreatedPersistFailureIsReported(t *testing.T) {
	remote := &fakeRemote{createID: 42}
	store := &fakeStore{err: errors.New("disk full")}
	e := newTestEngine(remote, store, nil)

	out := e.SyncCreated(context.Background(), sampleProperty())
	assert.Equal(t, OutcomeFailed, out.Kind)
}

func TestSyncUpdatedTargetsLinkedPost(t *testing.T) {
	remote := &fakeRemote{}
	store := &fakeStore{}
	e := newTestEngine(remote, store, nil)

	out := e.SyncUpdated(context.Background(), linked(42))
	assert.Equal(t, OutcomeUpdated, out.Kind)
	assert.Equal(t, int64(42), out.ExternalID)
	assert.Equal(t, int64(42), remote.lastTarget)
	assert.Zero(t, remote.creates)
}

func TestSyncUpdatedUnlinkedDelegatesToCreate(t *testing.T) {
	remote := &fakeRemote{createID: 8}
	store := &fakeStore{}
	e := newTestEngine(remote, store, nil)

	out := e.SyncUpdated(context.Background(), sampleProperty())
	assert.Equal(t, OutcomeCreated, out.Kind)
	assert.Zero(t, remote.updates)
	assert.Equal(t, int64(8), store.links["p-1"])
}

func TestSyncUpdatedRecreatesDeletedPost(t *testing.T) {
	remote := &fakeRemote{updateErr: ErrRemoteNotFound, createID: 99}
	store := &fakeStore{}
	e := newTestEngine(remote, store, nil)

	out := e.SyncUpdated(context.Background(), linked(42))
	assert.Equal(t, OutcomeCreated, out.Kind)
	assert.Equal(t, int64(99), out.ExternalID)
	assert.Equal(t, 1, remote.updates)
	assert.Equal(t, 1, remote.creates)
	assert.Equal(t, int64(99), store.links["p-1"], "dangling link is overwritten")
}

func TestSyncUpdatedRemoteErrorIsTerminal(t *testing.T) {
	remote := &fakeRemote{updateErr: &RemoteError{Status: 502, Body: "bad gateway"}}
	store := &fakeStore{}
	e := newTestEngine(remote, store, nil)

	out := e.SyncUpdated(context.Background(), linked(42))
	assert.Equal(t, OutcomeFailed, out.Kind)
	assert.Zero(t, remote.creates, "only a 404 falls back to create")
	assert.Empty(t, store.links)
}

func TestEngineResolvesProfileCategory(t *testing.T) {
	remote := &fakeRemote{createID: 5}
	api := &fakeCategoryAPI{cats: []Category{{ID: 11, Name: "Student Lets"}}}
	e := newTestEngine(remote, &fakeStore{}, api)

	p := sampleProperty()
	p.Profile.Category = "student lets"
	out := e.SyncCreated(context.Background(), p)
	require.Equal(t, OutcomeCreated, out.Kind)
	assert.Equal(t, int64(11), remote.lastBody.ACF.ProfileGroup.CategoryID)
}

func TestEngineCategoryFailureFailsTheAttempt(t *testing.T) {
	remote := &fakeRemote{createID: 5}
	api := &fakeCategoryAPI{listErr: errors.New("remote down")}
	store := &fakeStore{}
	e := newTestEngine(remote, store, api)

	p := sampleProperty()
	p.Profile.Category = "student lets"
	out := e.SyncCreated(context.Background(), p)
	assert.Equal(t, OutcomeFailed, out.Kind)
	assert.Zero(t, remote.creates, "no post is written with an unresolved category")
	assert.Empty(t, store.links)
}

func TestHooksRunInBackground(t *testing.T) {
	remote := &fakeRemote{createID: 42}
	store := &fakeStore{}
	runner := NewRunner(time.Second)
	e := NewEngine(remote, NewResolver(&fakeCategoryAPI{}, NewMemoryCache()), store, runner)

	e.OnPropertyCreated(sampleProperty())
	runner.Wait()

	assert.Equal(t, int64(42), store.links["p-1"])
}
