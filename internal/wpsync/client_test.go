package wpsync

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "sync-bot", "app-pass", 5*time.Second)
}

func TestCreatePropertyParsesID(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody Payload
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		user, pass, _ := r.BasicAuth()
		gotAuth = user + ":" + pass
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 42}`))
	})

	id, err := c.CreateProperty(context.Background(), Payload{Title: "t", Status: "publish"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, "sync-bot:app-pass", gotAuth)
	assert.Equal(t, "/wp-json/wp/v2/properties", gotPath)
	assert.Equal(t, "publish", gotBody.Status)
}

func TestCreatePropertyRemoteError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"db gone"}`))
	})

	_, err := c.CreateProperty(context.Background(), Payload{})
	var re *RemoteError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, http.StatusInternalServerError, re.Status)
	assert.Contains(t, re.Body, "db gone")
}

func TestUpdatePropertyNotFound(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json/wp/v2/properties/9", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.UpdateProperty(context.Background(), 9, Payload{})
	assert.ErrorIs(t, err, ErrRemoteNotFound)
	assert.True(t, IsNotFound(err))
}

func TestUpdatePropertyEmptyBodyKeepsTargetID(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	id, err := c.UpdateProperty(context.Background(), 17, Payload{})
	require.NoError(t, err)
	assert.Equal(t, int64(17), id)
}

func TestCreateCategoryTermExistsIsSuccess(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":"term_exists","message":"A term with the name provided already exists.","data":{"term_id":23}}`))
	})

	id, err := c.CreateCategory(context.Background(), "Student Lets")
	require.NoError(t, err)
	assert.Equal(t, int64(23), id)
}

func TestListCategories(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		_, _ = w.Write([]byte(`[{"id":1,"name":"Lettings"},{"id":2,"name":"Sales"}]`))
	})

	cats, err := c.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "Sales", cats[1].Name)
}
