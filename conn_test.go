package braket

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConn_Defaults(t *testing.T) {
	conn, err := Dial(WithApiToken(testToken))
	require.NoError(t, err)

	assert.Equal(t, DefaultUrl, conn.dopts.url)
	assert.Equal(t, DefaultRetries, conn.dopts.retries)
	assert.Equal(t, DefaultTimeout, conn.dopts.timeout)
}

func TestConn_RetriesServerErrors(t *testing.T) {
	var attempts atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	conn, err := Dial(WithApiToken(testToken), WithApiUrl(srv.URL), WithRetries(3), WithTimeout(5*time.Second))
	require.NoError(t, err)

	resp, err := conn.get(context.Background(), "devices", "")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(3), attempts.Load())
}

func TestConn_RetriesExhausted(t *testing.T) {
	var attempts atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	conn, err := Dial(WithApiToken(testToken), WithApiUrl(srv.URL), WithRetries(2))
	require.NoError(t, err)

	_, err = conn.get(context.Background(), "devices", "")

	var apiErr ApiErr
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, int64(2), attempts.Load())
}

func TestConn_UnauthorizedIsPermanent(t *testing.T) {
	var attempts atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	conn, err := Dial(WithApiToken("wrong"), WithApiUrl(srv.URL), WithRetries(5))
	require.NoError(t, err)

	_, err = conn.get(context.Background(), "devices", "")

	var credErr CredentialsErr
	require.ErrorAs(t, err, &credErr)
	assert.Equal(t, int64(1), attempts.Load())
}

func TestConn_ClientErrorIsPermanent(t *testing.T) {
	var attempts atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	conn, err := Dial(WithApiToken(testToken), WithApiUrl(srv.URL), WithRetries(5))
	require.NoError(t, err)

	_, err = conn.get(context.Background(), "devices", "")

	var apiErr ApiErr
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, int64(1), attempts.Load())
}

func TestConn_SetsAuthHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	conn, err := Dial(WithApiToken(testToken), WithApiUrl(srv.URL))
	require.NoError(t, err)

	resp, err := conn.get(context.Background(), "devices", "?client=tests")
	require.NoError(t, err)
	resp.Body.Close()
}
