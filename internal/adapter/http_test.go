// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-web3-uploader/internal/config"
	"github.com/MKhiriev/go-web3-uploader/internal/logger"
	"github.com/MKhiriev/go-web3-uploader/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testCIDv0 = "QmUNLLsPACCz1vLxQVkXqqLX5R1X345qqfHbsf67hvA3Nn"
	testCIDv1 = "bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi"
)

func newTestAdapter(t *testing.T, serverURL string) *httpPinningAdapter {
	t.Helper()
	a, err := NewHTTPPinningAdapter(config.Adapter{
		UploadURL: serverURL + "/v3/files",
		SignURL:   serverURL + "/v3/files/private/download_link",
	}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpPinningAdapter)
}

// ── NewHTTPPinningAdapter ───────────────────────────────────────────────────

func TestNewHTTPPinningAdapter_InvalidEndpoints(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Adapter
	}{
		{name: "empty upload", cfg: config.Adapter{SignURL: "https://api.local/sign"}},
		{name: "relative upload", cfg: config.Adapter{UploadURL: "/v3/files", SignURL: "https://api.local/sign"}},
		{name: "empty sign", cfg: config.Adapter{UploadURL: "https://upload.local/v3/files"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHTTPPinningAdapter(tt.cfg, logger.Nop())
			require.Error(t, err)
		})
	}
}

func TestNewHTTPPinningAdapter_Timeout(t *testing.T) {
	a, err := NewHTTPPinningAdapter(config.Adapter{
		UploadURL:      "https://upload.local/v3/files",
		SignURL:        "https://api.local/sign",
		RequestTimeout: 3 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, a.(*httpPinningAdapter).client.GetClient().Timeout)
}

// ── Fetch ────────────────────────────────────────────────────────────────────

func TestFetch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte("%PDF-1.7 content"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	body, err := a.Fetch(context.Background(), srv.URL+"/a/b/report.pdf")

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7 content"), body)
}

func TestFetch_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Fetch(context.Background(), srv.URL+"/missing.txt")

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
	assert.Equal(t, "Failed to fetch file: 404 Not Found", err.Error())
}

// rawStatusServer answers every request with statusLine written verbatim, so
// tests control the reason phrase.
func rawStatusServer(t *testing.T, statusLine string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hj, ok := w.(http.Hijacker)
		require.True(t, ok)
		conn, buf, err := hj.Hijack()
		require.NoError(t, err)
		defer conn.Close()
		_, _ = buf.WriteString(statusLine + "\r\nContent-Length: 0\r\nConnection: close\r\n\r\n")
		_ = buf.Flush()
	}))
}

func TestFetch_ReasonPhraseFromServer(t *testing.T) {
	tests := []struct {
		name       string
		statusLine string
		wantCode   int
		wantMsg    string
	}{
		{name: "non-standard code", statusLine: "HTTP/1.1 599 Network Connect Timeout", wantCode: 599, wantMsg: "Failed to fetch file: 599 Network Connect Timeout"},
		{name: "custom phrase", statusLine: "HTTP/1.1 404 Nothing Here", wantCode: 404, wantMsg: "Failed to fetch file: 404 Nothing Here"},
		{name: "missing phrase", statusLine: "HTTP/1.1 503", wantCode: 503, wantMsg: "Failed to fetch file: 503 Service Unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := rawStatusServer(t, tt.statusLine)
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.Fetch(context.Background(), srv.URL+"/file.bin")

			var fetchErr *FetchError
			require.ErrorAs(t, err, &fetchErr)
			assert.Equal(t, tt.wantCode, fetchErr.StatusCode)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestFetch_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	a := newTestAdapter(t, srv.URL)
	gone := srv.URL + "/gone.txt"
	srv.Close()

	_, err := a.Fetch(context.Background(), gone)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Zero(t, fetchErr.StatusCode)
	assert.Contains(t, err.Error(), "Failed to fetch file:")
}

func TestFetch_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("x"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Fetch(ctx, srv.URL+"/x")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

// ── Upload ───────────────────────────────────────────────────────────────────

func TestUpload_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v3/files", r.URL.Path)
		assert.Equal(t, "Bearer secret-key", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "private", r.FormValue("network"))
		assert.Equal(t, "report.pdf", r.FormValue("name"))

		f, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		content, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "report.pdf", header.Filename)
		assert.Equal(t, "pdf-bytes", string(content))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"id":"f-1","name":"report.pdf","cid":"` + testCIDv1 + `","size":9,"network":"private"}}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Upload(context.Background(), "secret-key", models.UploadFile{
		Name:    "report.pdf",
		Content: []byte("pdf-bytes"),
		Network: models.PrivateNetwork(time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, testCIDv1, got)
}

func TestUpload_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid key"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Upload(context.Background(), "bad", models.UploadFile{Name: "a.txt", Content: []byte("a"), Network: models.PublicNetwork()})

	var uploadErr *UploadError
	require.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, http.StatusUnauthorized, uploadErr.StatusCode)
	assert.Equal(t, `Pinata upload failed: 401 - {"error":"invalid key"}`, err.Error())
}

func TestUpload_BadResponseBody(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "not json", body: `<html>`},
		{name: "missing cid", body: `{"data":{"id":"x"}}`, wantErr: ErrEmptyCID},
		{name: "garbage cid", body: `{"data":{"cid":"not-a-cid"}}`, wantErr: ErrInvalidCID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.Upload(context.Background(), "key", models.UploadFile{Name: "a", Content: []byte("a"), Network: models.PublicNetwork()})

			var uploadErr *UploadError
			require.ErrorAs(t, err, &uploadErr)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestUpload_AcceptsCIDv0(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"cid":"` + testCIDv0 + `"}}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Upload(context.Background(), "key", models.UploadFile{Name: "file", Content: nil, Network: models.PublicNetwork()})

	require.NoError(t, err)
	assert.Equal(t, testCIDv0, got)
}

// ── CreateSignedURL ──────────────────────────────────────────────────────────

func TestCreateSignedURL_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/files/private/download_link", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

		var req models.SignedURLRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "https://os.mypinata.cloud/files/"+testCIDv1, req.URL)
		assert.Equal(t, int64(3600), req.Expires)
		assert.Equal(t, int64(1700000000), req.Date)
		assert.Equal(t, "GET", req.Method)

		_, _ = w.Write([]byte(`{"data":"https://os.mypinata.cloud/files/signed?X-Signature=abc"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.CreateSignedURL(context.Background(), "key", models.SignedURLRequest{
		URL:     "https://os.mypinata.cloud/files/" + testCIDv1,
		Expires: 3600,
		Date:    1700000000,
		Method:  "GET",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://os.mypinata.cloud/files/signed?X-Signature=abc", got)
}

func TestCreateSignedURL_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("private files disabled\n"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateSignedURL(context.Background(), "key", models.SignedURLRequest{Method: "GET"})

	var signErr *SignError
	require.ErrorAs(t, err, &signErr)
	assert.Equal(t, http.StatusForbidden, signErr.StatusCode)
	assert.Equal(t, "Failed to generate signed URL: 403 - private files disabled", err.Error())
}

func TestCreateSignedURL_EmptyData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":""}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateSignedURL(context.Background(), "key", models.SignedURLRequest{})

	assert.True(t, errors.Is(err, ErrEmptySignedURL))
}
