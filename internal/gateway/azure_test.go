package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchURLReturnsTheBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repo/azuredeploy.json", r.URL.Path)
		_, _ = w.Write([]byte(`{"resources": []}`))
	}))
	defer server.Close()

	body, err := NewAzure().FetchURL(context.Background(), server.URL+"/repo/azuredeploy.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"resources": []}`, string(body))
}

func TestFetchURLRejectsNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err := NewAzure().FetchURL(context.Background(), server.URL+"/missing.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 404")
}

func TestReason(t *testing.T) {
	plain := errors.New("connection refused")
	assert.Equal(t, "connection refused", Reason(plain))

	respErr := &azcore.ResponseError{ErrorCode: "DeploymentFailed", StatusCode: 400}
	assert.Equal(t, "DeploymentFailed (status 400)", Reason(respErr))
}
