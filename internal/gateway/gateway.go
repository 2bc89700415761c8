// Package gateway is the boundary to everything remote: credential
// verification, template retrieval and the resource management API. Every
// call is fire-once with no implicit retry; failures come back as wrapped
// errors, never panics.
package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"

	"github.com/azuretemplatebot/templatebot/internal/session"
	"github.com/azuretemplatebot/templatebot/internal/template"
)

type Gateway interface {
	// ListResources performs a read-only list with the given credential and
	// returns the number of visible resources. Used to verify credentials.
	ListResources(ctx context.Context, cred session.Credential) (int, error)

	// FetchURL retrieves a document over HTTP; a non-2xx status is an error.
	FetchURL(ctx context.Context, url string) ([]byte, error)

	CheckResourceGroupExists(ctx context.Context, cred session.Credential, name string) (bool, error)
	ListLocations(ctx context.Context, cred session.Credential) ([]string, error)
	CreateResourceGroup(ctx context.Context, cred session.Credential, name, location string) error
	DeleteResourceGroup(ctx context.Context, cred session.Credential, name string) error

	CreateOrUpdateDeployment(ctx context.Context, cred session.Credential, group, name string, payload template.Payload) error
	ValidateDeployment(ctx context.Context, cred session.Credential, group, name string, payload template.Payload) error
}

// Reason extracts a human-readable cause from a gateway error, unwrapping
// the resource manager's error envelope when present.
func Reason(err error) string {
	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) && respErr.ErrorCode != "" {
		return fmt.Sprintf("%s (status %d)", respErr.ErrorCode, respErr.StatusCode)
	}
	return err.Error()
}
