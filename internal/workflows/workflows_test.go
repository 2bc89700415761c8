package workflows

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/azuretemplatebot/templatebot/internal/dialog"
	"github.com/azuretemplatebot/templatebot/internal/session"
	"github.com/azuretemplatebot/templatebot/internal/template"
)

// fakeGateway is a scripted remote boundary recording every call.
type fakeGateway struct {
	listResourcesErr error
	documents        map[string][]byte
	fetchErr         error
	existing         map[string]bool
	existsErr        error
	locations        []string
	locationsErr     error
	createErr        error
	deleteErr        error
	deployErr        error
	validateErr      error

	calls       []string
	lastPayload template.Payload
}

func (f *fakeGateway) ListResources(ctx context.Context, cred session.Credential) (int, error) {
	f.calls = append(f.calls, "ListResources")
	if f.listResourcesErr != nil {
		return 0, f.listResourcesErr
	}
	return 1, nil
}

func (f *fakeGateway) FetchURL(ctx context.Context, url string) ([]byte, error) {
	f.calls = append(f.calls, "FetchURL "+url)
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	document, ok := f.documents[url]
	if !ok {
		return nil, fmt.Errorf("unexpected status 404 Not Found fetching %s", url)
	}
	return document, nil
}

func (f *fakeGateway) CheckResourceGroupExists(ctx context.Context, cred session.Credential, name string) (bool, error) {
	f.calls = append(f.calls, "CheckResourceGroupExists "+name)
	return f.existing[name], f.existsErr
}

func (f *fakeGateway) ListLocations(ctx context.Context, cred session.Credential) ([]string, error) {
	f.calls = append(f.calls, "ListLocations")
	return f.locations, f.locationsErr
}

func (f *fakeGateway) CreateResourceGroup(ctx context.Context, cred session.Credential, name, location string) error {
	f.calls = append(f.calls, fmt.Sprintf("CreateResourceGroup %s %s", name, location))
	return f.createErr
}

func (f *fakeGateway) DeleteResourceGroup(ctx context.Context, cred session.Credential, name string) error {
	f.calls = append(f.calls, "DeleteResourceGroup "+name)
	return f.deleteErr
}

func (f *fakeGateway) CreateOrUpdateDeployment(ctx context.Context, cred session.Credential, group, name string, payload template.Payload) error {
	f.calls = append(f.calls, fmt.Sprintf("CreateOrUpdateDeployment %s %s", group, name))
	f.lastPayload = payload
	return f.deployErr
}

func (f *fakeGateway) ValidateDeployment(ctx context.Context, cred session.Credential, group, name string, payload template.Payload) error {
	f.calls = append(f.calls, fmt.Sprintf("ValidateDeployment %s %s", group, name))
	f.lastPayload = payload
	return f.validateErr
}

func startAt(t *testing.T, sess *session.Session, gw *fakeGateway, id dialog.WorkflowID) (*dialog.Machine, *dialog.Turn) {
	t.Helper()
	machine := NewMachine(sess, gw)
	turn, err := machine.Start(context.Background(), id, nil)
	require.NoError(t, err)
	return machine, turn
}

func resume(t *testing.T, machine *dialog.Machine, reply string) *dialog.Turn {
	t.Helper()
	turn, err := machine.Resume(context.Background(), reply)
	require.NoError(t, err)
	return turn
}

// levelOf returns the level of the outbound line with the given text.
func levelOf(t *testing.T, turn *dialog.Turn, text string) dialog.Level {
	t.Helper()
	for _, m := range turn.Messages {
		if m.Text == text {
			return m.Level
		}
	}
	t.Fatalf("no outbound line %q", text)
	return dialog.LevelInfo
}
