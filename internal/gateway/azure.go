package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"

	"github.com/azuretemplatebot/templatebot/internal/session"
	"github.com/azuretemplatebot/templatebot/internal/template"
)

type azureGateway struct {
	httpClient *http.Client
}

// NewAzure returns a Gateway backed by the Azure Resource Manager API.
// Credentials arrive per call: each conversation carries its own service
// principal, so there is no client state to share.
func NewAzure() Gateway {
	return &azureGateway{httpClient: http.DefaultClient}
}

func (g *azureGateway) token(cred session.Credential) (azcore.TokenCredential, error) {
	tokenCred, err := azidentity.NewClientSecretCredential(cred.TenantID, cred.ClientID, cred.ClientSecret, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build service principal credential: %w", err)
	}
	return tokenCred, nil
}

func (g *azureGateway) ListResources(ctx context.Context, cred session.Credential) (int, error) {
	tokenCred, err := g.token(cred)
	if err != nil {
		return 0, err
	}
	client, err := armresources.NewClient(cred.SubscriptionID, tokenCred, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create resources client: %w", err)
	}

	count := 0
	pager := client.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to list resources: %w", err)
		}
		count += len(page.Value)
	}
	return count, nil
}

func (g *azureGateway) FetchURL(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("unexpected status %s fetching %s", resp.Status, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", url, err)
	}
	return body, nil
}

func (g *azureGateway) CheckResourceGroupExists(ctx context.Context, cred session.Credential, name string) (bool, error) {
	client, err := g.resourceGroupsClient(cred)
	if err != nil {
		return false, err
	}
	resp, err := client.CheckExistence(ctx, name, nil)
	if err != nil {
		return false, fmt.Errorf("failed to check if resource group exists: %w", err)
	}
	return resp.Success, nil
}

func (g *azureGateway) ListLocations(ctx context.Context, cred session.Credential) ([]string, error) {
	tokenCred, err := g.token(cred)
	if err != nil {
		return nil, err
	}
	client, err := armsubscriptions.NewClient(tokenCred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscriptions client: %w", err)
	}

	var locations []string
	pager := client.NewListLocationsPager(cred.SubscriptionID, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list locations: %w", err)
		}
		for _, location := range page.Value {
			if location.Name != nil {
				locations = append(locations, *location.Name)
			}
		}
	}
	return locations, nil
}

func (g *azureGateway) CreateResourceGroup(ctx context.Context, cred session.Credential, name, location string) error {
	client, err := g.resourceGroupsClient(cred)
	if err != nil {
		return err
	}
	_, err = client.CreateOrUpdate(ctx, name, armresources.ResourceGroup{
		Location: to.Ptr(location),
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to create resource group: %w", err)
	}
	return nil
}

func (g *azureGateway) DeleteResourceGroup(ctx context.Context, cred session.Credential, name string) error {
	client, err := g.resourceGroupsClient(cred)
	if err != nil {
		return err
	}
	poller, err := client.BeginDelete(ctx, name, nil)
	if err != nil {
		return fmt.Errorf("failed to delete resource group: %w", err)
	}
	if _, err = poller.PollUntilDone(ctx, nil); err != nil {
		return fmt.Errorf("failed to delete resource group: %w", err)
	}
	return nil
}

func (g *azureGateway) CreateOrUpdateDeployment(ctx context.Context, cred session.Credential, group, name string, payload template.Payload) error {
	client, err := g.deploymentsClient(cred)
	if err != nil {
		return err
	}
	poller, err := client.BeginCreateOrUpdate(ctx, group, name, deploymentFromPayload(payload), nil)
	if err != nil {
		return fmt.Errorf("failed to create deployment: %w", err)
	}
	if _, err = poller.PollUntilDone(ctx, nil); err != nil {
		return fmt.Errorf("failed to create deployment: %w", err)
	}
	return nil
}

func (g *azureGateway) ValidateDeployment(ctx context.Context, cred session.Credential, group, name string, payload template.Payload) error {
	client, err := g.deploymentsClient(cred)
	if err != nil {
		return err
	}
	poller, err := client.BeginValidate(ctx, group, name, deploymentFromPayload(payload), nil)
	if err != nil {
		return fmt.Errorf("failed to validate deployment: %w", err)
	}
	if _, err = poller.PollUntilDone(ctx, nil); err != nil {
		return fmt.Errorf("failed to validate deployment: %w", err)
	}
	return nil
}

func (g *azureGateway) resourceGroupsClient(cred session.Credential) (*armresources.ResourceGroupsClient, error) {
	tokenCred, err := g.token(cred)
	if err != nil {
		return nil, err
	}
	client, err := armresources.NewResourceGroupsClient(cred.SubscriptionID, tokenCred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource groups client: %w", err)
	}
	return client, nil
}

func (g *azureGateway) deploymentsClient(cred session.Credential) (*armresources.DeploymentsClient, error) {
	tokenCred, err := g.token(cred)
	if err != nil {
		return nil, err
	}
	client, err := armresources.NewDeploymentsClient(cred.SubscriptionID, tokenCred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create deployments client: %w", err)
	}
	return client, nil
}

func deploymentFromPayload(payload template.Payload) armresources.Deployment {
	mode := armresources.DeploymentModeIncremental
	if payload.Mode == "complete" {
		mode = armresources.DeploymentModeComplete
	}
	return armresources.Deployment{
		Properties: &armresources.DeploymentProperties{
			Mode:       to.Ptr(mode),
			Template:   payload.Template,
			Parameters: payload.Parameters,
		},
	}
}
