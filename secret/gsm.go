package secret

import (
	"context"
	"fmt"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	secretmanagerpb "cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"
)

type (
	secretVersionAccessor interface {
		AccessSecretVersion(context.Context, *secretmanagerpb.AccessSecretVersionRequest, ...gax.CallOption) (*secretmanagerpb.AccessSecretVersionResponse, error)
		Close() error
	}

	GoogleSecretManager struct {
		projectID string
		client    secretVersionAccessor
	}
)

var _ Source = (*GoogleSecretManager)(nil)

// ResourcePath names the latest version of secret name in project.
func ResourcePath(project, name string) string {
	return fmt.Sprintf("projects/%s/secrets/%s/versions/latest", project, name)
}

// NewGoogleSecretManager relies on Application Default Credentials unless
// opts say otherwise.
func NewGoogleSecretManager(ctx context.Context, projectID string, opts ...option.ClientOption) (*GoogleSecretManager, error) {
	c, err := secretmanager.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize google secret manager client: %w", err)
	}

	return &GoogleSecretManager{client: c, projectID: projectID}, nil
}

// Get returns RPC errors as they come so their status codes survive.
func (m *GoogleSecretManager) Get(ctx context.Context, name string) (Secret, error) {
	accessRequest := &secretmanagerpb.AccessSecretVersionRequest{
		Name: ResourcePath(m.projectID, name),
	}

	r, err := m.client.AccessSecretVersion(ctx, accessRequest)
	if err != nil {
		return nil, err
	}

	return r.GetPayload().GetData(), nil
}

func (m *GoogleSecretManager) Close() { _ = m.client.Close() }
