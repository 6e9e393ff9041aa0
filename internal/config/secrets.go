package config

import (
	"context"
	"fmt"

	"cloud.google.com/go/compute/metadata"
	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"

	"office-experiment/dutyboard/internal/logging"
)

// GetSecret fetches the latest version of a secret from Google Secret Manager.
// The project ID is resolved from the GCE/Cloud Run metadata service.
func GetSecret(ctx context.Context, name string) (string, error) {
	projectID, err := metadata.ProjectIDWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to resolve project ID from metadata service: %w", err)
	}

	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create secret manager client: %w", err)
	}
	defer client.Close()

	resp, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: fmt.Sprintf("projects/%s/secrets/%s/versions/latest", projectID, name),
	})
	if err != nil {
		return "", fmt.Errorf("failed to access secret %s: %w", name, err)
	}

	return string(resp.Payload.Data), nil
}

// secretOrEnv resolves a value from an environment variable first and falls
// back to Secret Manager. Env wins so local development never needs GCP access.
func secretOrEnv(ctx context.Context, envKey, secretName string, lookup func(string) (string, bool)) (string, error) {
	if val, ok := lookup(envKey); ok && val != "" {
		logging.Info("Using value from environment", "key", envKey)
		return val, nil
	}

	logging.Info("Falling back to Secret Manager", "secret", secretName)
	return GetSecret(ctx, secretName)
}
