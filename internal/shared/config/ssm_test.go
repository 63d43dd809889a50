package config

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSSMSetting_Key tests that the parameter store key is correctly
// constructed, including the leading '/'.
func TestSSMSetting_Key(t *testing.T) {
	env, service, name := "test-env", "test-service", "test-param-name"

	setting := NewSSMSetting(service, name).WithEnvironment(env)

	expectedKey := fmt.Sprintf("/%s/%s/%s", env, service, name)
	expectedValue := uuid.NewString()
	actualValue, err := setting.Load(context.Background(), func(ctx context.Context, key string) (string, error) {
		assert.Equal(t, expectedKey, key)
		return expectedValue, nil
	})

	require.NoError(t, err)
	assert.Equal(t, expectedValue, actualValue)
}

func TestSSMSetting_CachedValue(t *testing.T) {
	expectedValue := uuid.NewString()
	setting := NewSSMSetting("test-service", "test-param-name").WithValue(expectedValue)

	actualValue, err := setting.Load(context.Background(), func(ctx context.Context, key string) (string, error) {
		t.Fatal("lookup should not be called when a value is already set")
		return "", nil
	})

	require.NoError(t, err)
	assert.Equal(t, expectedValue, actualValue)
}

func TestSSMSetting_NoEnvironment(t *testing.T) {
	setting := NewSSMSetting("test-service", "test-param-name")

	_, err := setting.Load(context.Background(), func(ctx context.Context, key string) (string, error) {
		return uuid.NewString(), nil
	})

	assert.ErrorContains(t, err, "environment not set")
}
