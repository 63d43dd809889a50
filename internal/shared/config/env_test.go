package config

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironmentSetting_Get(t *testing.T) {
	key := "COMMUNITIES_TEST_SETTING"

	t.Run("set", func(t *testing.T) {
		expectedValue := uuid.NewString()
		t.Setenv(key, expectedValue)

		value, err := NewEnvironmentSetting(key).Get()
		require.NoError(t, err)
		assert.Equal(t, expectedValue, value)
	})

	t.Run("unset, no default", func(t *testing.T) {
		_, err := NewEnvironmentSetting(key).Get()
		assert.ErrorContains(t, err, key)
	})

	t.Run("unset, with default", func(t *testing.T) {
		value, err := NewEnvironmentSettingWithDefault(key, "fallback").Get()
		require.NoError(t, err)
		assert.Equal(t, "fallback", value)
	})

	t.Run("set value beats default", func(t *testing.T) {
		expectedValue := uuid.NewString()
		t.Setenv(key, expectedValue)

		value, err := NewEnvironmentSettingWithDefault(key, "fallback").Get()
		require.NoError(t, err)
		assert.Equal(t, expectedValue, value)
	})
}

func TestEnvironmentSetting_GetNillable(t *testing.T) {
	key := "COMMUNITIES_TEST_SETTING"

	assert.Nil(t, NewEnvironmentSetting(key).GetNillable())

	expectedValue := uuid.NewString()
	t.Setenv(key, expectedValue)
	value := NewEnvironmentSetting(key).GetNillable()
	require.NotNil(t, value)
	assert.Equal(t, expectedValue, *value)
}

func TestEnvironmentSetting_GetInt(t *testing.T) {
	key := "COMMUNITIES_TEST_SETTING"

	t.Setenv(key, "42")
	value, err := NewEnvironmentSetting(key).GetInt()
	require.NoError(t, err)
	assert.Equal(t, 42, value)

	t.Setenv(key, "not-an-int")
	_, err = NewEnvironmentSetting(key).GetInt()
	assert.ErrorContains(t, err, "not-an-int")
}

func TestEnvironmentSetting_GetBool(t *testing.T) {
	key := "COMMUNITIES_TEST_SETTING"

	t.Setenv(key, "true")
	value, err := NewEnvironmentSetting(key).GetBool()
	require.NoError(t, err)
	assert.True(t, value)

	value, err = NewEnvironmentSettingWithDefault(key+"_UNSET", "false").GetBool()
	require.NoError(t, err)
	assert.False(t, value)
}
