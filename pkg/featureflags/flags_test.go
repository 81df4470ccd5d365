package featureflags

import (
	"context"
	"testing"
)

func TestEnvManager_DefaultApplies(t *testing.T) {
	manager := NewEnvManager("TEST_FEATURE_", map[FeatureFlag]bool{
		DiagnosticsEnabled: true,
	})
	ctx := context.Background()

	if !manager.IsEnabled(ctx, DiagnosticsEnabled) {
		t.Error("flag with a true default should be enabled")
	}
	if manager.IsEnabled(ctx, BackgroundRefreshEnabled) {
		t.Error("flag without a default should be disabled")
	}
}

func TestEnvManager_EnvOverridesDefault(t *testing.T) {
	t.Setenv("TEST_FEATURE_DIAGNOSTICS_ENABLED", "false")
	t.Setenv("TEST_FEATURE_BACKGROUND_REFRESH_ENABLED", "true")

	manager := NewEnvManager("TEST_FEATURE_", map[FeatureFlag]bool{
		DiagnosticsEnabled: true,
	})
	ctx := context.Background()

	if manager.IsEnabled(ctx, DiagnosticsEnabled) {
		t.Error("env var should override the true default")
	}
	if !manager.IsEnabled(ctx, BackgroundRefreshEnabled) {
		t.Error("env var should enable the flag")
	}
}

func TestEnvManager_AcceptedTruthyValues(t *testing.T) {
	for _, value := range []string{"true", "1", "enabled", "TRUE"} {
		t.Setenv("TEST_FEATURE_RATE_LIMIT_ENABLED", value)
		manager := NewEnvManager("TEST_FEATURE_", nil)
		if !manager.IsEnabled(context.Background(), RateLimitEnabled) {
			t.Errorf("value %q should enable the flag", value)
		}
	}
}

func TestEnvManager_SetEnabledOverridesEverything(t *testing.T) {
	t.Setenv("TEST_FEATURE_RATE_LIMIT_ENABLED", "true")

	manager := NewEnvManager("TEST_FEATURE_", nil)
	manager.SetEnabled(RateLimitEnabled, false)

	if manager.IsEnabled(context.Background(), RateLimitEnabled) {
		t.Error("explicit override should win over the env var")
	}
}

func TestStaticManager_Flags(t *testing.T) {
	manager := NewStaticManager(map[FeatureFlag]bool{
		DiagnosticsEnabled: true,
	})
	ctx := context.Background()

	if !manager.IsEnabled(ctx, DiagnosticsEnabled) {
		t.Error("preset flag should be enabled")
	}
	if manager.IsEnabled(ctx, RateLimitEnabled) {
		t.Error("unset flag should be disabled")
	}

	manager.SetEnabled(RateLimitEnabled, true)
	if !manager.IsEnabled(ctx, RateLimitEnabled) {
		t.Error("SetEnabled should flip the flag")
	}
}

func TestGetAllFlags_ReturnsCopy(t *testing.T) {
	manager := NewStaticManager(map[FeatureFlag]bool{DiagnosticsEnabled: true})

	flags := manager.GetAllFlags()
	flags[DiagnosticsEnabled] = false

	if !manager.IsEnabled(context.Background(), DiagnosticsEnabled) {
		t.Error("mutating the returned map should not affect the manager")
	}
}
