package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/lixenwraith/ballpit/camera"
	"github.com/lixenwraith/ballpit/parameter"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvContactURL, "")
	t.Setenv(EnvCount, "")
	t.Setenv(EnvDebug, "")
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ballpit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
simulation:
  count: 80
  gravity: 0
  colors: ["#112233", "#445566"]
render:
  frame_interval: 33ms
contact:
  url: https://relay.example.com/fn
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.Simulation.Count = 80
	want.Simulation.Gravity = 0
	want.Simulation.Colors = []string{"#112233", "#445566"}
	want.Render.FrameInterval = 33 * time.Millisecond
	want.Contact.URL = "https://relay.example.com/fn"

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	clearEnv(t)
	_, err := Load(writeConfig(t, "simulation: [unclosed"))
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvContactURL, "https://env.example.com")
	t.Setenv(EnvCount, "12")
	t.Setenv(EnvDebug, "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.Contact.URL)
	assert.Equal(t, 12, cfg.Simulation.Count)
	assert.True(t, cfg.Log.Debug)

	t.Setenv(EnvCount, "many")
	_, err = Load("")
	assert.ErrorContains(t, err, EnvCount)
}

func TestNormalize(t *testing.T) {
	cfg := Default()
	cfg.Simulation.Count = 0
	cfg.Simulation.MinSize, cfg.Simulation.MaxSize = 2, 1
	cfg.Simulation.Friction = 1.5
	cfg.Simulation.Colors = []string{"#FF0000", "not-a-color"}

	warn := cfg.Normalize()

	assert.Equal(t, 1, cfg.Simulation.Count)
	assert.Equal(t, 1.0, cfg.Simulation.MinSize)
	assert.Equal(t, 2.0, cfg.Simulation.MaxSize)
	assert.Equal(t, 1.0, cfg.Simulation.Friction)
	assert.Len(t, warn, 5)
	assert.Contains(t, warn, "simulation.colors: fewer than 2 usable colors, recoloring disabled")
	assert.False(t, cfg.Simulation.Palette().Valid())
}

func TestNormalizeDefaultsClean(t *testing.T) {
	assert.Empty(t, Default().Normalize())
}

func TestSpheresConversion(t *testing.T) {
	cfg := Default()
	cfg.Simulation.Count = 7
	cfg.Lights.CursorLightColor = "#00FF00"
	cfg.Lights.AmbientColor = "bogus"

	sc := cfg.Spheres()
	assert.Equal(t, 7, sc.Simulation.Count)
	assert.Equal(t, 3, sc.Palette.Len())
	assert.InDelta(t, 1.0, sc.CursorLightColor.G, 1e-9)
	assert.InDelta(t, 1.0, sc.AmbientColor.R, 1e-9, "invalid color keeps the default")
}

func TestCameraApply(t *testing.T) {
	cam := camera.New()
	CameraConfig{Fov: 40, Distance: 30, MaxAspect: 2}.Apply(cam)
	cam.Resize(200, 100)

	assert.Equal(t, 40.0, cam.Fov)
	assert.Equal(t, 30.0, cam.Position.Z())
	assert.Equal(t, parameter.CameraNear, cam.Near)
}

func TestWatcherReportsSettledWrites(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := writeConfig(t, "simulation:\n  count: 10\n")
	w, err := NewWatcher(path, 20*time.Millisecond, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("simulation:\n  count: 20\n"), 0o644))
	}
	// Writes to siblings are ignored
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), "other.yaml"), []byte("x"), 0o644))

	select {
	case <-w.Changes():
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	require.NoError(t, <-done)
}
