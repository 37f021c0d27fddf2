// Copyright
// SPDX-License-Identifier: MIT
package main

import (
    "bytes"
    "os"
    "path/filepath"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "headroom/internal/config"
)

func execute(t *testing.T, args ...string) (string, string, error) {
    t.Helper()
    var out, errOut bytes.Buffer
    root := newRootCmd()
    root.SetOut(&out)
    root.SetErr(&errOut)
    root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
    err := root.Execute()
    return out.String(), errOut.String(), err
}

func TestSimulateMatchesGolden(t *testing.T) {
    for _, name := range []string{"scenario", "tolerance"} {
        t.Run(name, func(t *testing.T) {
            trace := filepath.Join("testdata", name+".yaml")
            golden := filepath.Join("testdata", name+".golden")
            out, _, err := execute(t, "simulate", trace, "--expect", golden)
            require.NoError(t, err)
            assert.Contains(t, out, "ok "+trace)
        })
    }
}

func TestSimulatePrintsSteps(t *testing.T) {
    out, _, err := execute(t, "simulate", filepath.Join("testdata", "scenario.yaml"))
    require.NoError(t, err)
    want, err := os.ReadFile(filepath.Join("testdata", "scenario.golden"))
    require.NoError(t, err)
    assert.Equal(t, string(want), out)
}

func TestSimulateMismatchShowsDiff(t *testing.T) {
    bad := filepath.Join(t.TempDir(), "bad.golden")
    require.NoError(t, os.WriteFile(bad, []byte("  0 mount  {unfixed 0 h=1 animated=false}\n"), 0o644))
    _, stderr, err := execute(t, "simulate", filepath.Join("testdata", "scenario.yaml"), "--expect", bad)
    require.ErrorIs(t, err, errTraceMismatch)
    assert.Contains(t, stderr, "EXPECTED (-) vs ACTUAL (+)")
    assert.Contains(t, stderr, "unpin-snap")
}

func TestSimulateUpdate(t *testing.T) {
    golden := filepath.Join(t.TempDir(), "new.golden")
    _, _, err := execute(t, "simulate", filepath.Join("testdata", "tolerance.yaml"), "--expect", golden, "--update")
    require.NoError(t, err)
    got, err := os.ReadFile(golden)
    require.NoError(t, err)
    want, err := os.ReadFile(filepath.Join("testdata", "tolerance.golden"))
    require.NoError(t, err)
    assert.Equal(t, string(want), string(got))
}

func TestInitWritesDefaults(t *testing.T) {
    path := filepath.Join(t.TempDir(), ".headroom", "config.yaml")
    root := newRootCmd()
    root.SetOut(&bytes.Buffer{})
    root.SetArgs([]string{"--config", path, "init"})
    require.NoError(t, root.Execute())

    c, err := config.Load(path)
    require.NoError(t, err)
    assert.Equal(t, config.Default(), *c)

    root = newRootCmd()
    root.SetOut(&bytes.Buffer{})
    root.SetErr(&bytes.Buffer{})
    root.SetArgs([]string{"--config", path, "init"})
    assert.Error(t, root.Execute())
}

func TestSimulateRejectsBadConfig(t *testing.T) {
    path := filepath.Join(t.TempDir(), "c.yaml")
    require.NoError(t, os.WriteFile(path, []byte("header:\n  up_tolerance: -1\n"), 0o644))
    root := newRootCmd()
    root.SetOut(&bytes.Buffer{})
    root.SetErr(&bytes.Buffer{})
    root.SetArgs([]string{"--config", path, "simulate", filepath.Join("testdata", "scenario.yaml")})
    assert.ErrorIs(t, root.Execute(), config.ErrInvalidTolerance)
}
