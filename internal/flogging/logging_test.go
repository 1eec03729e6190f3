package flogging_test

import (
	"bytes"
	"testing"

	"github.com/KasperOmsK/monadfn/internal/flogging"
	"github.com/stretchr/testify/require"
)

func TestInitFromSpec(t *testing.T) {
	defer flogging.Reset()

	require.Equal(t, "WARNING", flogging.InitFromSpec("warning"))
	require.Equal(t, "WARNING", flogging.GetModuleLevel("anything"))

	require.Equal(t, "INFO", flogging.InitFromSpec("laws=debug:info"))
	require.Equal(t, "DEBUG", flogging.GetModuleLevel("laws"))
	require.Equal(t, "INFO", flogging.GetModuleLevel("other"))
}

func TestInitFromSpec_BadLevelFallsBack(t *testing.T) {
	defer flogging.Reset()

	require.Equal(t, flogging.DefaultLevel(), flogging.InitFromSpec("loud"))
}

func TestSetModuleLevel(t *testing.T) {
	defer flogging.Reset()

	flogging.MustGetLogger("suite.option")
	flogging.MustGetLogger("suite.seq")

	lvl, err := flogging.SetModuleLevel("^suite\\.", "error")
	require.NoError(t, err)
	require.Equal(t, "ERROR", lvl)
	require.Equal(t, "ERROR", flogging.GetModuleLevel("suite.option"))
	require.Equal(t, "ERROR", flogging.GetModuleLevel("suite.seq"))

	_, err = flogging.SetModuleLevel("^suite", "nope")
	require.Error(t, err)

	_, err = flogging.SetModuleLevel("(", "info")
	require.Error(t, err)
}

func TestInitBackend(t *testing.T) {
	defer flogging.Reset()

	var buf bytes.Buffer
	flogging.InitBackend(flogging.SetFormat("%{level} %{message}"), &buf)
	flogging.InitFromSpec("info")

	flogging.MustGetLogger("test").Info("hello")
	require.Equal(t, "INFO hello\n", buf.String())
}
