package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/arkade-os/ledger-assets/internal/config"
	"github.com/arkade-os/ledger-assets/pkg/ledger-lib/asset"
	"github.com/arkade-os/ledger-assets/pkg/ledger-lib/numeric"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestLoadConfigFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "assetctl.yaml")
	err := os.WriteFile(configFile, []byte("db-type: sqlite\nlog-level: 2\ndefault-mintable: Once\n"), 0o600)
	require.NoError(t, err)

	ctx := newContext(t, "--config-file", configFile, "--log-level", "5")
	require.NoError(t, loadConfigFile(ctx))

	require.Equal(t, "sqlite", ctx.String(config.DbType.Name))
	require.Equal(t, "Once", ctx.String(config.DefaultMintable.Name))
	// flags on the command line win over the config file
	require.Equal(t, 5, ctx.Int(config.LogLevel.Name))

	t.Run("missing file", func(t *testing.T) {
		ctx := newContext(t, "--config-file", filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, loadConfigFile(ctx))
	})

	t.Run("no file", func(t *testing.T) {
		ctx := newContext(t)
		require.NoError(t, loadConfigFile(ctx))
		require.Equal(t, "badger", ctx.String(config.DbType.Name))
	})
}

func TestParseAssetType(t *testing.T) {
	fixtures := []struct {
		typ, scale string
		expected   asset.AssetType
	}{
		{numericType, "", asset.NumericType(numeric.Unconstrained())},
		{numericType, "0", asset.NumericType(numeric.Integer())},
		{numericType, "28", asset.NumericType(numeric.Fractional(28))},
		{storeType, "", asset.StoreType()},
	}
	for _, f := range fixtures {
		got, err := parseAssetType(f.typ, f.scale)
		require.NoError(t, err)
		require.Equal(t, f.expected, got)
	}

	for _, f := range [][2]string{
		{numericType, "29"},
		{numericType, "-1"},
		{storeType, "2"},
		{"token", ""},
	} {
		_, err := parseAssetType(f[0], f[1])
		require.Error(t, err, f)
	}
}

func newContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range config.Flags {
		require.NoError(t, f.Apply(set))
	}
	require.NoError(t, set.Parse(args))
	return cli.NewContext(cli.NewApp(), set, nil)
}
