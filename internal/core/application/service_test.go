package application_test

import (
	"context"
	"testing"

	"github.com/arkade-os/ledger-assets/internal/core/application"
	"github.com/arkade-os/ledger-assets/internal/infrastructure/db"
	"github.com/arkade-os/ledger-assets/pkg/errors"
	"github.com/arkade-os/ledger-assets/pkg/ledger-lib/asset"
	"github.com/arkade-os/ledger-assets/pkg/ledger-lib/numeric"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

const (
	alice = "ed0120CE7FA46C9DCE7EA4B125E2E36BDB63EA33073E7590AC92816AE1E861B7048B03@wonderland"
	bob   = "e701210279BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798@garden"

	definitionsPayload = `[
		{"id":"rose#wonderland","type":{"Numeric":{"scale":2}},"mintable":"Infinitely","owned_by":"` + alice + `","total_quantity":"15.50"},
		{"id":"tulip#garden","type":"Store","mintable":"Once","owned_by":"` + bob + `"}
	]`

	assetsPayload = `[
		{"id":"rose##` + alice + `","value":{"Numeric":"12.5"}},
		{"id":"rose#wonderland#` + bob + `","value":{"Numeric":"3"}},
		{"id":"tulip##` + bob + `","value":{"Store":{"color":"red"}}}
	]`
)

func TestMirrorDefinitions(t *testing.T) {
	svc := newTestService(t, asset.MintableInfinitely)
	ctx := context.Background()

	count, err := svc.MirrorDefinitions(ctx, []byte(definitionsPayload))
	require.Nil(t, err)
	require.Equal(t, 2, count)

	def, err := svc.GetDefinition(ctx, "rose#wonderland")
	require.Nil(t, err)
	require.Equal(t, alice, def.OwnedBy().String())
	require.Equal(t, "15.50", def.TotalQuantity().String())

	all, err := svc.ListDefinitions(ctx, "")
	require.Nil(t, err)
	require.Len(t, all, 2)

	garden, err := svc.ListDefinitions(ctx, "garden")
	require.Nil(t, err)
	require.Len(t, garden, 1)
	require.Equal(t, asset.MintableOnce, garden[0].Mintable())

	t.Run("invalid", func(t *testing.T) {
		fixtures := []struct {
			name    string
			payload string
			code    errors.Code[errors.ValueMetadata]
		}{
			{"malformed json", `[{"id":`, errors.VALUE_ERROR},
			{"not an array", `{"id":"lily#garden"}`, errors.VALUE_ERROR},
			{"missing owner", `[
				{"id":"lily#garden","type":"Store","mintable":"Once","owned_by":"` + bob + `"},
				{"id":"iris#garden","type":"Store","mintable":"Once"}
			]`, errors.VALUE_ERROR},
		}
		for _, f := range fixtures {
			t.Run(f.name, func(t *testing.T) {
				count, err := svc.MirrorDefinitions(ctx, []byte(f.payload))
				require.NotNil(t, err)
				require.True(t, f.code.Is(err))
				require.Equal(t, -1, count)
			})
		}

		// a rejected batch stores nothing
		all, err := svc.ListDefinitions(ctx, "garden")
		require.Nil(t, err)
		require.Len(t, all, 1)

		_, err = svc.MirrorDefinitions(ctx, []byte(`[
			{"id":"lily","type":"Store","mintable":"Once","owned_by":"`+bob+`"}
		]`))
		require.True(t, errors.PARSE_ERROR.Is(err))
	})

	t.Run("lookup errors", func(t *testing.T) {
		_, err := svc.GetDefinition(ctx, "lily#garden")
		require.NotNil(t, err)
		require.True(t, errors.NOT_FOUND.Is(err))
		require.Equal(t, map[string]string{"id": "lily#garden"}, err.Metadata())

		_, err = svc.GetDefinition(ctx, "lily")
		require.True(t, errors.PARSE_ERROR.Is(err))

		_, err = svc.ListDefinitions(ctx, "gar#den")
		require.True(t, errors.PARSE_ERROR.Is(err))
	})
}

func TestMirrorAssets(t *testing.T) {
	svc := newTestService(t, asset.MintableInfinitely)
	ctx := context.Background()

	count, err := svc.MirrorAssets(ctx, []byte(assetsPayload))
	require.Nil(t, err)
	require.Equal(t, 3, count)

	// the full form resolves to the canonical shorthand
	a, err := svc.GetAsset(ctx, "rose#wonderland#"+alice)
	require.Nil(t, err)
	q, qerr := a.Quantity()
	require.NoError(t, qerr)
	require.Equal(t, "12.5", q.String())

	store, err := svc.GetAsset(ctx, "tulip##"+bob)
	require.Nil(t, err)
	_, serr := store.Store()
	require.True(t, errors.UNSUPPORTED_OPERATION.Is(serr))

	byAccount, err := svc.ListAssets(ctx, application.AssetFilter{AccountId: bob})
	require.Nil(t, err)
	require.Len(t, byAccount, 2)

	byDefinition, err := svc.ListAssets(
		ctx, application.AssetFilter{DefinitionId: "rose#wonderland"},
	)
	require.Nil(t, err)
	require.Len(t, byDefinition, 2)

	t.Run("invalid", func(t *testing.T) {
		_, err := svc.ListAssets(ctx, application.AssetFilter{})
		require.True(t, errors.VALUE_ERROR.Is(err))

		_, err = svc.ListAssets(
			ctx, application.AssetFilter{AccountId: bob, DefinitionId: "rose#wonderland"},
		)
		require.True(t, errors.VALUE_ERROR.Is(err))

		_, err = svc.ListAssets(ctx, application.AssetFilter{AccountId: "bob"})
		require.True(t, errors.PARSE_ERROR.Is(err))

		_, err = svc.GetAsset(ctx, "lily##"+alice)
		require.True(t, errors.NOT_FOUND.Is(err))

		count, err := svc.MirrorAssets(ctx, []byte(`[
			{"id":"lily##`+alice+`","value":{"Numeric":"1"}},
			{"id":"iris##`+alice+`","value":{"Numeric":"-1"}}
		]`))
		require.True(t, errors.VALUE_ERROR.Is(err))
		require.Equal(t, -1, count)

		_, err = svc.GetAsset(ctx, "lily##"+alice)
		require.True(t, errors.NOT_FOUND.Is(err))
	})
}

func TestNewDefinition(t *testing.T) {
	svc := newTestService(t, asset.MintableOnce)
	numericType := asset.NumericType(numeric.Integer())

	def, err := svc.NewDefinition(application.NewDefinitionRequest{
		Id: "rose#wonderland", Type: numericType,
	})
	require.Nil(t, err)
	require.Equal(t, asset.MintableOnce, def.Mintable())
	_, ok := def.Logo()
	require.False(t, ok)

	not := asset.MintableNot
	def, err = svc.NewDefinition(application.NewDefinitionRequest{
		Id:       "rose#wonderland",
		Type:     numericType,
		Mintable: &not,
		Logo:     "/ipfs/QmQqzMTavQgT4f4T5v6PWBp7XNKtoPmC9jvn12WPT3gkSE",
	})
	require.Nil(t, err)
	require.Equal(t, asset.MintableNot, def.Mintable())
	_, ok = def.Logo()
	require.True(t, ok)

	_, err = svc.NewDefinition(application.NewDefinitionRequest{
		Id: "rose#wonderland", Type: numericType, Logo: "/ipfs/x",
	})
	require.True(t, errors.VALUE_ERROR.Is(err))
	require.True(t, errors.PARSE_ERROR.Is(err))

	_, err = svc.NewDefinition(application.NewDefinitionRequest{Id: "a#b#c", Type: numericType})
	require.True(t, errors.PARSE_ERROR.Is(err))
}

func TestParseValue(t *testing.T) {
	svc := newTestService(t, asset.MintableInfinitely)

	fixtures := []struct {
		kind     application.ValueKind
		raw      string
		mantissa uint128.Uint128
		scale    uint32
	}{
		{application.ValueKindUint32, "100", uint128.From64(100), 0},
		{application.ValueKindUint64, "18446744073709551615", uint128.Max.Rsh(64), 0},
		{application.ValueKindUint128, "340282366920938463463374607431768211455", uint128.Max, 0},
		{application.ValueKindFloat, "12.5", uint128.From64(125), 1},
		{application.ValueKindDecimal, "12.50", uint128.From64(1250), 2},
	}
	for _, f := range fixtures {
		t.Run(string(f.kind), func(t *testing.T) {
			n, err := svc.ParseValue(f.kind, f.raw)
			require.Nil(t, err)
			require.Equal(t, f.mantissa, n.Mantissa())
			require.Equal(t, f.scale, n.Scale())
		})
	}

	t.Run("invalid", func(t *testing.T) {
		invalid := []struct {
			kind application.ValueKind
			raw  string
		}{
			{application.ValueKindUint32, "4294967296"},
			{application.ValueKindUint32, "-1"},
			{application.ValueKindUint64, "abc"},
			{application.ValueKindUint128, "340282366920938463463374607431768211456"},
			{application.ValueKindFloat, "NaN"},
			{application.ValueKindFloat, "-1.5"},
			{application.ValueKindDecimal, "1.2.3"},
			{"int8", "1"},
		}
		for _, f := range invalid {
			_, err := svc.ParseValue(f.kind, f.raw)
			require.NotNil(t, err, f.raw)
			require.True(t, errors.VALUE_ERROR.Is(err), f.raw)
		}
	})
}

func newTestService(t *testing.T, defaultMintable asset.Mintable) application.Service {
	t.Helper()
	repoManager, err := db.NewService(db.ServiceConfig{
		DataStoreType:   "badger",
		DataStoreConfig: []interface{}{"", nil},
	})
	require.NoError(t, err)

	svc, err := application.NewService(repoManager, defaultMintable)
	require.NoError(t, err)
	t.Cleanup(svc.Close)
	return svc
}
