package asset_test

import (
	"encoding/json"
	"testing"

	arkerrors "github.com/arkade-os/ledger-assets/pkg/errors"
	"github.com/arkade-os/ledger-assets/pkg/ledger-lib/asset"
	"github.com/arkade-os/ledger-assets/pkg/ledger-lib/metadata"
	"github.com/arkade-os/ledger-assets/pkg/ledger-lib/numeric"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

func TestNewAsset(t *testing.T) {
	id := mustAssetId(t, "rose##"+aliceId)

	t.Run("float", func(t *testing.T) {
		n, err := numeric.FromFloat64(12.5)
		require.NoError(t, err)
		a, err := asset.NewAsset(id, asset.NewNumericValue(n))
		require.NoError(t, err)
		require.Equal(t, id, a.Id())

		v, ok := a.Value().(asset.NumericValue)
		require.True(t, ok)
		require.Equal(t, uint128.From64(125), v.Value.Mantissa())
		require.Equal(t, uint32(1), v.Value.Scale())

		q, err := a.Quantity()
		require.NoError(t, err)
		require.True(t, decimal.RequireFromString("12.5").Equal(q))
	})

	t.Run("uint32", func(t *testing.T) {
		a, err := asset.NewAsset(id, asset.NewNumericValue(numeric.FromUint32(100)))
		require.NoError(t, err)
		v := a.Value().(asset.NumericValue)
		require.Equal(t, uint128.From64(100), v.Value.Mantissa())
		require.Zero(t, v.Value.Scale())
	})

	t.Run("store", func(t *testing.T) {
		a, err := asset.NewAsset(id, asset.StoreValue{Value: metadata.New()})
		require.True(t, arkerrors.UNSUPPORTED_OPERATION.Is(err))
		require.Contains(t, err.Error(), "read-only")
		require.Nil(t, a)
	})

	t.Run("missing value", func(t *testing.T) {
		_, err := asset.NewAsset(id, nil)
		require.True(t, arkerrors.VALUE_ERROR.Is(err))
	})
}

func TestAssetSetters(t *testing.T) {
	a, err := asset.NewAsset(
		mustAssetId(t, "rose##"+aliceId), asset.NewNumericValue(numeric.FromUint32(1)),
	)
	require.NoError(t, err)

	require.NoError(t, a.SetValue(asset.NewNumericValue(numeric.FromUint64(42))))
	q, err := a.Quantity()
	require.NoError(t, err)
	require.Equal(t, "42", q.String())

	err = a.SetValue(asset.StoreValue{Value: metadata.New()})
	require.True(t, arkerrors.UNSUPPORTED_OPERATION.Is(err))
	q, err = a.Quantity()
	require.NoError(t, err)
	require.Equal(t, "42", q.String())

	other := mustAssetId(t, "tulip#garden#"+aliceId)
	a.SetId(other)
	require.Equal(t, other, a.Id())

	_, err = a.Store()
	require.True(t, arkerrors.VALUE_ERROR.Is(err))
}

func TestAssetJSON(t *testing.T) {
	t.Run("numeric", func(t *testing.T) {
		raw := `{"id":"rose##` + aliceId + `","value":{"Numeric":"12.5"}}`

		var a asset.Asset
		require.NoError(t, json.Unmarshal([]byte(raw), &a))
		require.Equal(t, "rose##"+aliceId, a.Id().String())
		q, err := a.Quantity()
		require.NoError(t, err)
		require.Equal(t, "12.5", q.String())

		buf, err := json.Marshal(a)
		require.NoError(t, err)
		require.JSONEq(t, raw, string(buf))
	})

	t.Run("store", func(t *testing.T) {
		raw := `{"id":"rose##` + aliceId + `","value":{"Store":{"color":"red"}}}`

		var a asset.Asset
		require.NoError(t, json.Unmarshal([]byte(raw), &a))
		_, ok := a.Value().(asset.StoreValue)
		require.True(t, ok)

		_, err := a.Quantity()
		require.True(t, arkerrors.VALUE_ERROR.Is(err))
		_, err = a.Store()
		require.True(t, arkerrors.UNSUPPORTED_OPERATION.Is(err))

		buf, err := json.Marshal(a)
		require.NoError(t, err)
		require.JSONEq(t, raw, string(buf))
	})

	t.Run("invalid", func(t *testing.T) {
		for _, raw := range []string{
			`{"value":{"Numeric":"1"}}`,
			`{"id":"rose##` + aliceId + `"}`,
			`{"id":"rose##` + aliceId + `","value":{}}`,
			`{"id":"rose##` + aliceId + `","value":{"Numeric":"1","Store":{}}}`,
			`{"id":"rose##` + aliceId + `","value":{"Numeric":"-1"}}`,
		} {
			var a asset.Asset
			err := json.Unmarshal([]byte(raw), &a)
			require.Error(t, err, raw)
			require.True(t, arkerrors.VALUE_ERROR.Is(err), raw)
		}
	})
}
