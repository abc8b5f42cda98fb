package asset_test

import (
	"encoding/json"
	"math/rand"
	"os"
	"sort"
	"testing"
	"testing/quick"

	arkerrors "github.com/arkade-os/ledger-assets/pkg/errors"
	"github.com/arkade-os/ledger-assets/pkg/ledger-lib/asset"
	"github.com/stretchr/testify/require"
)

func TestAssetDefinitionId(t *testing.T) {
	var fixtures assetDefinitionIdFixtures
	buf, err := os.ReadFile("testdata/asset_definition_id_fixtures.json")
	require.NoError(t, err)
	err = json.Unmarshal(buf, &fixtures)
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		for _, v := range fixtures.Valid {
			t.Run(v.Name, func(t *testing.T) {
				id, err := asset.NewAssetDefinitionId(v.AssetName, v.Domain)
				require.NoError(t, err)
				require.NotNil(t, id)
				require.Equal(t, v.AssetName, id.Name())
				require.Equal(t, v.Domain, id.Domain().String())
				require.Equal(t, v.Canonical, id.String())

				parsed, err := asset.ParseAssetDefinitionId(id.String())
				require.NoError(t, err)
				require.Equal(t, *id, *parsed)
				require.Zero(t, id.Compare(*parsed))

				again, err := asset.ParseAssetDefinitionId(parsed.String())
				require.NoError(t, err)
				require.Equal(t, *parsed, *again)
			})
		}
	})

	t.Run("invalid", func(t *testing.T) {
		t.Run("NewAssetDefinitionId", func(t *testing.T) {
			for _, v := range fixtures.Invalid.NewAssetDefinitionId {
				t.Run(v.Name, func(t *testing.T) {
					got, err := asset.NewAssetDefinitionId(v.AssetName, v.Domain)
					require.Error(t, err)
					require.True(t, arkerrors.PARSE_ERROR.Is(err))
					require.Contains(t, err.Error(), v.ExpectedError)
					require.Nil(t, got)
				})
			}
		})
		t.Run("ParseAssetDefinitionId", func(t *testing.T) {
			for _, v := range fixtures.Invalid.ParseAssetDefinitionId {
				t.Run(v.Name, func(t *testing.T) {
					got, err := asset.ParseAssetDefinitionId(v.Canonical)
					require.Error(t, err)
					require.True(t, arkerrors.PARSE_ERROR.Is(err))
					require.Contains(t, err.Error(), v.ExpectedError)
					require.Nil(t, got)
				})
			}
		})
	})
}

func TestAssetDefinitionIdScenario(t *testing.T) {
	id, err := asset.NewAssetDefinitionId("rose", "wonderland")
	require.NoError(t, err)
	require.Equal(t, "rose#wonderland", id.String())

	parsed, err := asset.ParseAssetDefinitionId("rose#wonderland")
	require.NoError(t, err)
	require.True(t, *id == *parsed)

	// equal ids collide as map keys
	balances := map[asset.AssetDefinitionId]int{*id: 1}
	balances[*parsed]++
	require.Len(t, balances, 1)
	require.Equal(t, 2, balances[*id])
}

func TestAssetDefinitionIdSetters(t *testing.T) {
	id, err := asset.NewAssetDefinitionId("rose", "wonderland")
	require.NoError(t, err)

	require.NoError(t, id.SetName("tulip"))
	require.Equal(t, "tulip#wonderland", id.String())

	require.NoError(t, id.SetDomain("garden"))
	require.Equal(t, "tulip#garden", id.String())

	err = id.SetName("bad#name")
	require.True(t, arkerrors.PARSE_ERROR.Is(err))
	require.Equal(t, "tulip#garden", id.String())

	err = id.SetDomain("a#b")
	require.True(t, arkerrors.PARSE_ERROR.Is(err))
	require.Contains(t, err.Error(), "invalid domain name")
	require.Equal(t, "tulip#garden", id.String())

	err = id.SetDomain("")
	require.Error(t, err)
	require.Equal(t, "tulip#garden", id.String())
}

func TestAssetDefinitionIdOrdering(t *testing.T) {
	names := []string{"a", "b", "rose", "tulip", "z"}
	domains := []string{"garden", "wonderland", "x"}

	gen := func(r *rand.Rand) asset.AssetDefinitionId {
		id, err := asset.NewAssetDefinitionId(
			names[r.Intn(len(names))], domains[r.Intn(len(domains))],
		)
		require.NoError(t, err)
		return *id
	}

	totality := func(seed int64) bool {
		r := rand.New(rand.NewSource(seed))
		a, b, c := gen(r), gen(r), gen(r)

		ab, ba := a.Compare(b), b.Compare(a)
		if ab != -ba {
			return false
		}
		if (ab == 0) != (a == b) {
			return false
		}
		if a.Compare(a) != 0 {
			return false
		}
		if ab <= 0 && b.Compare(c) <= 0 && a.Compare(c) > 0 {
			return false
		}
		return true
	}
	require.NoError(t, quick.Check(totality, &quick.Config{MaxCount: 500}))

	ids := make([]asset.AssetDefinitionId, 0)
	for _, s := range []string{"z#a", "rose#wonderland", "rose#garden", "a#z"} {
		id, err := asset.ParseAssetDefinitionId(s)
		require.NoError(t, err)
		ids = append(ids, *id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Compare(ids[j]) < 0 })
	got := make([]string, 0, len(ids))
	for _, id := range ids {
		got = append(got, id.String())
	}
	require.Equal(t, []string{"a#z", "rose#garden", "rose#wonderland", "z#a"}, got)
}

func TestAssetDefinitionIdJSON(t *testing.T) {
	id, err := asset.NewAssetDefinitionId("rose", "wonderland")
	require.NoError(t, err)

	buf, err := json.Marshal(map[string]asset.AssetDefinitionId{"id": *id})
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"rose#wonderland"}`, string(buf))

	var decoded map[string]asset.AssetDefinitionId
	require.NoError(t, json.Unmarshal(buf, &decoded))
	require.Equal(t, *id, decoded["id"])

	err = json.Unmarshal([]byte(`{"id":"rose"}`), &decoded)
	require.True(t, arkerrors.PARSE_ERROR.Is(err))
}

type assetDefinitionIdFixtures struct {
	Valid []struct {
		Name      string `json:"name"`
		AssetName string `json:"assetName"`
		Domain    string `json:"domain"`
		Canonical string `json:"canonical"`
	} `json:"valid"`
	Invalid struct {
		NewAssetDefinitionId []struct {
			Name          string `json:"name"`
			AssetName     string `json:"assetName"`
			Domain        string `json:"domain"`
			ExpectedError string `json:"expectedError"`
		} `json:"newAssetDefinitionId"`
		ParseAssetDefinitionId []struct {
			Name          string `json:"name"`
			Canonical     string `json:"canonical"`
			ExpectedError string `json:"expectedError"`
		} `json:"parseAssetDefinitionId"`
	} `json:"invalid"`
}
