package db_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/arkade-os/ledger-assets/internal/core/domain"
	"github.com/arkade-os/ledger-assets/internal/core/ports"
	"github.com/arkade-os/ledger-assets/internal/infrastructure/db"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

const (
	alice = "ed0120CE7FA46C9DCE7EA4B125E2E36BDB63EA33073E7590AC92816AE1E861B7048B03@wonderland"
	bob   = "e701210279BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798@garden"
)

func TestMain(m *testing.M) {
	log.SetLevel(log.ErrorLevel)
	os.Exit(m.Run())
}

func TestService(t *testing.T) {
	tests := []struct {
		name   string
		config db.ServiceConfig
	}{
		{
			name: "repo_manager_with_inmemory_badger_stores",
			config: db.ServiceConfig{
				DataStoreType:   "badger",
				DataStoreConfig: []interface{}{"", nil},
			},
		},
		{
			name: "repo_manager_with_badger_stores",
			config: db.ServiceConfig{
				DataStoreType:   "badger",
				DataStoreConfig: []interface{}{t.TempDir(), log.StandardLogger()},
			},
		},
		{
			name: "repo_manager_with_sqlite_stores",
			config: db.ServiceConfig{
				DataStoreType:   "sqlite",
				DataStoreConfig: []interface{}{t.TempDir()},
			},
		},
	}
	if pgDsn := os.Getenv("ASSETS_PG_DB_URL"); pgDsn != "" {
		tests = append(tests, struct {
			name   string
			config db.ServiceConfig
		}{
			name: "repo_manager_with_postgres_stores",
			config: db.ServiceConfig{
				DataStoreType:   "postgres",
				DataStoreConfig: []interface{}{pgDsn, true},
			},
		})
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := db.NewService(tt.config)
			require.NoError(t, err)
			require.NotNil(t, svc)
			defer svc.Close()

			testDefinitionRepository(t, svc)
			testAssetRepository(t, svc)
			testConcurrentUpserts(t, svc)
		})
	}
}

func TestServiceInvalidConfig(t *testing.T) {
	fixtures := []struct {
		name   string
		config db.ServiceConfig
	}{
		{"unknown type", db.ServiceConfig{DataStoreType: "redis"}},
		{"badger without logger", db.ServiceConfig{
			DataStoreType: "badger", DataStoreConfig: []interface{}{""},
		}},
		{"badger with bad logger", db.ServiceConfig{
			DataStoreType: "badger", DataStoreConfig: []interface{}{"", "logger"},
		}},
		{"sqlite without dir", db.ServiceConfig{DataStoreType: "sqlite"}},
		{"postgres without flag", db.ServiceConfig{
			DataStoreType: "postgres", DataStoreConfig: []interface{}{"postgres://x/y"},
		}},
	}
	for _, f := range fixtures {
		t.Run(f.name, func(t *testing.T) {
			svc, err := db.NewService(f.config)
			require.Error(t, err)
			require.Nil(t, svc)
		})
	}
}

func testDefinitionRepository(t *testing.T, svc ports.RepoManager) {
	t.Run("test_definition_repository", func(t *testing.T) {
		ctx := context.Background()
		repo := svc.Definitions()

		def, err := repo.GetDefinition(ctx, "missing#nowhere")
		require.NoError(t, err)
		require.Nil(t, def)

		definitions := []domain.DefinitionRecord{
			definitionRecord("rose", "wonderland", alice),
			definitionRecord("tulip", "garden", bob),
			definitionRecord("daisy", "wonderland", alice),
		}
		require.NoError(t, repo.UpsertDefinitions(ctx, definitions))
		require.NoError(t, repo.UpsertDefinitions(ctx, nil))

		def, err = repo.GetDefinition(ctx, "rose#wonderland")
		require.NoError(t, err)
		require.NotNil(t, def)
		require.Equal(t, definitions[0], *def)

		all, err := repo.ListDefinitions(ctx, "")
		require.NoError(t, err)
		require.Equal(t, []string{"daisy#wonderland", "rose#wonderland", "tulip#garden"}, ids(all))

		wonderland, err := repo.ListDefinitions(ctx, "wonderland")
		require.NoError(t, err)
		require.Equal(t, []string{"daisy#wonderland", "rose#wonderland"}, ids(wonderland))

		none, err := repo.ListDefinitions(ctx, "atlantis")
		require.NoError(t, err)
		require.Empty(t, none)

		// upsert replaces the existing record
		updated := definitionRecord("rose", "wonderland", bob)
		updated.UpdatedAt = definitions[0].UpdatedAt + 10
		require.NoError(t, repo.UpsertDefinitions(ctx, []domain.DefinitionRecord{updated}))

		def, err = repo.GetDefinition(ctx, "rose#wonderland")
		require.NoError(t, err)
		require.Equal(t, updated, *def)

		all, err = repo.ListDefinitions(ctx, "")
		require.NoError(t, err)
		require.Len(t, all, 3)
	})
}

func testAssetRepository(t *testing.T, svc ports.RepoManager) {
	t.Run("test_asset_repository", func(t *testing.T) {
		ctx := context.Background()
		repo := svc.Assets()

		asset, err := repo.GetAsset(ctx, "missing##"+alice)
		require.NoError(t, err)
		require.Nil(t, asset)

		assets := []domain.AssetRecord{
			assetRecord("rose##"+alice, "rose#wonderland", alice, "12.5"),
			assetRecord("rose#wonderland#"+bob, "rose#wonderland", bob, "3"),
			assetRecord("tulip##"+bob, "tulip#garden", bob, "100"),
		}
		require.NoError(t, repo.UpsertAssets(ctx, assets))

		asset, err = repo.GetAsset(ctx, "rose##"+alice)
		require.NoError(t, err)
		require.NotNil(t, asset)
		require.Equal(t, assets[0], *asset)

		byAccount, err := repo.ListAssetsByAccount(ctx, bob)
		require.NoError(t, err)
		require.Equal(t, []string{"rose#wonderland#" + bob, "tulip##" + bob}, assetIds(byAccount))

		byDefinition, err := repo.ListAssetsByDefinition(ctx, "rose#wonderland")
		require.NoError(t, err)
		require.Equal(
			t, []string{"rose##" + alice, "rose#wonderland#" + bob}, assetIds(byDefinition),
		)

		none, err := repo.ListAssetsByDefinition(ctx, "lily#garden")
		require.NoError(t, err)
		require.Empty(t, none)

		updated := assetRecord("rose##"+alice, "rose#wonderland", alice, "13")
		require.NoError(t, repo.UpsertAssets(ctx, []domain.AssetRecord{updated}))

		asset, err = repo.GetAsset(ctx, "rose##"+alice)
		require.NoError(t, err)
		require.Equal(t, updated.Payload, asset.Payload)

		byAccount, err = repo.ListAssetsByAccount(ctx, alice)
		require.NoError(t, err)
		require.Len(t, byAccount, 1)
	})
}

func testConcurrentUpserts(t *testing.T, svc ports.RepoManager) {
	t.Run("test_concurrent_upserts", func(t *testing.T) {
		ctx := context.Background()
		repo := svc.Assets()

		wg := sync.WaitGroup{}
		errs := make(chan error, 4)
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				record := assetRecord(
					fmt.Sprintf("lily%d##%s", i, alice), fmt.Sprintf("lily%d#wonderland", i),
					alice, fmt.Sprintf("%d", i),
				)
				errs <- repo.UpsertAssets(ctx, []domain.AssetRecord{record})
			}(i)
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		byAccount, err := repo.ListAssetsByAccount(ctx, alice)
		require.NoError(t, err)
		require.Len(t, byAccount, 5)
	})
}

func definitionRecord(name, domainName, owner string) domain.DefinitionRecord {
	id := name + "#" + domainName
	return domain.DefinitionRecord{
		Id:      id,
		Domain:  domainName,
		OwnedBy: owner,
		Payload: []byte(fmt.Sprintf(
			`{"id":%q,"type":"Store","mintable":"Infinitely","metadata":{},"owned_by":%q}`,
			id, owner,
		)),
		UpdatedAt: time.Now().Unix(),
	}
}

func assetRecord(id, definitionId, accountId, quantity string) domain.AssetRecord {
	return domain.AssetRecord{
		Id:           id,
		DefinitionId: definitionId,
		AccountId:    accountId,
		Payload:      []byte(fmt.Sprintf(`{"id":%q,"value":{"Numeric":%q}}`, id, quantity)),
		UpdatedAt:    time.Now().Unix(),
	}
}

func ids(definitions []domain.DefinitionRecord) []string {
	ids := make([]string, 0, len(definitions))
	for _, def := range definitions {
		ids = append(ids, def.Id)
	}
	return ids
}

func assetIds(assets []domain.AssetRecord) []string {
	ids := make([]string, 0, len(assets))
	for _, asset := range assets {
		ids = append(ids, asset.Id)
	}
	return ids
}
