package ports

import "github.com/arkade-os/ledger-assets/internal/core/domain"

type RepoManager interface {
	Definitions() domain.AssetDefinitionRepository
	Assets() domain.AssetRepository
	Close()
}
