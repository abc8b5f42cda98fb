package badgerdb

import (
	"sort"

	"github.com/arkade-os/ledger-assets/internal/core/domain"
	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/timshannon/badgerhold/v4"
)

const maxRetries = 5

// createDB opens a badgerhold store in dbDir, or an in-memory one if dbDir is empty.
func createDB(dbDir string, logger badger.Logger) (*badgerhold.Store, error) {
	isInMemory := len(dbDir) <= 0

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = logger

	if isInMemory {
		opts.InMemory = true
	} else {
		opts.Compression = options.ZSTD
	}

	return badgerhold.Open(badgerhold.Options{
		Encoder:          badgerhold.DefaultEncode,
		Decoder:          badgerhold.DefaultDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
}

func sortDefinitions(definitions []domain.DefinitionRecord) {
	sort.Slice(definitions, func(i, j int) bool {
		return definitions[i].Id < definitions[j].Id
	})
}

func sortAssets(assets []domain.AssetRecord) {
	sort.Slice(assets, func(i, j int) bool {
		return assets[i].Id < assets[j].Id
	})
}
