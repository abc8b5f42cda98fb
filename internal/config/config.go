package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arkade-os/ledger-assets/internal/core/application"
	"github.com/arkade-os/ledger-assets/internal/core/ports"
	"github.com/arkade-os/ledger-assets/internal/infrastructure/db"
	"github.com/arkade-os/ledger-assets/pkg/ledger-lib/asset"
	"github.com/btcsuite/btcd/btcutil"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var (
	supportedDbs = supportedType{
		"badger":   {},
		"sqlite":   {},
		"postgres": {},
	}
)

type Config struct {
	Datadir         string
	DbType          string
	DbDir           string
	DbUrl           string
	LogLevel        int
	DefaultMintable asset.Mintable
	ConfigFile      string

	repo   ports.RepoManager
	appSvc application.Service
}

func (c *Config) String() string {
	clone := *c
	if clone.DbUrl != "" {
		clone.DbUrl = "••••••"
	}
	json, err := json.MarshalIndent(clone, "", "  ")
	if err != nil {
		return fmt.Sprintf("error while marshalling config JSON: %s", err)
	}
	return string(json)
}

var (
	defaultDatadir         = btcutil.AppDataDir("assetctl", false)
	defaultDbType          = "badger"
	defaultLogLevel        = 4
	defaultDefaultMintable = asset.MintableInfinitely.String()
)

// env returns a list of strings prefixed with `ASSETS_`.
// This is used as a syntax sugar for defining env vars.
func env(values ...string) []string {
	envs := make([]string, len(values))

	for i, value := range values {
		envs[i] = fmt.Sprintf("ASSETS_%s", value)
	}

	return envs
}

var (
	Datadir = &cli.StringFlag{
		Usage: "Directory to store data",
		Name:  "datadir", EnvVars: env("DATADIR"),
		Value: defaultDatadir,
	}

	LogLevel = &cli.IntFlag{
		Usage: "Logging level (0-6, where 6 is trace)",
		Name:  "log-level", EnvVars: env("LOG_LEVEL"),
		Value: defaultLogLevel,
	}

	DbType = &cli.StringFlag{
		Usage: "Database type (postgres, sqlite, badger)",
		Name:  "db-type", EnvVars: env("DB_TYPE"),
		Value: defaultDbType,
	}

	DbUrl = &cli.StringFlag{
		Usage: "Postgres connection url if ASSETS_DB_TYPE is set to postgres",
		Name:  "pg-db-url", EnvVars: env("PG_DB_URL"),
	}

	DefaultMintable = &cli.StringFlag{
		Usage: "Mint policy of new asset definitions when none is given (Infinitely, Once, Not)",
		Name:  "default-mintable", EnvVars: env("DEFAULT_MINTABLE"),
		Value: defaultDefaultMintable,
	}

	ConfigFile = &cli.StringFlag{
		Usage: "Optional config file (json, yaml or toml) for flags not set otherwise",
		Name:  "config-file", EnvVars: env("CONFIG_FILE"),
	}
)

var Flags = []cli.Flag{
	Datadir,
	LogLevel,
	DbType,
	DbUrl,
	DefaultMintable,
	ConfigFile,
}

func LoadConfig(c *cli.Context) (*Config, error) {
	if err := initDatadir(c); err != nil {
		return nil, fmt.Errorf("failed to create datadir: %s", err)
	}

	dbPath := filepath.Join(c.String(Datadir.Name), "db")

	var dbUrl string
	if c.String(DbType.Name) == "postgres" {
		dbUrl = c.String(DbUrl.Name)
		if dbUrl == "" {
			return nil, fmt.Errorf("db type set to 'postgres' but db url is missing")
		}
	}

	defaultMintable, err := asset.ParseMintable(c.String(DefaultMintable.Name))
	if err != nil {
		return nil, fmt.Errorf("invalid default mintable: %w", err)
	}

	return &Config{
		Datadir:         c.String(Datadir.Name),
		DbType:          c.String(DbType.Name),
		DbDir:           dbPath,
		DbUrl:           dbUrl,
		LogLevel:        c.Int(LogLevel.Name),
		DefaultMintable: defaultMintable,
		ConfigFile:      c.String(ConfigFile.Name),
	}, nil
}

func initDatadir(c *cli.Context) error {
	datadir := c.String(Datadir.Name)
	return makeDirectoryIfNotExists(datadir)
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0o755)
	}
	return nil
}

func (c *Config) Validate() error {
	if !supportedDbs.supports(c.DbType) {
		return fmt.Errorf("db type not supported, please select one of: %s", supportedDbs)
	}
	if c.LogLevel < int(log.PanicLevel) || c.LogLevel > int(log.TraceLevel) {
		return fmt.Errorf("log level must be between 0 and 6")
	}
	if !c.DefaultMintable.IsValid() {
		return fmt.Errorf("invalid default mintable")
	}

	if err := c.repoManager(); err != nil {
		return err
	}
	if err := c.appService(); err != nil {
		return err
	}
	return nil
}

func (c *Config) AppService() application.Service {
	return c.appSvc
}

func (c *Config) repoManager() error {
	var dataStoreConfig []interface{}
	logger := log.New()
	logger.SetLevel(log.Level(c.LogLevel))

	switch c.DbType {
	case "badger":
		dataStoreConfig = []interface{}{c.DbDir, logger}
	case "sqlite":
		dataStoreConfig = []interface{}{c.DbDir}
	case "postgres":
		dataStoreConfig = []interface{}{c.DbUrl, true}
	default:
		return fmt.Errorf("unknown db type")
	}

	svc, err := db.NewService(db.ServiceConfig{
		DataStoreType:   c.DbType,
		DataStoreConfig: dataStoreConfig,
	})
	if err != nil {
		return err
	}

	c.repo = svc
	return nil
}

func (c *Config) appService() error {
	svc, err := application.NewService(c.repo, c.DefaultMintable)
	if err != nil {
		return err
	}

	c.appSvc = svc
	return nil
}

type supportedType map[string]struct{}

func (t supportedType) String() string {
	types := make([]string, 0, len(t))
	for tt := range t {
		types = append(types, tt)
	}
	return strings.Join(types, " | ")
}

func (t supportedType) supports(typeStr string) bool {
	_, ok := t[typeStr]
	return ok
}
