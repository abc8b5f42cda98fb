package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/arkade-os/ledger-assets/internal/config"
	"github.com/arkade-os/ledger-assets/internal/core/application"
	"github.com/arkade-os/ledger-assets/pkg/ledger-lib/numeric"
	"github.com/urfave/cli/v2"
)

type numericValue struct {
	Value    string `json:"value"`
	Mantissa string `json:"mantissa"`
	Scale    uint32 `json:"scale"`
}

func numericInfo(n numeric.Numeric) numericValue {
	return numericValue{
		Value:    n.String(),
		Mantissa: n.Mantissa().String(),
		Scale:    n.Scale(),
	}
}

// getService opens the local mirror configured by the global flags.
// The caller must close the returned service.
func getService(ctx *cli.Context) (application.Service, error) {
	cfg, err := config.LoadConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %s", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %s", err)
	}
	return cfg.AppService(), nil
}

func singleArg(ctx *cli.Context) (string, error) {
	if ctx.NArg() != 1 {
		return "", fmt.Errorf("expected exactly one argument, got %d", ctx.NArg())
	}
	return ctx.Args().First(), nil
}

func readPayload(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %s", path, err)
	}
	return buf, nil
}

func printJSON(resp interface{}) error {
	jsonBytes, err := json.MarshalIndent(resp, "", "\t")
	if err != nil {
		return err
	}
	fmt.Println(string(jsonBytes))
	return nil
}
