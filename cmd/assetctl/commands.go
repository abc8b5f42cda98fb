package main

import (
	"fmt"
	"strconv"

	"github.com/arkade-os/ledger-assets/internal/core/application"
	"github.com/arkade-os/ledger-assets/pkg/ledger-lib/asset"
	"github.com/arkade-os/ledger-assets/pkg/ledger-lib/identity"
	"github.com/arkade-os/ledger-assets/pkg/ledger-lib/numeric"
	"github.com/urfave/cli/v2"
)

var (
	parseCommand = cli.Command{
		Name:  "parse",
		Usage: "Validate an identifier and print its canonical form",
		Subcommands: []*cli.Command{
			{
				Name:      "definition-id",
				Usage:     "Parse an asset definition id (name#domain)",
				ArgsUsage: "<id>",
				Action:    parseDefinitionIdAction,
			},
			{
				Name:      "asset-id",
				Usage:     "Parse an asset id (name#domain#account or name##account)",
				ArgsUsage: "<id>",
				Action:    parseAssetIdAction,
			},
			{
				Name:      "account-id",
				Usage:     "Parse an account id (signatory@domain)",
				ArgsUsage: "<id>",
				Action:    parseAccountIdAction,
			},
		},
	}
	valueCommand = cli.Command{
		Name:   "value",
		Usage:  "Convert a value into an exact numeric (mantissa and scale)",
		Flags:  []cli.Flag{uint32Flag, uint64Flag, uint128Flag, floatFlag, decimalFlag},
		Action: valueAction,
	}
	definitionCommand = cli.Command{
		Name:  "definition",
		Usage: "Build asset definition registration requests",
		Subcommands: []*cli.Command{
			{
				Name:   "new",
				Usage:  "Print the registration request of a new asset definition",
				Flags:  []cli.Flag{idFlag, typeFlag, scaleFlag, mintableFlag, logoFlag},
				Action: newDefinitionAction,
			},
		},
	}
	mirrorCommand = cli.Command{
		Name:  "mirror",
		Usage: "Store ledger entities in the local mirror",
		Subcommands: []*cli.Command{
			{
				Name:   "definitions",
				Usage:  "Mirror a JSON array of asset definitions",
				Flags:  []cli.Flag{fileFlag},
				Action: mirrorDefinitionsAction,
			},
			{
				Name:   "assets",
				Usage:  "Mirror a JSON array of assets",
				Flags:  []cli.Flag{fileFlag},
				Action: mirrorAssetsAction,
			},
		},
	}
	showCommand = cli.Command{
		Name:  "show",
		Usage: "Show a mirrored entity",
		Subcommands: []*cli.Command{
			{
				Name:      "definition",
				Usage:     "Show a mirrored asset definition",
				ArgsUsage: "<id>",
				Action:    showDefinitionAction,
			},
			{
				Name:      "asset",
				Usage:     "Show a mirrored asset",
				ArgsUsage: "<id>",
				Action:    showAssetAction,
			},
		},
	}
	listCommand = cli.Command{
		Name:  "list",
		Usage: "List mirrored entities",
		Subcommands: []*cli.Command{
			{
				Name:   "definitions",
				Usage:  "List mirrored asset definitions",
				Flags:  []cli.Flag{domainFlag},
				Action: listDefinitionsAction,
			},
			{
				Name:   "assets",
				Usage:  "List mirrored assets of an account or of a definition",
				Flags:  []cli.Flag{accountFlag, definitionFlag},
				Action: listAssetsAction,
			},
		},
	}
)

func parseDefinitionIdAction(ctx *cli.Context) error {
	arg, err := singleArg(ctx)
	if err != nil {
		return err
	}
	id, err := asset.ParseAssetDefinitionId(arg)
	if err != nil {
		return err
	}
	return printJSON(map[string]string{
		"id":     id.String(),
		"name":   id.Name(),
		"domain": id.Domain().String(),
	})
}

func parseAssetIdAction(ctx *cli.Context) error {
	arg, err := singleArg(ctx)
	if err != nil {
		return err
	}
	id, err := asset.ParseAssetId(arg)
	if err != nil {
		return err
	}
	return printJSON(map[string]string{
		"id":            id.String(),
		"definition_id": id.DefinitionId().String(),
		"account_id":    id.AccountId().String(),
	})
}

func parseAccountIdAction(ctx *cli.Context) error {
	arg, err := singleArg(ctx)
	if err != nil {
		return err
	}
	id, err := identity.ParseAccountId(arg)
	if err != nil {
		return err
	}
	return printJSON(map[string]string{
		"id":        id.String(),
		"signatory": id.Signatory().String(),
		"algorithm": id.Signatory().Algorithm().String(),
		"domain":    id.Domain().String(),
	})
}

func valueAction(ctx *cli.Context) error {
	kinds := map[string]application.ValueKind{
		uint32FlagName:  application.ValueKindUint32,
		uint64FlagName:  application.ValueKindUint64,
		uint128FlagName: application.ValueKindUint128,
		floatFlagName:   application.ValueKindFloat,
		decimalFlagName: application.ValueKindDecimal,
	}

	var (
		kind application.ValueKind
		raw  string
	)
	for name, k := range kinds {
		if !ctx.IsSet(name) {
			continue
		}
		if kind != "" {
			return fmt.Errorf("only one value flag can be set")
		}
		kind, raw = k, ctx.String(name)
	}
	if kind == "" {
		return fmt.Errorf("missing value, set one of --uint32, --uint64, --uint128, --float, --decimal")
	}

	n, err := application.ParseValue(kind, raw)
	if err != nil {
		return err
	}
	return printJSON(numericInfo(n))
}

func newDefinitionAction(ctx *cli.Context) error {
	assetType, err := parseAssetType(ctx.String(typeFlagName), ctx.String(scaleFlagName))
	if err != nil {
		return err
	}

	req := application.NewDefinitionRequest{
		Id:   ctx.String(idFlagName),
		Type: assetType,
		Logo: ctx.String(logoFlagName),
	}
	if ctx.IsSet(mintableFlagName) {
		mintable, err := asset.ParseMintable(ctx.String(mintableFlagName))
		if err != nil {
			return err
		}
		req.Mintable = &mintable
	}

	svc, err := getService(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()

	def, cerr := svc.NewDefinition(req)
	if cerr != nil {
		return cerr
	}
	return printJSON(def)
}

func mirrorDefinitionsAction(ctx *cli.Context) error {
	payload, err := readPayload(ctx.String(fileFlagName))
	if err != nil {
		return err
	}

	svc, err := getService(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()

	count, cerr := svc.MirrorDefinitions(ctx.Context, payload)
	if cerr != nil {
		return cerr
	}
	return printJSON(map[string]int{"mirrored": count})
}

func mirrorAssetsAction(ctx *cli.Context) error {
	payload, err := readPayload(ctx.String(fileFlagName))
	if err != nil {
		return err
	}

	svc, err := getService(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()

	count, cerr := svc.MirrorAssets(ctx.Context, payload)
	if cerr != nil {
		return cerr
	}
	return printJSON(map[string]int{"mirrored": count})
}

func showDefinitionAction(ctx *cli.Context) error {
	id, err := singleArg(ctx)
	if err != nil {
		return err
	}

	svc, err := getService(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()

	def, cerr := svc.GetDefinition(ctx.Context, id)
	if cerr != nil {
		return cerr
	}
	return printJSON(def)
}

func showAssetAction(ctx *cli.Context) error {
	id, err := singleArg(ctx)
	if err != nil {
		return err
	}

	svc, err := getService(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()

	a, cerr := svc.GetAsset(ctx.Context, id)
	if cerr != nil {
		return cerr
	}
	return printJSON(a)
}

func listDefinitionsAction(ctx *cli.Context) error {
	svc, err := getService(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()

	definitions, cerr := svc.ListDefinitions(ctx.Context, ctx.String(domainFlagName))
	if cerr != nil {
		return cerr
	}
	return printJSON(definitions)
}

func listAssetsAction(ctx *cli.Context) error {
	svc, err := getService(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()

	assets, cerr := svc.ListAssets(ctx.Context, application.AssetFilter{
		AccountId:    ctx.String(accountFlagName),
		DefinitionId: ctx.String(definitionFlagName),
	})
	if cerr != nil {
		return cerr
	}
	return printJSON(assets)
}

func parseAssetType(typ, scale string) (asset.AssetType, error) {
	switch typ {
	case storeType:
		if scale != "" {
			return asset.AssetType{}, fmt.Errorf("scale only applies to numeric types")
		}
		return asset.StoreType(), nil
	case numericType:
		if scale == "" {
			return asset.NumericType(numeric.Unconstrained()), nil
		}
		s, err := strconv.ParseUint(scale, 10, 32)
		if err != nil || s > numeric.MaxScale {
			return asset.AssetType{}, fmt.Errorf(
				"invalid scale %q, must be between 0 and %d", scale, numeric.MaxScale,
			)
		}
		return asset.NumericType(numeric.Fractional(uint32(s))), nil
	default:
		return asset.AssetType{}, fmt.Errorf(
			"invalid asset type %q, must be one of %s, %s", typ, numericType, storeType,
		)
	}
}
