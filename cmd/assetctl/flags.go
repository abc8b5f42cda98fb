package main

import (
	"github.com/urfave/cli/v2"
)

const (
	uint32FlagName     = "uint32"
	uint64FlagName     = "uint64"
	uint128FlagName    = "uint128"
	floatFlagName      = "float"
	decimalFlagName    = "decimal"
	idFlagName         = "id"
	typeFlagName       = "type"
	scaleFlagName      = "scale"
	mintableFlagName   = "mintable"
	logoFlagName       = "logo"
	fileFlagName       = "file"
	domainFlagName     = "domain"
	accountFlagName    = "account"
	definitionFlagName = "definition"

	numericType = "numeric"
	storeType   = "store"
)

var (
	uint32Flag = &cli.StringFlag{
		Name:  uint32FlagName,
		Usage: "unsigned 32-bit integer value",
	}
	uint64Flag = &cli.StringFlag{
		Name:  uint64FlagName,
		Usage: "unsigned 64-bit integer value",
	}
	uint128Flag = &cli.StringFlag{
		Name:  uint128FlagName,
		Usage: "unsigned 128-bit integer value",
	}
	floatFlag = &cli.StringFlag{
		Name:  floatFlagName,
		Usage: "floating point value, read as the shortest decimal that converts back to it",
	}
	decimalFlag = &cli.StringFlag{
		Name:  decimalFlagName,
		Usage: "exact decimal value, e.g. 12.50",
	}
	idFlag = &cli.StringFlag{
		Name:     idFlagName,
		Usage:    "asset definition id in the `name#domain` form",
		Required: true,
	}
	typeFlag = &cli.StringFlag{
		Name:  typeFlagName,
		Usage: "asset type (numeric, store)",
		Value: numericType,
	}
	scaleFlag = &cli.StringFlag{
		Name:  scaleFlagName,
		Usage: "max fractional digits of a numeric type, unconstrained if not set",
	}
	mintableFlag = &cli.StringFlag{
		Name:  mintableFlagName,
		Usage: "mint policy (Infinitely, Once, Not), defaults to --default-mintable",
	}
	logoFlag = &cli.StringFlag{
		Name:  logoFlagName,
		Usage: "IPFS path of the logo",
	}
	fileFlag = &cli.StringFlag{
		Name:     fileFlagName,
		Usage:    "JSON file with the ledger entities, - for stdin",
		Required: true,
	}
	domainFlag = &cli.StringFlag{
		Name:  domainFlagName,
		Usage: "only list the definitions registered in this domain",
	}
	accountFlag = &cli.StringFlag{
		Name:  accountFlagName,
		Usage: "list the assets held by this account",
	}
	definitionFlag = &cli.StringFlag{
		Name:  definitionFlagName,
		Usage: "list the assets of this definition",
	}
)
