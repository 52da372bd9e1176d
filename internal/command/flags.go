// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var (
	jsonDiffFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "json-diff",
		Usage:       "print a raw JSON diff of the two report sets",
		HideDefault: true,
	}

	tuiFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "tui",
		Usage:       "browse the diff result interactively",
		HideDefault: true,
	}
)

func NewGlobalFlags(params ...string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		},
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Value:   false,
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Usage:       "enable debug output",
			HideDefault: true,
		},
	}

	return
}

// NewHTMLFileFlag constructs the "html-file" flag, optionally namespaced to a
// command and config file. params[1] is the config file.
func NewHTMLFileFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:  "html-file",
		Usage: "write an HTML diff report to this path",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("JUNITDIFF_HTML_FILE"),
		),
		Value: "",
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewProfileFlag constructs the "profile" flag used when a report directory
// is an s3:// URL, optionally namespaced to a command and config file.
// params[1] is the config file.
func NewProfileFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:  "profile",
		Usage: "AWS profile for s3:// report sources",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("JUNITDIFF_PROFILE"),
			cli.EnvVar("AWS_PROFILE"),
		),
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewRegionFlag constructs the "region" flag used when a report directory is
// an s3:// URL, optionally namespaced to a command and config file. params[1]
// is the config file.
func NewRegionFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:  "region",
		Usage: "AWS region for s3:// report sources",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("JUNITDIFF_REGION"),
			cli.EnvVar("AWS_REGION"),
		),
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
