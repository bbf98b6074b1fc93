package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	varshape "github.com/varshape/go-varshape"
)

type KeyConfig struct {
	*MainConfig
	Key *cli.Command
}

func KeyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &KeyConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("key").
		WithAliases("k").
		WithSynopsis("key <key>...").
		WithDescription("classify object keys as string, pattern, or reference").
		WithRun(func(cc *cli.Context, args []string) error {
			return keyRun(cfg, cc, args)
		})
	cfg.Key = cmd
	return cmd
}

func keyRun(cfg *KeyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Key.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: key requires at least 1 argument", cli.ErrUsage)
	}
	for _, a := range args {
		fmt.Fprintf(cc.Out, "%s\t%s\n", a, varshape.KeyType(a))
	}
	return nil
}
