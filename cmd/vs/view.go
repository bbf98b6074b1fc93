package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	varshape "github.com/varshape/go-varshape"
	"github.com/varshape/go-varshape/encode"
)

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("coerce YAML/JSON literal documents to schema trees and render them").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return viewReader(cfg, cc, "-", cc.In)
	}
	for _, file := range args {
		if err := viewFile(cfg, cc, file); err != nil {
			return err
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, cc *cli.Context, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()
	return viewReader(cfg, cc, file, f)
}

func viewReader(cfg *ViewConfig, cc *cli.Context, name string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	node, err := varshape.Literals(v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return encode.Encode(node, cc.Out, cfg.encOpts(cc)...)
}
