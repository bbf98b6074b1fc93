package main

import (
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/varshape/go-varshape/encode"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='render schema trees in color'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) encOpts(cc *cli.Context) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	colored := cfg.Color
	if !colored && cc.Out == os.Stdout {
		colored = isatty.IsTerminal(os.Stdout.Fd())
	}
	if colored {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}
