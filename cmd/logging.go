package cmd

import (
	"github.com/urfave/cli"

	"github.com/otmanesabir/OpenRT/log"
)

var logger = log.New("openrt")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
