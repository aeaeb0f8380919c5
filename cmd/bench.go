package cmd

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/otmanesabir/OpenRT/renderer"
)

// Bench renders the same composite at increasing tessellation densities
// and reports how intersection cost scales with the primitive count.
func Bench(ctx *cli.Context) error {
	setupLogging(ctx)

	op, err := parseOp(ctx.String("op"))
	if err != nil {
		return err
	}

	minSides := ctx.Int("min-sides")
	maxSides := ctx.Int("max-sides")
	if minSides < 3 {
		minSides = 3
	}
	if maxSides < minSides {
		maxSides = minSides
	}

	opts := renderer.Options{
		FrameW: uint32(ctx.Int("width")),
		FrameH: uint32(ctx.Int("height")),
	}

	type benchRow struct {
		nPrims  int
		elapsed int64
	}
	rows := make([]benchRow, 0, maxSides-minSides+1)

	for sides := minSides; sides <= maxSides; sides += 2 {
		sc, nPrims := demoScene(op, sides)

		r, err := renderer.NewDefault(sc, opts)
		if err != nil {
			return err
		}
		if err = r.Render(); err != nil {
			r.Close()
			return err
		}
		elapsed := r.Stats().RenderTime.Nanoseconds() / 1e6
		r.Close()

		logger.Infof("sides: %d, prims: %d, render time: %d ms", sides, nPrims, elapsed)
		rows = append(rows, benchRow{nPrims: nPrims, elapsed: elapsed})
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Primitives", "Render time (ms)"})
	for _, row := range rows {
		table.Append([]string{
			fmt.Sprintf("%d", row.nPrims),
			fmt.Sprintf("%d", row.elapsed),
		})
	}
	table.Render()
	logger.Noticef("%s benchmark\n%s", op, buf.String())

	csvFile := ctx.String("csv")
	if csvFile == "" {
		return nil
	}

	f, err := os.OpenFile(csvFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, row := range rows {
		if err = w.Write([]string{
			fmt.Sprintf("%d", row.nPrims),
			fmt.Sprintf("%d", row.elapsed),
		}); err != nil {
			return err
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return err
	}
	logger.Noticef("appended %d rows to %s", len(rows), csvFile)
	return nil
}
