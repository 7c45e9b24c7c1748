package main

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/born-ml/ndkernel/backend/cpu"
	"github.com/born-ml/ndkernel/tensor"
)

type benchConfig struct {
	Size  int
	Iters int
	Seed  int64
}

// benchResult holds per-call timings and the largest elementwise gap
// between the naive and tiled products.
type benchResult struct {
	Size    int
	Naive   time.Duration
	Tiled   time.Duration
	MaxDiff float64
}

func newBenchCmd() *cobra.Command {
	cfg := benchConfig{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare naive and tiled matmul on random square matrices",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := runBench(cfg)
			if err != nil {
				return err
			}
			slog.Info("matmul benchmark",
				"size", res.Size,
				"naive", res.Naive,
				"tiled", res.Tiled,
				"speedup", fmt.Sprintf("%.2fx", float64(res.Naive)/float64(max(res.Tiled, 1))),
				"max_abs_diff", res.MaxDiff,
			)
			return nil
		},
	}
	cmd.Flags().IntVar(&cfg.Size, "size", 256, "matrix size (rounded up to a multiple of the tile width)")
	cmd.Flags().IntVar(&cfg.Iters, "iters", 10, "iterations per kernel")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", 1, "random seed")
	return cmd
}

func runBench(cfg benchConfig) (benchResult, error) {
	if cfg.Size <= 0 || cfg.Iters <= 0 {
		return benchResult{}, fmt.Errorf("bench: size and iters must be positive, got %d and %d", cfg.Size, cfg.Iters)
	}
	n := (cfg.Size + cpu.Tile - 1) / cpu.Tile * cpu.Tile
	slog.Debug("allocating operands", "n", n, "bytes", 6*n*n*tensor.ElemSize)

	bufs := make([]*tensor.Buffer, 6)
	for i := range bufs {
		buf, err := tensor.NewBuffer(n * n)
		if err != nil {
			return benchResult{}, fmt.Errorf("bench: %w", err)
		}
		bufs[i] = buf
	}
	a, b, naive, aTiled, bTiled, outTiled := bufs[0], bufs[1], bufs[2], bufs[3], bufs[4], bufs[5]

	rng := rand.New(rand.NewSource(cfg.Seed))
	for _, buf := range []*tensor.Buffer{a, b} {
		for i := range buf.Data() {
			buf.Data()[i] = rng.Float32()*2 - 1
		}
	}

	backend := cpu.New()
	backend.TileMatrix(a, aTiled, n, n)
	backend.TileMatrix(b, bTiled, n, n)

	res := benchResult{Size: n}
	res.Naive = timeIt(cfg.Iters, func() { backend.Matmul(a, b, naive, n, n, n) })
	res.Tiled = timeIt(cfg.Iters, func() { backend.MatmulTiled(aTiled, bTiled, outTiled, n, n, n) })

	// Reuse aTiled as scratch for the row-major tiled result.
	backend.UntileMatrix(outTiled, aTiled, n, n)
	for i, v := range naive.Data() {
		res.MaxDiff = math.Max(res.MaxDiff, math.Abs(float64(v-aTiled.Data()[i])))
	}
	return res, nil
}

func timeIt(iters int, f func()) time.Duration {
	start := time.Now()
	for range iters {
		f()
	}
	return time.Since(start) / time.Duration(iters)
}
