package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/born-ml/ndkernel/backend/cpu"
	"github.com/born-ml/ndkernel/tensor"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print backend parameters and detected CPU features",
		Run: func(cmd *cobra.Command, _ []string) {
			backend := cpu.New()
			f := cpu.DetectFeatures()
			w := cmd.OutOrStdout()

			simd := "none"
			if len(f.SIMD) > 0 {
				simd = strings.Join(f.SIMD, " ")
			}

			fmt.Fprintf(w, "Device:       %s\n", backend.Name())
			fmt.Fprintf(w, "Tile:         %dx%d\n", backend.TileSize(), backend.TileSize())
			fmt.Fprintf(w, "Alignment:    %d bytes\n", tensor.Alignment)
			fmt.Fprintf(w, "GOOS/GOARCH:  %s/%s\n", runtime.GOOS, f.Arch)
			fmt.Fprintf(w, "NumCPU:       %d\n", runtime.NumCPU())
			fmt.Fprintf(w, "Cache line:   %d bytes\n", f.CacheLine)
			fmt.Fprintf(w, "SIMD:         %s\n", simd)
			fmt.Fprintf(w, "Vector width: %d bytes (tile row fits: %v)\n", f.VectorBytes, f.TileFitsVector())
		},
	}
}
