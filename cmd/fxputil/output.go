package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/absoluteskid/fxputil-go/pkg"
	"github.com/absoluteskid/fxputil-go/pkg/fxp"
)

var (
	heading = color.New(color.FgCyan, color.Bold)
	success = color.New(color.FgGreen)
	warning = color.New(color.FgYellow)
)

func printInfo(info *pkg.Info) {
	_, _ = heading.Println(info.Path)
	fmt.Printf("  Plugin:   %s\n", info.PluginName)
	fmt.Printf("  Company:  %s\n", info.CompanyName)
	fmt.Printf("  Code:     %s\n", info.Code)
	fmt.Printf("  Version:  %d\n", info.Version)
	fmt.Printf("  Program:  %s\n", info.ProgramName)
	printLayout(info)
	fmt.Printf("  Size:     %s\n", humanize.Bytes(uint64(info.FileSize)))
	fmt.Printf("  Checksum: %s\n", info.Checksum)
	if info.SizeMismatch {
		_, _ = warning.Printf("  Note: declared byteSize %d does not match file length %d\n",
			info.DeclaredSize, info.FileSize)
	}
}

func printLayout(info *pkg.Info) {
	switch info.Kind {
	case fxp.KindChunk:
		fmt.Printf("  Layout:   %s (%s)\n", info.Kind, humanize.Bytes(uint64(info.ChunkBytes)))
	default:
		fmt.Printf("  Layout:   %s (%d params)\n", info.Kind, info.NumParams)
	}
}

func printComparison(cmp *pkg.Comparison) {
	printSide("File 1", cmp.A)
	printSide("File 2", cmp.B)

	_, _ = heading.Println("Comparison")
	if cmp.A != nil && cmp.B != nil {
		fmt.Printf("  Same code:    %v\n", cmp.SameCode)
		fmt.Printf("  Same plugin:  %v\n", cmp.SamePlugin)
		fmt.Printf("  Same company: %v\n", cmp.SameCompany)
	}
	fmt.Printf("  Bytes compared:  %d (file sizes %d / %d)\n",
		cmp.Report.Compared, cmp.Report.LenA, cmp.Report.LenB)
	fmt.Printf("  Different bytes: %d\n", len(cmp.Report.Diffs))

	if cmp.Report.Identical() {
		_, _ = success.Println("  No byte differences found")
		return
	}
	fmt.Println("  Byte differences (offset, file1, file2, diff):")
	for _, d := range cmp.Report.Diffs {
		fmt.Printf("    %6d: %3d vs %3d (diff: %+d)\n", d.Offset, d.A, d.B, d.Delta)
	}
}

func printSide(label string, info *pkg.Info) {
	_, _ = heading.Println(label)
	if info == nil {
		_, _ = warning.Println("  not a recognized preset, compared as raw bytes")
		return
	}
	fmt.Printf("  Path:    %s\n", info.Path)
	fmt.Printf("  Plugin:  %s\n", info.PluginName)
	fmt.Printf("  Company: %s\n", info.CompanyName)
	fmt.Printf("  Code:    %s\n", info.Code)
}

func printSetCodeResult(path, code string) {
	_, _ = success.Printf("✅ Code for %s set to %q\n", path, code)
}
