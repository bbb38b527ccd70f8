//go:build !tinygo

package boards

import (
	"go/build"
	"slices"
	"testing"
)

// A firmware build of this package must compile only the selected board's
// file, importing the shared vocabulary and that board's chip package.
func TestFirmwareBuildImportsOnlySelectedChip(t *testing.T) {
	for tag, chip := range map[string]string{
		"board_nucleo_f411": "blinky-go/hal/stm32f4",
		"board_black_pill":  "blinky-go/hal/stm32f4",
		"board_bluepill":    "blinky-go/hal/stm32f1",
		"board_nrf52840dk":  "blinky-go/hal/nrf52",
	} {
		ctx := build.Default
		ctx.BuildTags = []string{"tinygo", tag}
		pkg, err := ctx.ImportDir(".", 0)
		if err != nil {
			t.Fatalf("%s: %v", tag, err)
		}
		want := []string{"blinky-go/hal/board", chip}
		if !slices.Equal(pkg.Imports, want) {
			t.Fatalf("%s: firmware imports %v, want %v", tag, pkg.Imports, want)
		}
		for _, f := range pkg.GoFiles {
			if f == "catalog.go" {
				t.Fatalf("%s: catalog.go compiled into firmware", tag)
			}
		}
	}
}
