package ui

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/pterm/pterm"
)

const bannerText = `
     ██╗ ██████╗ ██████╗ ██████╗  █████╗ ███████╗██╗  ██╗
     ██║██╔═══██╗██╔══██╗██╔══██╗██╔══██╗██╔════╝██║  ██║
     ██║██║   ██║██████╔╝██║  ██║███████║███████╗███████║
██   ██║██║   ██║██╔══██╗██║  ██║██╔══██║╚════██║██╔══██║
╚█████╔╝╚██████╔╝██████╔╝██████╔╝██║  ██║███████║██║  ██║
 ╚════╝  ╚═════╝ ╚═════╝ ╚═════╝ ╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝
 job postings, summarized
`

// ColorizeText fades the input text between two random colors
func ColorizeText(text string) string {
	random := rand.New(rand.NewSource(time.Now().UnixNano()))

	startColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))
	endColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))

	chars := []rune(text)
	if len(chars) < 2 {
		return text
	}

	half := len(chars) / 2
	var colored string
	for i, ch := range chars {
		colored += startColor.Fade(0, float32(len(chars)), float32(i%half), endColor).Sprint(string(ch))
	}
	return colored
}

// PrintBanner writes the application banner unless silenced
func PrintBanner(w io.Writer, silence bool) {
	if silence {
		return
	}
	fmt.Fprintln(w, ColorizeText(bannerText))
}
