package main

import (
	"fmt"

	"edusphere-be/pkg/catalog"
	"edusphere-be/pkg/transcript"

	"github.com/fatih/color"
)

// Prints the compiled-in curriculum, a quick sanity check that every chapter
// carries a resolvable video reference.
func main() {
	header := color.New(color.FgCyan, color.Bold)
	chapterLine := color.New(color.FgWhite)
	warn := color.New(color.FgYellow)

	for _, subject := range catalog.Subjects() {
		header.Printf("%s\n", subject.Name)

		for i, ch := range subject.Chapters {
			videoID, err := transcript.ExtractVideoID(ch.VideoRef)
			if err != nil {
				warn.Printf("  %d. %s (no video id: %v)\n", i+1, ch.Title, err)
				continue
			}
			chapterLine.Printf("  %d. %s [video: %s]\n", i+1, ch.Title, videoID)
		}
		fmt.Println()
	}
}
