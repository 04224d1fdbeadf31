// Command swarm fills a window with animated per-pixel hash noise.
package main

import (
	"flag"
	"image/png"
	"log"
	"os"

	"github.com/swarmwall/swarm/noise"
	"github.com/swarmwall/swarm/wall"
)

func main() {
	var (
		width   = flag.Int("width", 800, "window width in pixels")
		height  = flag.Int("height", 600, "window height in pixels")
		title   = flag.String("title", "Swarm Wallpaper", "window title")
		preview = flag.String("preview", "", "render a single frame to this PNG instead of opening a window")
		frame   = flag.Uint("frame", 0, "frame index to render with -preview")
	)

	flag.Parse()

	if *preview != "" {
		writePreview(*preview, *width, *height, uint32(*frame))
		return
	}

	err := wall.Run(wall.RunOptions{
		WindowWidth:  *width,
		WindowHeight: *height,
		WindowTitle:  *title,
	})

	wall.Handle(err, "run %q", *title)
}

func writePreview(path string, width, height int, frame uint32) {
	img, err := noise.Render(width, height, frame)
	wall.Handle(err, "render preview")

	f, err := os.Create(path)
	wall.Handle(err, "create %s", path)
	defer f.Close()

	wall.Handle(png.Encode(f, img), "encode %s", path)

	log.Printf("Preview saved to %s (%dx%d, frame %d)", path, width, height, frame)
}
