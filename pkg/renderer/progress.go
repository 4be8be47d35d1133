package renderer

import (
	"strings"
	"sync"

	"github.com/spectralpath/raytracer/pkg/core"
)

const progressBarWidth = 50

// progress tracks completed rows across render workers. The counter and the
// redraw are guarded by one mutex, so concurrent workers never interleave
// their output.
type progress struct {
	mu     sync.Mutex
	logger core.Logger
	done   int
	total  int
	frame  int
}

func newProgress(logger core.Logger, total int) *progress {
	return &progress{logger: logger, total: total}
}

var spinner = [...]byte{'|', '/', '-', '\\'}

// rowDone records one completed row and redraws the bar in place.
func (p *progress) rowDone() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.done++
	fraction := float64(p.done) / float64(p.total)
	filled := int(progressBarWidth * fraction)

	p.logger.Printf("\rRendering: %c [%s%s] %3d%%",
		spinner[p.frame%len(spinner)],
		strings.Repeat("█", filled),
		strings.Repeat("░", progressBarWidth-filled),
		int(fraction*100))
	p.frame++
}
