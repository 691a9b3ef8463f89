package viz

import (
	"fmt"
	"math"
	"strings"
)

// Curve renders ys against xs as a framed Braille chart. Non-finite
// samples break the curve so disconnected branches stay separate.
func Curve(xs, ys []float64, width, height int, xLabel, yLabel string) string {
	if len(xs) != len(ys) || len(xs) == 0 {
		return ""
	}
	if width < 8 {
		width = 8
	}
	if height < 4 {
		height = 4
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	finite := 0
	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			continue
		}
		finite++
		minX = math.Min(minX, xs[i])
		maxX = math.Max(maxX, xs[i])
		minY = math.Min(minY, ys[i])
		maxY = math.Max(maxY, ys[i])
	}
	if finite < 2 {
		return ""
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}

	c := NewCanvas(width, height)
	cw := width*2 - 1
	ch := height*4 - 1
	toX := func(v float64) int { return int(math.Round((v - minX) / rangeX * float64(cw))) }
	toY := func(v float64) int { return ch - int(math.Round((v-minY)/rangeY*float64(ch))) }

	pen := false
	var px, py int
	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			pen = false
			continue
		}
		x, y := toX(xs[i]), toY(ys[i])
		if pen {
			c.Line(px, py, x, y)
		} else {
			c.Set(x, y)
		}
		px, py = x, y
		pen = true
	}

	lines := strings.Split(strings.TrimRight(c.String(), "\n"), "\n")
	var sb strings.Builder
	for i, line := range lines {
		switch i {
		case 0:
			sb.WriteString(fmt.Sprintf("%10.4g ┤%s\n", maxY, line))
		case len(lines) - 1:
			sb.WriteString(fmt.Sprintf("%10.4g ┤%s\n", minY, line))
		default:
			sb.WriteString(strings.Repeat(" ", 10) + " │" + line + "\n")
		}
	}
	sb.WriteString(strings.Repeat(" ", 11) + "└" + strings.Repeat("─", width) + "\n")
	sb.WriteString(fmt.Sprintf("%s%-*.4g%*.4g\n", strings.Repeat(" ", 12), width/2, minX, width-width/2, maxX))
	if xLabel != "" || yLabel != "" {
		sb.WriteString(fmt.Sprintf("%s%s vs %s\n", strings.Repeat(" ", 12), yLabel, xLabel))
	}
	return sb.String()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
