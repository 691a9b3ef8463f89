package export

import (
	"fmt"
	"math"
	"strings"
)

// CurveSVG renders one observable against another as an SVG polyline.
// Non-finite samples break the path so turning-point branches stay
// disconnected.
func CurveSVG(xs, ys []float64, width, height int, xLabel, yLabel string) string {
	if len(xs) < 2 || len(xs) != len(ys) {
		return ""
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	finite := 0
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsInf(xs[i], 0) || math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
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
	minX -= rangeX * 0.05
	maxX += rangeX * 0.05
	minY -= rangeY * 0.05
	maxY += rangeY * 0.05
	rangeX = maxX - minX
	rangeY = maxY - minY

	const margin = 46.0
	plotW := float64(width) - 2*margin
	plotH := float64(height) - 2*margin

	toX := func(v float64) float64 { return margin + (v-minX)/rangeX*plotW }
	toY := func(v float64) float64 { return margin + plotH - (v-minY)/rangeY*plotH }

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#333333"/>
`, width, height, width, height, margin, margin, plotW, plotH))

	sb.WriteString(`<path fill="none" stroke="#00ff00" stroke-width="1.5" d="`)
	pen := false
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsInf(xs[i], 0) || math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			pen = false
			continue
		}
		if pen {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", toX(xs[i]), toY(ys[i])))
		} else {
			sb.WriteString(fmt.Sprintf("M%.1f,%.1f", toX(xs[i]), toY(ys[i])))
			pen = true
		}
	}
	sb.WriteString("\"/>\n")

	sb.WriteString(fmt.Sprintf(`<g fill="#aaaaaa" font-family="monospace" font-size="11">
<text x="%.1f" y="%.1f" text-anchor="middle">%s</text>
<text x="%.1f" y="%.1f" text-anchor="middle" transform="rotate(-90 %.1f %.1f)">%s</text>
<text x="%.1f" y="%.1f" text-anchor="start">%.4g</text>
<text x="%.1f" y="%.1f" text-anchor="end">%.4g</text>
<text x="%.1f" y="%.1f" text-anchor="end">%.4g</text>
<text x="%.1f" y="%.1f" text-anchor="end">%.4g</text>
</g>
</svg>`,
		margin+plotW/2, float64(height)-12, xmlEscape(xLabel),
		14.0, margin+plotH/2, 14.0, margin+plotH/2, xmlEscape(yLabel),
		margin, margin+plotH+16, minX,
		margin+plotW, margin+plotH+16, maxX,
		margin-4, margin+plotH, minY,
		margin-4, margin+10, maxY))

	return sb.String()
}

func xmlEscape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
