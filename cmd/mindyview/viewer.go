package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/zurustar/mindy"
	"github.com/zurustar/mindy/internal/mlog/draw"
	"github.com/zurustar/mindy/internal/mlog/opcode"
)

// labelFace is the bitmap face used to render `draw print` labels, the
// same basicfont used by the teacher's title-selection screen.
var labelFace = text.NewGoXFace(basicfont.Face7x13)

// scale is the on-screen pixel multiplier; mlog display coordinates are
// tiny (tens to low hundreds of pixels), too small to read unscaled.
const scale = 6

// ticksPerFrame mirrors the host's own fixed step: one simulation tick per
// Update call, same as sched.Scheduler.Tick being driven once per host
// frame (spec.md's no-catch-up rule applies here too).
const ticksPerFrame = 1

// viewerGame is an ebiten.Game that ticks a mindy.Host once per frame and
// repaints the watched display building's last flush every Draw call.
// Grounded on the teacher's pkg/window.Game: a small struct holding
// simulation state plus whatever the render loop needs, with Update
// advancing the model and Draw painting it.
type viewerGame struct {
	host      *mindy.Host
	watched   mindy.Position
	width     int
	height    int
	log       *slog.Logger
	frame     int64
	lastBatch []draw.Command
}

func newViewerGame(host *mindy.Host, watched mindy.Position, width, height int, log *slog.Logger) *viewerGame {
	return &viewerGame{host: host, watched: watched, width: width, height: height, log: log}
}

func (g *viewerGame) Update() error {
	const msPerTick = 1000.0 / 60.0
	for i := 0; i < ticksPerFrame; i++ {
		g.host.Tick(float64(g.frame) * msPerTick)
		g.frame++
	}
	if batch := g.host.DisplayCommands(g.watched); batch != nil {
		g.lastBatch = batch
		g.log.Debug("display batch received", "frame", g.frame, "commands", len(batch))
	}
	return nil
}

func (g *viewerGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	renderBatch(screen, g.lastBatch, g.height)
}

func (g *viewerGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width * scale, g.height * scale
}

// renderState is the subset of `draw`'s sub-op sequence this viewer
// actually interprets: current stroke color and width. Affine transforms
// (translate/scale/rotate) aren't modeled — a debug viewer doesn't need
// to reproduce drawflush pixel-for-pixel, only legibly.
type renderState struct {
	col    color.Color
	stroke float32
}

// renderBatch paints one flushed draw.Command batch onto screen, flipping
// mlog's bottom-left-origin Y into ebiten's top-left-origin Y.
func renderBatch(screen *ebiten.Image, batch []draw.Command, canvasHeight int) {
	st := renderState{col: color.White, stroke: 1}
	for _, cmd := range batch {
		switch cmd.Sub {
		case opcode.DrawClear:
			r, g, b := cmd.Args[0].Num(), cmd.Args[1].Num(), cmd.Args[2].Num()
			screen.Fill(rgba(r, g, b, 255))
		case opcode.DrawColor:
			r, g, b, a := cmd.Args[0].Num(), cmd.Args[1].Num(), cmd.Args[2].Num(), cmd.Args[3].Num()
			st.col = rgba(r, g, b, a)
		case opcode.DrawCol:
			st.col = unpackColor(uint32(int64(cmd.Args[0].Num())))
		case opcode.DrawStroke:
			st.stroke = float32(cmd.Args[0].Num())
		case opcode.DrawLine:
			x1, y1, x2, y2 := flipArgs4(cmd, canvasHeight)
			vector.StrokeLine(screen, x1, y1, x2, y2, st.stroke*scale, st.col, true)
		case opcode.DrawRect:
			x, y, w, h := flipRectArgs(cmd, canvasHeight)
			vector.DrawFilledRect(screen, x, y, w, h, st.col, true)
		case opcode.DrawLineRect:
			x, y, w, h := flipRectArgs(cmd, canvasHeight)
			vector.StrokeRect(screen, x, y, w, h, st.stroke*scale, st.col, true)
		case opcode.DrawPoly, opcode.DrawLinePoly:
			drawPoly(screen, cmd, canvasHeight, st, cmd.Sub == opcode.DrawLinePoly)
		case opcode.DrawTriangle:
			drawTriangle(screen, cmd, canvasHeight, st)
		case opcode.DrawImage:
			// Sprite art isn't available to a headless core; draw a
			// marker at the image's anchor point instead.
			x, y := flipPoint(cmd.Args[0].Num(), cmd.Args[1].Num(), canvasHeight)
			vector.DrawFilledRect(screen, x-2, y-2, 4, 4, st.col, false)
		case opcode.DrawPrint:
			drawLabel(screen, cmd, canvasHeight, st.col)
		case opcode.DrawTranslate, opcode.DrawScale, opcode.DrawRotate, opcode.DrawReset:
			// Not modeled; see the package doc comment.
		}
	}
}

// unpackColor decodes `draw col`'s single packed-RGBA argument, laid out
// the same way Mindustry's Color.rgba8888() packs it: 0xRRGGBBAA.
func unpackColor(packed uint32) color.Color {
	return color.RGBA{
		R: uint8(packed >> 24),
		G: uint8(packed >> 16),
		B: uint8(packed >> 8),
		A: uint8(packed),
	}
}

// drawLabel renders a `draw print` command. mlog's print draws whatever
// text the processor's print buffer holds at the time, but that text is
// already consumed by printflush before the batch reaches a display; all
// this viewer has left is the command's own x/y/align args, so it labels
// the anchor point with its coordinates instead of the vanished string.
func drawLabel(screen *ebiten.Image, cmd draw.Command, canvasHeight int, col color.Color) {
	x, y := flipPoint(cmd.Args[0].Num(), cmd.Args[1].Num(), canvasHeight)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, fmt.Sprintf("(%.0f,%.0f)", cmd.Args[0].Num(), cmd.Args[1].Num()), labelFace, op)
}

func rgba(r, g, b, a float64) color.Color {
	clamp := func(f float64) uint8 {
		if f < 0 {
			return 0
		}
		if f > 255 {
			return 255
		}
		return uint8(f)
	}
	return color.RGBA{clamp(r), clamp(g), clamp(b), clamp(a)}
}

func flipPoint(x, y float64, canvasHeight int) (float32, float32) {
	return float32(x) * scale, float32(canvasHeight) - float32(y)*scale
}

func flipArgs4(cmd draw.Command, canvasHeight int) (float32, float32, float32, float32) {
	x1, y1 := flipPoint(cmd.Args[0].Num(), cmd.Args[1].Num(), canvasHeight)
	x2, y2 := flipPoint(cmd.Args[2].Num(), cmd.Args[3].Num(), canvasHeight)
	return x1, y1, x2, y2
}

func flipRectArgs(cmd draw.Command, canvasHeight int) (float32, float32, float32, float32) {
	x, y := flipPoint(cmd.Args[0].Num(), cmd.Args[1].Num()+cmd.Args[3].Num(), canvasHeight)
	w := float32(cmd.Args[2].Num()) * scale
	h := float32(cmd.Args[3].Num()) * scale
	return x, y, w, h
}

func drawPoly(screen *ebiten.Image, cmd draw.Command, canvasHeight int, st renderState, outline bool) {
	cx, cy := cmd.Args[0].Num(), cmd.Args[1].Num()
	sides := int(cmd.Args[2].Num())
	radius := cmd.Args[3].Num()
	rotation := cmd.Args[4].Num()
	if sides < 3 {
		return
	}
	var path vector.Path
	for i := 0; i <= sides; i++ {
		angle := rotation*math.Pi/180 + 2*math.Pi*float64(i)/float64(sides)
		x, y := flipPoint(cx+radius*math.Cos(angle), cy+radius*math.Sin(angle), canvasHeight)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	strokeOrFillPath(screen, &path, st, outline)
}

func drawTriangle(screen *ebiten.Image, cmd draw.Command, canvasHeight int, st renderState) {
	var path vector.Path
	x1, y1 := flipPoint(cmd.Args[0].Num(), cmd.Args[1].Num(), canvasHeight)
	x2, y2 := flipPoint(cmd.Args[2].Num(), cmd.Args[3].Num(), canvasHeight)
	x3, y3 := flipPoint(cmd.Args[4].Num(), cmd.Args[5].Num(), canvasHeight)
	path.MoveTo(x1, y1)
	path.LineTo(x2, y2)
	path.LineTo(x3, y3)
	path.Close()
	strokeOrFillPath(screen, &path, st, false)
}

func strokeOrFillPath(screen *ebiten.Image, path *vector.Path, st renderState, outline bool) {
	if outline {
		vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: st.stroke * scale})
		paintPath(screen, vs, is, st.col)
		return
	}
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	paintPath(screen, vs, is, st.col)
}

func paintPath(screen *ebiten.Image, vs []ebiten.Vertex, is []uint16, col color.Color) {
	r, g, b, a := col.RGBA()
	for i := range vs {
		vs[i].ColorR = float32(r) / 65535.0
		vs[i].ColorG = float32(g) / 65535.0
		vs[i].ColorB = float32(b) / 65535.0
		vs[i].ColorA = float32(a) / 65535.0
	}
	screen.DrawTriangles(vs, is, whitePixel, nil)
}

// whitePixel is a 1x1 white image used as the fill source for
// vector-path triangles, same trick as the teacher's emptyImage.
var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return img
}()
