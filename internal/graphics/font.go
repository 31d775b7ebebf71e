package graphics

import (
	"fmt"
	"image"
	"image/draw"
	"math"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontCharacter describes a single character's placement and metrics within the atlas
type FontCharacter struct {
	// Pixel coordinates of the glyph in the atlas texture (top-left origin)
	AtlasX float32
	AtlasY float32
	Width  float32
	Height float32
	// Offset from the pen position on the baseline
	BearingX float32
	BearingY float32
	Advance  int
}

// FontAtlasInfo contains the OpenGL texture and per-glyph metadata
type FontAtlasInfo struct {
	TextureID  uint32
	AtlasW     int
	AtlasH     int
	LineHeight int
	Characters map[rune]FontCharacter
}

const (
	atlasWidth   = 512
	atlasPadding = 1
	firstRune    = rune(32)
	lastRune     = rune(255)
)

// BuildFontAtlas bakes printable ASCII and Latin-1 glyphs of a TrueType or
// OpenType font into a single-channel texture at fontPixels size.
func BuildFontAtlas(fontPath string, fontPixels int) (*FontAtlasInfo, error) {
	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	f, err := opentype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(fontPixels), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer func() { _ = face.Close() }()

	atlasH := packedHeight(face)
	atlasImg := image.NewAlpha(image.Rect(0, 0, atlasWidth, atlasH))
	characters := make(map[rune]FontCharacter, int(lastRune-firstRune)+1)

	offsetX, offsetY, rowHeight := 0, 0, 0
	for r := firstRune; r <= lastRune; r++ {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok || mask == nil {
			continue
		}
		fc := FontCharacter{
			BearingX: float32(dr.Min.X),
			BearingY: float32(-dr.Min.Y),
			Advance:  int(math.Round(float64(advance) / 64.0)),
		}

		gw, gh := dr.Dx(), dr.Dy()
		if gw > 0 && gh > 0 {
			if offsetX+gw > atlasWidth {
				offsetX = 0
				offsetY += rowHeight + atlasPadding
				rowHeight = 0
			}
			draw.Draw(atlasImg, image.Rect(offsetX, offsetY, offsetX+gw, offsetY+gh), mask, maskp, draw.Src)

			fc.AtlasX = float32(offsetX)
			fc.AtlasY = float32(offsetY)
			fc.Width = float32(gw)
			fc.Height = float32(gh)

			offsetX += gw + atlasPadding
			if gh > rowHeight {
				rowHeight = gh
			}
		}
		characters[r] = fc
	}

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(atlasWidth), int32(atlasH), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(atlasImg.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)

	return &FontAtlasInfo{
		TextureID:  texture,
		AtlasW:     atlasWidth,
		AtlasH:     atlasH,
		LineHeight: face.Metrics().Height.Ceil(),
		Characters: characters,
	}, nil
}

// packedHeight runs the row packer without drawing and rounds the result up
// to a power of two.
func packedHeight(face font.Face) int {
	offsetX, used, rowHeight := 0, 0, 0
	for r := firstRune; r <= lastRune; r++ {
		dr, mask, _, _, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok || mask == nil || dr.Dx() == 0 || dr.Dy() == 0 {
			continue
		}
		if offsetX+dr.Dx() > atlasWidth {
			offsetX = 0
			used += rowHeight + atlasPadding
			rowHeight = 0
		}
		offsetX += dr.Dx() + atlasPadding
		if dr.Dy() > rowHeight {
			rowHeight = dr.Dy()
		}
	}
	used += rowHeight

	h := 1
	for h < used {
		h <<= 1
	}
	return h
}

// FontRenderer renders strings using a prebuilt atlas in window pixel space
type FontRenderer struct {
	atlas       *FontAtlasInfo
	shader      *Shader
	projection  mgl32.Mat4
	vao         uint32
	vbo         uint32
	maxCharsCap int
}

// NewFontRenderer creates the renderer and loads the font shader from shadersDir
func NewFontRenderer(atlas *FontAtlasInfo, shadersDir string, width, height int) (*FontRenderer, error) {
	if atlas == nil || len(atlas.Characters) == 0 {
		return nil, fmt.Errorf("invalid font atlas")
	}
	shader, err := NewShader(shadersDir, "font")
	if err != nil {
		return nil, err
	}
	fr := &FontRenderer{
		atlas:       atlas,
		shader:      shader,
		maxCharsCap: 256,
	}
	fr.SetViewport(width, height)
	fr.initGL()
	return fr, nil
}

func (fr *FontRenderer) initGL() {
	gl.GenVertexArrays(1, &fr.vao)
	gl.GenBuffers(1, &fr.vbo)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	// 6 verts per char, 4 floats per vert
	capFloats := fr.maxCharsCap * 6 * 4
	gl.BufferData(gl.ARRAY_BUFFER, capFloats*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 4, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// SetViewport rebuilds the pixel-space projection (top-left origin)
func (fr *FontRenderer) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	fr.projection = mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
}

// LineHeight returns the font's line spacing at the given scale
func (fr *FontRenderer) LineHeight(scale float32) float32 {
	return float32(fr.atlas.LineHeight) * scale
}

// Render draws text with its baseline starting at (x, y) in window pixels
func (fr *FontRenderer) Render(text string, x, y, scale float32, color mgl32.Vec3) {
	fr.RenderLines([]string{text}, x, y, 0, scale, color)
}

// RenderLines draws multiple lines in one draw call. Each line after the
// first is lineStep pixels below the previous one.
func (fr *FontRenderer) RenderLines(lines []string, x, yStart, lineStep, scale float32, color mgl32.Vec3) {
	if len(lines) == 0 {
		return
	}

	totalChars := 0
	for _, line := range lines {
		totalChars += len([]rune(line))
	}
	vertices := make([]float32, 0, totalChars*6*4)
	y := yStart
	for _, line := range lines {
		if line != "" {
			vertices = fr.appendVertices(vertices, []rune(line), x, y, scale)
		}
		y += lineStep
	}
	if len(vertices) == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	fr.shader.Use()
	fr.shader.SetVector3("textColor", color)
	fr.shader.SetMatrix4("projection", fr.projection)
	fr.shader.SetInt("text", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, fr.atlas.TextureID)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)

	// Orphan before the update to avoid stalling on the previous draw
	sz := len(vertices) * 4
	gl.BufferData(gl.ARRAY_BUFFER, sz, nil, gl.DYNAMIC_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, sz, gl.Ptr(vertices))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(vertices)/4))

	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
}

// Measure returns the width and the tallest glyph height of text at scale
func (fr *FontRenderer) Measure(text string, scale float32) (float32, float32) {
	var width, maxH float32
	for _, r := range text {
		fc, ok := fr.atlas.Characters[r]
		if !ok {
			width += float32(fr.atlas.Characters[' '].Advance) * scale
			continue
		}
		width += float32(fc.Advance) * scale
		if fc.Height*scale > maxH {
			maxH = fc.Height * scale
		}
	}
	return width, maxH
}

// Delete releases the atlas texture and buffers
func (fr *FontRenderer) Delete() {
	if fr.vao != 0 {
		gl.DeleteVertexArrays(1, &fr.vao)
	}
	if fr.vbo != 0 {
		gl.DeleteBuffers(1, &fr.vbo)
	}
	if fr.atlas != nil && fr.atlas.TextureID != 0 {
		gl.DeleteTextures(1, &fr.atlas.TextureID)
		fr.atlas.TextureID = 0
	}
	fr.shader.Delete()
}

func (fr *FontRenderer) appendVertices(dst []float32, chars []rune, x, y, scale float32) []float32 {
	for _, r := range chars {
		fc, ok := fr.atlas.Characters[r]
		if !ok {
			x += float32(fr.atlas.Characters[' '].Advance) * scale
			continue
		}
		if fc.Width > 0 && fc.Height > 0 {
			dst = fr.appendQuad(dst, fc, x, y, scale)
		}
		x += float32(fc.Advance) * scale
	}
	return dst
}

func (fr *FontRenderer) appendQuad(dst []float32, fc FontCharacter, x, y, scale float32) []float32 {
	xPos := x + fc.BearingX*scale
	yPos := y - fc.BearingY*scale
	w := fc.Width * scale
	h := fc.Height * scale

	u0 := fc.AtlasX / float32(fr.atlas.AtlasW)
	v0 := fc.AtlasY / float32(fr.atlas.AtlasH)
	u1 := u0 + fc.Width/float32(fr.atlas.AtlasW)
	v1 := v0 + fc.Height/float32(fr.atlas.AtlasH)

	return append(dst,
		xPos, yPos+h, u0, v1,
		xPos, yPos, u0, v0,
		xPos+w, yPos, u1, v0,

		xPos, yPos+h, u0, v1,
		xPos+w, yPos, u1, v0,
		xPos+w, yPos+h, u1, v1,
	)
}
