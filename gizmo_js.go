//go:build js

package main

import (
	"fmt"
	"log/slog"
	"syscall/js"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/seqsense/pcgol/mat"
	webgl "github.com/seqsense/webgl-go"
)

var faceColors = [6]string{
	FaceFront:  "#4C6EF5",
	FaceBack:   "#364FC7",
	FaceLeft:   "#2B8A3E",
	FaceRight:  "#40C057",
	FaceTop:    "#E8590C",
	FaceBottom: "#D9480F",
}

// gizmoRenderer owns the isolated gizmo scene: an orthographic camera
// with a fixed pixel footprint and the labeled cube mesh with an edge
// overlay. Each animation frame it mirrors the main camera orientation
// through gizmoOrientation.
type gizmoRenderer struct {
	gl     *webgl.WebGL
	canvas js.Value
	logger *slog.Logger

	getOrientation func() mgl32.Quat

	faceProgram webgl.Program
	edgeProgram webgl.Program

	faceBuf webgl.Buffer
	edgeBuf webgl.Buffer

	faceModelView webgl.Location
	faceProj      webgl.Location
	faceTexture   webgl.Location
	edgeModelView webgl.Location
	edgeProj      webgl.Location

	textures [6]webgl.Texture

	rafFn    js.Func
	rafID    js.Value
	started  bool
	running  bool
	disposed bool
}

// newGizmoRenderer initializes the gizmo scene on canvas. The canvas is
// resized to size x size device pixels. An initialization failure is
// returned to the caller; the rest of the widget keeps working without
// the gizmo.
func newGizmoRenderer(canvas js.Value, size int, getOrientation func() mgl32.Quat, logger *slog.Logger) (*gizmoRenderer, error) {
	gl, err := webgl.New(canvas)
	if err != nil {
		return nil, fmt.Errorf("gizmo context: %w", err)
	}
	showDebugInfo(gl, logger)

	r := &gizmoRenderer{
		gl:             gl,
		canvas:         canvas,
		logger:         logger,
		getOrientation: getOrientation,
		rafID:          js.Undefined(),
	}

	canvas.Set("width", size)
	canvas.Set("height", size)

	vsFace, err := initVertexShader(gl, vsFaceSource)
	if err != nil {
		return nil, err
	}
	fsFace, err := initFragmentShader(gl, fsFaceSource)
	if err != nil {
		return nil, err
	}
	r.faceProgram, err = linkShaders(gl, vsFace, fsFace)
	if err != nil {
		return nil, err
	}

	vsEdge, err := initVertexShader(gl, vsEdgeSource)
	if err != nil {
		return nil, err
	}
	fsEdge, err := initFragmentShader(gl, fsEdgeSource)
	if err != nil {
		return nil, err
	}
	r.edgeProgram, err = linkShaders(gl, vsEdge, fsEdge)
	if err != nil {
		return nil, err
	}

	r.faceModelView = gl.GetUniformLocation(r.faceProgram, "uModelViewMatrix")
	r.faceProj = gl.GetUniformLocation(r.faceProgram, "uProjectionMatrix")
	r.faceTexture = gl.GetUniformLocation(r.faceProgram, "uFaceTexture")
	r.edgeModelView = gl.GetUniformLocation(r.edgeProgram, "uModelViewMatrix")
	r.edgeProj = gl.GetUniformLocation(r.edgeProgram, "uProjectionMatrix")

	r.faceBuf = gl.CreateBuffer()
	gl.BindBuffer(gl.ARRAY_BUFFER, r.faceBuf)
	gl.BufferData(gl.ARRAY_BUFFER, webgl.Float32ArrayBuffer(cubeVertexData()), gl.STATIC_DRAW)

	r.edgeBuf = gl.CreateBuffer()
	gl.BindBuffer(gl.ARRAY_BUFFER, r.edgeBuf)
	gl.BufferData(gl.ARRAY_BUFFER, webgl.Float32ArrayBuffer(cubeEdgeData()), gl.STATIC_DRAW)

	for f := FaceFront; f <= FaceBottom; f++ {
		r.textures[f] = r.makeFaceTexture(f.String(), faceColors[f])
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.ClearColor(0, 0, 0, 0)
	gl.ClearDepth(1)
	gl.Viewport(0, 0, size, size)

	// The cube is watched from +Z looking down -Z; the flipped far/near
	// pair keeps nearer fragments at smaller depth.
	proj := mat.Orthographic(
		-gizmoHalfExtent, gizmoHalfExtent,
		gizmoHalfExtent, -gizmoHalfExtent,
		-10, 10,
	)
	gl.UseProgram(r.faceProgram)
	gl.UniformMatrix4fv(r.faceProj, false, proj)
	gl.Uniform1i(r.faceTexture, 0)
	gl.UseProgram(r.edgeProgram)
	gl.UniformMatrix4fv(r.edgeProj, false, proj)

	return r, nil
}

// makeFaceTexture rasterizes a face label onto a 2D canvas and uploads
// it as a texture.
func (r *gizmoRenderer) makeFaceTexture(label, background string) webgl.Texture {
	const texSize = 128

	doc := js.Global().Get("document")
	cv := doc.Call("createElement", "canvas")
	cv.Set("width", texSize)
	cv.Set("height", texSize)
	ctx := cv.Call("getContext", "2d")
	ctx.Set("fillStyle", background)
	ctx.Call("fillRect", 0, 0, texSize, texSize)
	ctx.Set("fillStyle", "#FFFFFF")
	ctx.Set("font", "bold 28px sans-serif")
	ctx.Set("textAlign", "center")
	ctx.Set("textBaseline", "middle")
	ctx.Call("fillText", label, texSize/2, texSize/2)

	gl := r.gl
	tex := gl.CreateTexture()
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, gl.RGBA, gl.UNSIGNED_BYTE, cv)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	return tex
}

// Start begins the render loop. Each frame reads the live main camera
// orientation; the gizmo has its own loop independent of the host
// scene's.
func (r *gizmoRenderer) Start() {
	if r.running || r.disposed {
		return
	}
	r.started = true
	r.running = true
	r.rafFn = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if !r.running {
			return nil
		}
		r.drawFrame()
		r.rafID = js.Global().Call("requestAnimationFrame", r.rafFn)
		return nil
	})
	r.rafID = js.Global().Call("requestAnimationFrame", r.rafFn)
}

func (r *gizmoRenderer) drawFrame() {
	gl := r.gl
	model := quatToMat4(gizmoOrientation(r.getOrientation()))

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.faceProgram)
	gl.UniformMatrix4fv(r.faceModelView, false, model)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.faceBuf)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 5*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 5*4, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.ActiveTexture(gl.TEXTURE0)
	for f := FaceFront; f <= FaceBottom; f++ {
		gl.BindTexture(gl.TEXTURE_2D, r.textures[f])
		gl.DrawArrays(gl.TRIANGLES, int(f)*6, 6)
	}

	gl.UseProgram(r.edgeProgram)
	gl.UniformMatrix4fv(r.edgeModelView, false, model)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.edgeBuf)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.DrawArrays(gl.LINES, 0, 24)
}

// Dispose cancels the render loop, drops the callback into JS and
// releases the GL context so the face textures, buffers and programs
// are freed without waiting for canvas GC. It is idempotent and leaves
// no pending animation frame behind.
func (r *gizmoRenderer) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	r.running = false
	if r.started {
		if !r.rafID.IsUndefined() {
			js.Global().Call("cancelAnimationFrame", r.rafID)
			r.rafID = js.Undefined()
		}
		r.rafFn.Release()
	}
	if ext, ok := r.gl.GetExtension("WEBGL_lose_context"); ok {
		ext.Call("loseContext")
	}
}

// quatToMat4 converts an orientation quaternion to the column-major
// matrix layout shared by mgl32 and mat.
func quatToMat4(q mgl32.Quat) mat.Mat4 {
	m := q.Mat4()
	var out mat.Mat4
	copy(out[:], m[:])
	return out
}
