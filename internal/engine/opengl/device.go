// Package opengl implements gpu.Device on an OpenGL 4.1 core context.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/compose/internal/engine/gpu"
	"github.com/Faultbox/compose/internal/engine/shader"
	"github.com/Faultbox/compose/internal/logger"
	"github.com/Faultbox/compose/pkg/math"
)

// floats per vertex: position xy + uv
const vertexStride = 4

// Device draws through a single streaming vertex buffer and one program.
// It must be created and used on the thread owning the GL context.
type Device struct {
	program *shader.Program
	vao     uint32
	vbo     uint32
	white   uint32

	uTransform int32
	uColor     int32
	uTexture   int32

	bound gpu.FramebufferID
}

var _ gpu.Device = (*Device)(nil)

// New initializes GL function pointers and builds the draw pipeline.
// A GL context must be current.
func New() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	prog, err := shader.Compile(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("compiling draw program: %w", err)
	}

	d := &Device{
		program:    prog,
		uTransform: prog.Uniform("uTransform"),
		uColor:     prog.Uniform("uColor"),
		uTexture:   prog.Uniform("uTexture"),
	}
	d.createBuffers()
	d.white = uint32(d.CreateTexture(1, 1, []byte{255, 255, 255, 255}, gpu.FilterNearest))

	logger.Debug("draw pipeline ready",
		zap.Uint32("program", prog.ID()),
		zap.Uint32("vao", d.vao),
		zap.Uint32("vbo", d.vbo),
	)
	return d, nil
}

func (d *Device) createBuffers() {
	gl.GenVertexArrays(1, &d.vao)
	gl.GenBuffers(1, &d.vbo)

	gl.BindVertexArray(d.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)

	stride := int32(vertexStride * 4)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 2*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
}

// Close releases the pipeline objects. Textures and framebuffers created
// through d are owned by their callers.
func (d *Device) Close() {
	if d.white != 0 {
		gl.DeleteTextures(1, &d.white)
		d.white = 0
	}
	if d.vbo != 0 {
		gl.DeleteBuffers(1, &d.vbo)
		d.vbo = 0
	}
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
	if d.program != nil {
		d.program.Delete()
		d.program = nil
	}
}

func (d *Device) CreateTexture(width, height int, pixels []byte, filter gpu.Filter) gpu.TextureID {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	var data unsafe.Pointer
	if len(pixels) > 0 {
		data = gl.Ptr(pixels)
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, data)

	f := int32(gl.LINEAR)
	if filter == gpu.FilterNearest {
		f = gl.NEAREST
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, f)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, f)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return gpu.TextureID(id)
}

func (d *Device) DeleteTexture(id gpu.TextureID) {
	tex := uint32(id)
	gl.DeleteTextures(1, &tex)
}

func (d *Device) CreateFramebuffer() gpu.FramebufferID {
	var id uint32
	gl.GenFramebuffers(1, &id)
	return gpu.FramebufferID(id)
}

func (d *Device) DeleteFramebuffer(id gpu.FramebufferID) {
	if d.bound == id {
		d.BindFramebuffer(gpu.DefaultFramebuffer, 0, 0)
	}
	fbo := uint32(id)
	gl.DeleteFramebuffers(1, &fbo)
}

func (d *Device) CreateRenderbuffer(width, height int) gpu.RenderbufferID {
	var id uint32
	gl.GenRenderbuffers(1, &id)
	gl.BindRenderbuffer(gl.RENDERBUFFER, id)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH24_STENCIL8, int32(width), int32(height))
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
	return gpu.RenderbufferID(id)
}

func (d *Device) DeleteRenderbuffer(id gpu.RenderbufferID) {
	rbo := uint32(id)
	gl.DeleteRenderbuffers(1, &rbo)
}

func (d *Device) AttachColorTexture(fb gpu.FramebufferID, tex gpu.TextureID) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(fb))
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, uint32(tex), 0)
	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(d.bound))
}

func (d *Device) AttachDepthStencil(fb gpu.FramebufferID, rb gpu.RenderbufferID) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(fb))
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_STENCIL_ATTACHMENT, gl.RENDERBUFFER, uint32(rb))
	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(d.bound))
}

func (d *Device) FramebufferStatus(fb gpu.FramebufferID) error {
	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(fb))
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(d.bound))
	if status != gl.FRAMEBUFFER_COMPLETE {
		return fmt.Errorf("status 0x%x", status)
	}
	return nil
}

func (d *Device) BindFramebuffer(fb gpu.FramebufferID, width, height int) {
	d.bound = fb
	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(fb))
	if width > 0 && height > 0 {
		gl.Viewport(0, 0, int32(width), int32(height))
	}
}

func (d *Device) Clear(c math.Vec4) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)
}

func (d *Device) Draw(call gpu.DrawCall) {
	if len(call.Vertices) == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	applyBlend(call.Blend)

	d.program.Use()
	gl.UniformMatrix4fv(d.uTransform, 1, false, call.Transform.Ptr())
	gl.Uniform4f(d.uColor, call.Color[0], call.Color[1], call.Color[2], call.Color[3])
	gl.Uniform1i(d.uTexture, 0)

	tex := uint32(call.Texture)
	if tex == 0 {
		tex = d.white
	}
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	gl.BindVertexArray(d.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	// gpu.Vertex is four packed float32s, matching vertexStride.
	gl.BufferData(gl.ARRAY_BUFFER, len(call.Vertices)*vertexStride*4, unsafe.Pointer(&call.Vertices[0]), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(call.Vertices)))

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}
