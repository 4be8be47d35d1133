// Package glaccel implements accel.Device on an OpenGL 4.3 compute shader.
// The kernel carries its own copy of the demo scene; only camera geometry
// and sampling parameters cross the host boundary, per the accel contract.
package glaccel

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/spectralpath/raytracer/pkg/accel"
)

// Device is a stateless handle; each Render call owns its GL context for
// its full duration.
type Device struct{}

// New creates a new compute device handle.
func New() *Device {
	return &Device{}
}

// Render builds a hidden GL context on a locked OS thread, dispatches one
// compute pass over the whole image, and blocks until the pixel buffer and
// ray counter have been read back.
func (d *Device) Render(p accel.Params) ([]byte, uint64, error) {
	// GL contexts are bound to a single OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := glfw.Init(); err != nil {
		return nil, 0, fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(1, 1, "raytracer-accel-hidden", nil, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("glfw create window: %w", err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return nil, 0, fmt.Errorf("gl init: %w", err)
	}

	program, err := buildProgram(kernelSource)
	if err != nil {
		return nil, 0, err
	}
	defer gl.DeleteProgram(program)

	pixelCount := p.Width * p.Height

	// One vec4 per pixel; quantization happens host-side so it matches the
	// CPU strategies exactly.
	var pixelBuf uint32
	gl.GenBuffers(1, &pixelBuf)
	defer gl.DeleteBuffers(1, &pixelBuf)
	gl.BindBufferBase(gl.SHADER_STORAGE_BUFFER, 0, pixelBuf)
	gl.BufferData(gl.SHADER_STORAGE_BUFFER, pixelCount*4*4, nil, gl.DYNAMIC_READ)

	var rayBuf uint32
	gl.GenBuffers(1, &rayBuf)
	defer gl.DeleteBuffers(1, &rayBuf)
	gl.BindBufferBase(gl.SHADER_STORAGE_BUFFER, 1, rayBuf)
	rayCount := uint32(0)
	gl.BufferData(gl.SHADER_STORAGE_BUFFER, 4, gl.Ptr(&rayCount), gl.DYNAMIC_READ)

	gl.UseProgram(program)
	gl.Uniform1i(uniform(program, "uWidth"), int32(p.Width))
	gl.Uniform1i(uniform(program, "uHeight"), int32(p.Height))
	gl.Uniform1i(uniform(program, "uSamples"), int32(p.SamplesPerPixel))
	gl.Uniform1i(uniform(program, "uMaxDepth"), int32(p.MaxDepth))
	gl.Uniform1ui(uniform(program, "uSeed"), 0x9E3779B9)
	uniformVec3(program, "uCenter", p.Center.X, p.Center.Y, p.Center.Z)
	uniformVec3(program, "uPixel00", p.Pixel00.X, p.Pixel00.Y, p.Pixel00.Z)
	uniformVec3(program, "uDeltaU", p.DeltaU.X, p.DeltaU.Y, p.DeltaU.Z)
	uniformVec3(program, "uDeltaV", p.DeltaV.X, p.DeltaV.Y, p.DeltaV.Z)

	groupsX := uint32((p.Width + 15) / 16)
	groupsY := uint32((p.Height + 15) / 16)
	gl.DispatchCompute(groupsX, groupsY, 1)
	gl.MemoryBarrier(gl.SHADER_STORAGE_BARRIER_BIT | gl.BUFFER_UPDATE_BARRIER_BIT)

	colors := make([]float32, pixelCount*4)
	gl.BindBuffer(gl.SHADER_STORAGE_BUFFER, pixelBuf)
	gl.GetBufferSubData(gl.SHADER_STORAGE_BUFFER, 0, len(colors)*4, gl.Ptr(colors))

	gl.BindBuffer(gl.SHADER_STORAGE_BUFFER, rayBuf)
	gl.GetBufferSubData(gl.SHADER_STORAGE_BUFFER, 0, 4, gl.Ptr(&rayCount))

	pix := make([]byte, p.BufferSize())
	for i := 0; i < pixelCount; i++ {
		pix[i*3+0] = quantize(colors[i*4+0])
		pix[i*3+1] = quantize(colors[i*4+1])
		pix[i*3+2] = quantize(colors[i*4+2])
	}
	return pix, uint64(rayCount), nil
}

// quantize clamps a channel to [0, 0.999] and truncates to 8 bits, matching
// the CPU strategies.
func quantize(c float32) byte {
	if c < 0 {
		c = 0
	} else if c > 0.999 {
		c = 0.999
	}
	return byte(c * 256)
}

func uniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func uniformVec3(program uint32, name string, x, y, z float64) {
	gl.Uniform3f(uniform(program, name), float32(x), float32(y), float32(z))
}

func buildProgram(src string) (uint32, error) {
	shader, err := compileShader(src, gl.COMPUTE_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(shader)

	program := gl.CreateProgram()
	gl.AttachShader(program, shader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := make([]byte, logLen+1)
		gl.GetProgramInfoLog(program, logLen, nil, &infoLog[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link compute program: %s", infoLog)
	}
	return program, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &infoLog[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile compute shader: %s", infoLog)
	}
	return shader, nil
}
