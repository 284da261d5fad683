// Command spinny-gl previews a spinning shape in an OpenGL window, using the
// same rotation as the terminal renderer.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"spinny/anim"
	"spinny/shapes"
	"spinny/solid"
)

const (
	width  = 800
	height = 600
	title  = "spinny (OpenGL)"

	// viewRadius is the half-height of the orthographic view volume, in
	// object units. It fits the corner of a rotated ±100 cube.
	viewRadius = 200
)

var (
	vertexShaderSource = `
		#version 410
		in vec3 vp;
		uniform mat4 mvp;
		void main() {
			gl_Position = mvp * vec4(vp, 1.0);
		}
	` + "\x00"

	fragmentShaderSource = `
		#version 410
		out vec4 frag_colour;
		void main() {
			frag_colour = vec4(1, 1, 0, 1); // Yellow
		}
	` + "\x00"
)

func main() {
	runtime.LockOSThread()

	cfg := anim.DefaultConfig()
	objPath := flag.String("obj", "", "Wavefront OBJ file to draw instead of a built-in shape.")
	flag.Float64Var(&cfg.ThetaX, "x", cfg.ThetaX, "Rotation around the X axis per frame, in radians.")
	flag.Float64Var(&cfg.ThetaY, "y", cfg.ThetaY, "Rotation around the Y axis per frame, in radians.")
	flag.Float64Var(&cfg.ThetaZ, "z", cfg.ThetaZ, "Rotation around the Z axis per frame, in radians.")
	flag.Parse()

	var (
		object solid.Solid
		err    error
	)
	if *objPath != "" {
		object, err = shapes.LoadOBJ(*objPath)
	} else {
		name := flag.Arg(0)
		if name == "" {
			name = "cube"
		}
		object, err = shapes.Lookup(name)
	}
	if err != nil {
		log.Fatalln(err)
	}

	if err := glfw.Init(); err != nil {
		log.Fatalln("failed to initialize glfw:", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		log.Fatalln("failed to create window:", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		log.Fatalln("failed to initialize gl:", err)
	}
	log.Println("OpenGL version", gl.GoStr(gl.GetString(gl.VERSION)))

	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		log.Fatalln(err)
	}
	gl.UseProgram(program)
	mvpUniform := gl.GetUniformLocation(program, gl.Str("mvp\x00"))

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	vertAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vp\x00")))
	gl.EnableVertexAttribArray(vertAttrib)
	gl.VertexAttribPointer(vertAttrib, 3, gl.FLOAT, false, 0, gl.PtrOffset(0))

	gl.ClearColor(0.1, 0.1, 0.1, 1.0)

	// Orthographic, like the terminal renderer: depth is dropped.
	aspect := float32(width) / float32(height)
	mvp := mgl32.Ortho(-viewRadius*aspect, viewRadius*aspect, -viewRadius, viewRadius, -viewRadius, viewRadius)
	gl.UniformMatrix4fv(mvpUniform, 1, false, &mvp[0])

	lastFpsTime := glfw.GetTime()
	frameCount := 0
	var lines []float32

	for !window.ShouldClose() {
		currentTime := glfw.GetTime()
		frameCount++
		if currentTime-lastFpsTime >= 1.0 {
			window.SetTitle(fmt.Sprintf("%s | FPS: %d", title, frameCount))
			frameCount = 0
			lastFpsTime = currentTime
		}

		solid.Rotate(object, cfg.ThetaX, cfg.ThetaY, cfg.ThetaZ)
		lines = edgeVertices(lines[:0], object)

		gl.Clear(gl.COLOR_BUFFER_BIT)
		if len(lines) > 0 {
			gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
			gl.BufferData(gl.ARRAY_BUFFER, len(lines)*4, gl.Ptr(lines), gl.DYNAMIC_DRAW)
			gl.BindVertexArray(vao)
			gl.DrawArrays(gl.LINES, 0, int32(len(lines)/3))
		}

		window.SwapBuffers()
		glfw.PollEvents()
	}
}

// edgeVertices appends both endpoints of every face edge of s to dst, three
// floats per endpoint, ready for GL_LINES.
func edgeVertices(dst []float32, s solid.Solid) []float32 {
	for _, f := range s.Faces {
		for _, e := range f.Edges() {
			for _, p := range e {
				dst = append(dst, float32(p.X), float32(p.Y), float32(p.Z))
			}
		}
	}
	return dst
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		return 0, fmt.Errorf("failed to link program: %v", log)
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		return 0, fmt.Errorf("failed to compile %v: %v", source, log)
	}

	return shader, nil
}
