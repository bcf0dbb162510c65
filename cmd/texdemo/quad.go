package main

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var quadVertexShader = `#version 410 core
layout(location = 0) in vec2 aPos;
uniform mat4 proj;
out vec2 uv;
void main() {
	uv = aPos;
	gl_Position = proj * vec4(aPos, 0.0, 1.0);
}`

var quadFragmentShader = `#version 410 core
in vec2 uv;
uniform sampler2D tex;
out vec4 fragColor;
void main() {
	fragColor = texture(tex, uv);
}`

// Unit square as two triangles; doubles as texture coordinates.
var quadVertices = []float32{
	0, 0, 1, 0, 1, 1,
	0, 0, 1, 1, 0, 1,
}

type quad struct {
	program uint32
	vao     uint32
	vbo     uint32
	projLoc int32
	texLoc  int32
}

func newQuad() (*quad, error) {
	program, err := newProgram(quadVertexShader, quadFragmentShader)
	if err != nil {
		return nil, err
	}
	q := &quad{program: program}

	gl.GenVertexArrays(1, &q.vao)
	gl.BindVertexArray(q.vao)

	gl.GenBuffers(1, &q.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	q.projLoc = gl.GetUniformLocation(program, gl.Str("proj\x00"))
	q.texLoc = gl.GetUniformLocation(program, gl.Str("tex\x00"))
	return q, nil
}

// draw samples texture id across the whole viewport.
func (q *quad) draw(id uint32) {
	proj := mgl32.Ortho2D(0, 1, 0, 1)

	gl.UseProgram(q.program)
	gl.UniformMatrix4fv(q.projLoc, 1, false, &proj[0])
	gl.Uniform1i(q.texLoc, 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.BindVertexArray(q.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(quadVertices)/2))

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (q *quad) dispose() {
	gl.DeleteBuffers(1, &q.vbo)
	gl.DeleteVertexArrays(1, &q.vao)
	gl.DeleteProgram(q.program)
}
