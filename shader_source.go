package main

const vsFaceSource = `#version 300 es
	layout (location = 0) in vec4 aVertexPosition;
	layout (location = 1) in vec2 aTexCoord;
	uniform mat4 uModelViewMatrix;
	uniform mat4 uProjectionMatrix;
	out highp vec2 vTexCoord;

	void main(void) {
		gl_Position = uProjectionMatrix * uModelViewMatrix * aVertexPosition;
		vTexCoord = aTexCoord;
	}
`

const fsFaceSource = `#version 300 es
	uniform sampler2D uFaceTexture;
	in highp vec2 vTexCoord;
	out lowp vec4 outColor;

	void main(void) {
		outColor = texture(uFaceTexture, vTexCoord);
	}
`

const vsEdgeSource = `#version 300 es
	layout (location = 0) in vec4 aVertexPosition;
	uniform mat4 uModelViewMatrix;
	uniform mat4 uProjectionMatrix;

	void main(void) {
		// Nudge edges toward the camera so they stay visible on the
		// face boundary.
		vec4 pos = uProjectionMatrix * uModelViewMatrix * aVertexPosition;
		pos.z -= 0.002;
		gl_Position = pos;
	}
`

const fsEdgeSource = `#version 300 es
	out lowp vec4 outColor;

	void main(void) {
		outColor = vec4(0.1, 0.1, 0.1, 1.0);
	}
`
