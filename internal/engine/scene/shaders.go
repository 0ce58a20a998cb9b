package scene

// Vertex/fragment shader for lit solid primitives.
const (
	solidVertexShader = `
		#version 410 core

		layout (location = 0) in vec3 aPos;
		layout (location = 1) in vec3 aNormal;

		uniform mat4 uMVP;
		uniform mat4 uModel;

		out vec3 vNormal;

		void main() {
			gl_Position = uMVP * vec4(aPos, 1.0);
			vNormal = mat3(uModel) * aNormal;
		}
	`

	solidFragmentShader = `
		#version 410 core

		in vec3 vNormal;
		out vec4 FragColor;

		uniform vec3 uColor;
		uniform vec3 uLightDir;
		uniform float uAmbient;

		void main() {
			vec3 n = normalize(vNormal);
			float diffuse = max(dot(n, -uLightDir), 0.0);
			vec3 lit = uColor * (uAmbient + (1.0 - uAmbient) * diffuse);
			FragColor = vec4(lit, 1.0);
		}
	`
)

// Flat shader for the grid, the draft outline and vertex markers.
const (
	flatVertexShader = `
		#version 410 core

		layout (location = 0) in vec3 aPos;

		uniform mat4 uMVP;

		void main() {
			gl_Position = uMVP * vec4(aPos, 1.0);
		}
	`

	flatFragmentShader = `
		#version 410 core

		out vec4 FragColor;

		uniform vec3 uColor;

		void main() {
			FragColor = vec4(uColor, 1.0);
		}
	`
)
