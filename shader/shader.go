package shader

// ────────────────────────────────── Points ──────────────────────────────────

// Orbit points are projected into the accumulation buffer at a fixed,
// very low intensity so that brightness builds up with density.
const pointVertexShaderSource = `#version 460 core
layout (location = 0) in vec2 in_pos;
layout (location = 0) uniform mat4 u_projection;
void main() {
    gl_Position = u_projection * vec4(in_pos, 0.0, 1.0);
}
`

const pointFragmentShaderSource = `#version 460 core
layout (location = 1) uniform vec3 u_color;
layout (location = 0) out vec4 frag_color;
void main() {
    frag_color = vec4(u_color, 1.0);
}
`

// ────────────────────────────────── Tonemap ─────────────────────────────────

// A single triangle that covers the viewport, generated from gl_VertexID.
const fullscreenVertexShaderSource = `#version 460 core
void main() {
    vec2 pos = vec2(float((gl_VertexID & 1) << 2) - 1.0, float((gl_VertexID & 2) << 1) - 1.0);
    gl_Position = vec4(pos, 0.0, 1.0);
}
`

// The accumulation texture is addressed through a resident bindless handle.
// Reading gl_SampleID forces per-sample evaluation, so every sub-sample of
// the MSAA target gets its own tonemapped value.
const tonemapFragmentShaderSource = `#version 460 core
#extension GL_ARB_bindless_texture : require
layout (location = 0, bindless_sampler) uniform sampler2DMS u_accum;
layout (location = 0) out vec4 frag_color;
void main() {
    vec3 color = texelFetch(u_accum, ivec2(gl_FragCoord.xy), gl_SampleID).rgb;
    color = color / (color + 1.0);
    frag_color = vec4(color, 1.0);
}
`

// Uniform locations fixed by the layout qualifiers above.
const (
	ProjectionLocation = 0
	ColorLocation      = 1
	AccumLocation      = 0
)

// ────────────────────────────────── Public API ─────────────────────────────────

func PointVertexShader() string   { return pointVertexShaderSource }
func PointFragmentShader() string { return pointFragmentShaderSource }

func FullscreenVertexShader() string { return fullscreenVertexShaderSource }
func TonemapFragmentShader() string  { return tonemapFragmentShaderSource }
