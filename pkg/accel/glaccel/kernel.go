package glaccel

// kernelSource is the compute kernel. It mirrors the CPU tracer: half-angle
// sphere intersection, front-face normals, Constant/ShowNormals/Lambertian
// materials, sky gradient, and per-pixel jittered supersampling. The demo
// scene is baked in; the ray tally accumulates through an atomic counter.
const kernelSource = `#version 430

layout(local_size_x = 16, local_size_y = 16) in;

layout(std430, binding = 0) buffer Pixels { vec4 pixels[]; };
layout(std430, binding = 1) buffer Rays { uint rayCount; };

uniform int uWidth;
uniform int uHeight;
uniform int uSamples;
uniform int uMaxDepth;
uniform uint uSeed;
uniform vec3 uCenter;
uniform vec3 uPixel00;
uniform vec3 uDeltaU;
uniform vec3 uDeltaV;

const int MAT_LAMBERT = 0;
const int MAT_CONSTANT = 1;
const int MAT_NORMALS = 2;

struct Sphere {
	vec3 center;
	float radius;
	int mat;
	vec3 color;
};

const int SPHERE_COUNT = 10;
const Sphere spheres[SPHERE_COUNT] = Sphere[](
	Sphere(vec3(0.0, -950.5, -1.0), 950.0, MAT_LAMBERT, vec3(0.7)),
	Sphere(vec3(-3.5, 0.45, -1.8), 0.8, MAT_CONSTANT, vec3(1.0, 0.0, 0.0)),
	Sphere(vec3(-1.3, 0.18, -5.0), 0.7, MAT_CONSTANT, vec3(0.0, 0.0, 1.0)),
	Sphere(vec3(-0.7, 0.2, -0.3), 0.6, MAT_LAMBERT, vec3(0.7)),
	Sphere(vec3(1.2, 0.0, -2.0), 0.5, MAT_LAMBERT, vec3(0.7)),
	Sphere(vec3(-3.5, -0.3, 1.2), 0.2, MAT_NORMALS, vec3(0.0)),
	Sphere(vec3(-3.0, -0.3, 1.2), 0.2, MAT_NORMALS, vec3(0.0)),
	Sphere(vec3(-2.5, -0.3, 1.2), 0.2, MAT_NORMALS, vec3(0.0)),
	Sphere(vec3(-2.0, -0.3, 1.2), 0.2, MAT_NORMALS, vec3(0.0)),
	Sphere(vec3(-1.5, -0.3, 1.2), 0.2, MAT_NORMALS, vec3(0.0))
);

uint rngState;

uint pcgHash() {
	rngState = rngState * 747796405u + 2891336453u;
	uint word = ((rngState >> ((rngState >> 28u) + 4u)) ^ rngState) * 277803737u;
	return (word >> 22u) ^ word;
}

float rand01() {
	return float(pcgHash()) / 4294967296.0;
}

vec3 randomUnitVector() {
	float a = rand01() * 6.28318530718;
	float z = rand01() * 2.0 - 1.0;
	float r = sqrt(max(0.0, 1.0 - z * z));
	return vec3(r * cos(a), r * sin(a), z);
}

bool hitScene(vec3 ro, vec3 rd, float tMin, float tMax,
              out float tHit, out vec3 outNormal, out int mat, out vec3 color) {
	bool hit = false;
	float closest = tMax;
	for (int i = 0; i < SPHERE_COUNT; ++i) {
		vec3 oc = spheres[i].center - ro;
		float a = dot(rd, rd);
		float h = dot(rd, oc);
		float c = dot(oc, oc) - spheres[i].radius * spheres[i].radius;
		float disc = h * h - a * c;
		if (disc < 0.0) {
			continue;
		}
		float sq = sqrt(disc);
		float root = (h - sq) / a;
		if (root <= tMin || root >= closest) {
			root = (h + sq) / a;
			if (root <= tMin || root >= closest) {
				continue;
			}
		}
		hit = true;
		closest = root;
		vec3 p = ro + root * rd;
		outNormal = (p - spheres[i].center) / spheres[i].radius;
		mat = spheres[i].mat;
		color = spheres[i].color;
	}
	tHit = closest;
	return hit;
}

vec3 rayColor(vec3 ro, vec3 rd) {
	vec3 attenuation = vec3(1.0);
	for (int depth = 0; depth < uMaxDepth; ++depth) {
		atomicAdd(rayCount, 1u);

		float t;
		vec3 n;
		int mat;
		vec3 color;
		if (!hitScene(ro, rd, 0.0001, 1e30, t, n, mat, color)) {
			vec3 unit = normalize(rd);
			float k = 0.5 * (unit.y + 1.0);
			vec3 sky = (1.0 - k) * vec3(1.0) + k * vec3(0.5, 0.7, 1.0);
			return attenuation * sky;
		}

		vec3 sn = dot(rd, n) < 0.0 ? n : -n;
		if (mat == MAT_CONSTANT) {
			return attenuation * color;
		}
		if (mat == MAT_NORMALS) {
			return attenuation * (0.5 * (sn + vec3(1.0)));
		}

		vec3 r = randomUnitVector();
		if (dot(r, sn) < 0.0) {
			r = -r;
		}
		vec3 dir = sn + r;
		if (dot(dir, dir) < 1e-12) {
			dir = sn;
		}
		attenuation *= color;
		ro = ro + t * rd;
		rd = dir;
	}
	return vec3(0.0);
}

void main() {
	ivec2 gid = ivec2(gl_GlobalInvocationID.xy);
	if (gid.x >= uWidth || gid.y >= uHeight) {
		return;
	}
	rngState = uSeed ^ (uint(gid.y) * 9781u + uint(gid.x) * 6271u + 1u);

	vec3 sum = vec3(0.0);
	for (int s = 0; s < uSamples; ++s) {
		float jx = rand01() - 0.5;
		float jy = rand01() - 0.5;
		vec3 pixel = uPixel00 + (float(gid.x) + jx) * uDeltaU + (float(gid.y) + jy) * uDeltaV;
		vec3 rd = normalize(pixel - uCenter);
		sum += rayColor(uCenter, rd);
	}
	pixels[gid.y * uWidth + gid.x] = vec4(sum / float(uSamples), 1.0);
}
`
