// package frustum_uniform describes how frustum planes are laid out for upload to a GPU uniform buffer, so compute
// shaders can cull instances against the same planes the CPU extracts.
package frustum_uniform

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-frustum/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// GPUFrustumUniformSource is the canonical WGSL definition of the FrustumPlane and FrustumUniform structs plus a
// sphere test helper. Matches GPUFrustumUniform layout exactly (112 bytes, std430 aligned).
//
//go:embed assets/frustum_uniform.wgsl
var GPUFrustumUniformSource string

// GPUFrustumPlane is the GPU-aligned representation of a single view-frustum plane.
// Size: 16 bytes (vec3 normal + f32 distance, std430 aligned).
type GPUFrustumPlane struct {
	Normal   [3]float32 // offset 0: plane normal (x, y, z)
	Distance float32    // offset 12: signed distance from origin
}

// Size returns the size of the GPUFrustumPlane struct in bytes.
//
// Returns:
//   - int: The size of the struct in bytes.
func (g *GPUFrustumPlane) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUFrustumPlane struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 16-byte buffer ready for GPU upload.
func (g *GPUFrustumPlane) Marshal() []byte {
	buf := make([]byte, 16)
	g.put(buf)
	return buf
}

func (g *GPUFrustumPlane) put(buf []byte) {
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Normal[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Normal[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Normal[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Distance))
}

// GPUFrustumUniform is the GPU-aligned representation of a full frustum.
// Size: 112 bytes (6 × GPUFrustumPlane + u32 plane count + pad).
type GPUFrustumUniform struct {
	Planes     [common.PlaneCount]GPUFrustumPlane // offset 0: 6 × 16 bytes = 96 bytes
	PlaneCount uint32                             // offset 96: number of planes the shader should test
	_padding   [3]uint32                          // offset 100: pad to 112 bytes
}

// FromPlanes converts extracted frustum planes into their GPU representation, preserving plane order.
// A nil planes pointer yields a uniform with PlaneCount 0, which culls nothing.
//
// Parameters:
//   - planes: the planes to convert
//
// Returns:
//   - GPUFrustumUniform: the uniform ready to Marshal
func FromPlanes(planes *common.Planes) GPUFrustumUniform {
	var u GPUFrustumUniform
	if planes == nil {
		return u
	}
	for i, p := range planes {
		u.Planes[i] = GPUFrustumPlane{Normal: p.Normal, Distance: p.D}
	}
	u.PlaneCount = common.PlaneCount
	return u
}

// Size returns the size of the GPUFrustumUniform struct in bytes.
//
// Returns:
//   - int: The size of the struct in bytes.
func (g *GPUFrustumUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUFrustumUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 112-byte buffer ready for GPU upload.
func (g *GPUFrustumUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range g.Planes {
		g.Planes[i].put(buf[i*16 : (i+1)*16])
	}
	binary.LittleEndian.PutUint32(buf[96:100], g.PlaneCount)
	return buf
}

// LayoutEntry returns the bind group layout entry for a uniform buffer holding a GPUFrustumUniform.
//
// Parameters:
//   - binding: the binding index from @binding(N)
//   - visibility: the shader stages that read the uniform
//
// Returns:
//   - wgpu.BindGroupLayoutEntry: a uniform buffer entry sized for GPUFrustumUniform
func LayoutEntry(binding uint32, visibility wgpu.ShaderStage) wgpu.BindGroupLayoutEntry {
	var u GPUFrustumUniform
	entry := wgpu.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: visibility,
	}
	entry.Buffer.Type = wgpu.BufferBindingTypeUniform
	entry.Buffer.MinBindingSize = uint64(u.Size())
	return entry
}
