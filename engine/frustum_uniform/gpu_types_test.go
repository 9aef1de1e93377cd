package frustum_uniform

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-frustum/common"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/require"
)

func TestGPUFrustumSizes(t *testing.T) {
	var p GPUFrustumPlane
	require.Equal(t, 16, p.Size())

	var u GPUFrustumUniform
	require.Equal(t, 112, u.Size())
	require.Len(t, u.Marshal(), 112)
}

func TestGPUFrustumPlaneMarshal(t *testing.T) {
	p := GPUFrustumPlane{Normal: [3]float32{1, -2, 0.5}, Distance: 7}
	buf := p.Marshal()

	require.Len(t, buf, 16)
	require.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(buf[0:4])))
	require.Equal(t, float32(-2), math.Float32frombits(binary.LittleEndian.Uint32(buf[4:8])))
	require.Equal(t, float32(0.5), math.Float32frombits(binary.LittleEndian.Uint32(buf[8:12])))
	require.Equal(t, float32(7), math.Float32frombits(binary.LittleEndian.Uint32(buf[12:16])))
}

func TestFromPlanesPreservesOrder(t *testing.T) {
	m := common.IdentityMatrix()
	planes := common.NewPlanes(&m)

	u := FromPlanes(planes)
	require.Equal(t, uint32(common.PlaneCount), u.PlaneCount)

	buf := u.Marshal()
	for i, p := range planes {
		off := i * 16
		for a := 0; a < 3; a++ {
			got := math.Float32frombits(binary.LittleEndian.Uint32(buf[off+a*4:]))
			require.Equal(t, p.Normal[a], got, "plane %d axis %d", i, a)
		}
		require.Equal(t, p.D, math.Float32frombits(binary.LittleEndian.Uint32(buf[off+12:])), "plane %d", i)
	}
	require.Equal(t, uint32(6), binary.LittleEndian.Uint32(buf[96:100]))
	require.Equal(t, make([]byte, 12), buf[100:112])
}

func TestFromPlanesNil(t *testing.T) {
	u := FromPlanes(nil)
	require.Equal(t, uint32(0), u.PlaneCount)
	require.Equal(t, make([]byte, 112), u.Marshal())
}

func TestLayoutEntry(t *testing.T) {
	entry := LayoutEntry(3, wgpu.ShaderStageCompute)

	require.Equal(t, uint32(3), entry.Binding)
	require.Equal(t, wgpu.ShaderStageCompute, entry.Visibility)
	require.Equal(t, wgpu.BufferBindingTypeUniform, entry.Buffer.Type)
	require.Equal(t, uint64(112), entry.Buffer.MinBindingSize)
}

func TestGPUFrustumUniformSource(t *testing.T) {
	require.Contains(t, GPUFrustumUniformSource, "struct FrustumUniform")
	require.Contains(t, GPUFrustumUniformSource, "array<FrustumPlane, 6>")
}
