package noise

import (
	"encoding/binary"
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
	"golang.org/x/mobile/exp/f32"

	"github.com/swarmwall/swarm/glm"
)

func TestParamsLayout(t *testing.T) {
	var p Params

	require.EqualValues(t, ParamsSize, unsafe.Sizeof(p))
	require.EqualValues(t, 0, unsafe.Offsetof(p.Size))
	require.EqualValues(t, 8, unsafe.Offsetof(p.Frame))
}

func TestParamsBytes(t *testing.T) {
	p := Params{Size: glm.Vec2f{800, 600}, Frame: 7}

	got := p.Bytes()
	require.Len(t, got, ParamsSize)

	require.Equal(t, f32.Bytes(binary.LittleEndian, 800, 600), got[:8])
	require.Equal(t, uint32(7), binary.LittleEndian.Uint32(got[8:12]))
	require.Equal(t, []byte{0, 0, 0, 0}, got[12:16])
}

func TestParamsValidate(t *testing.T) {
	valid := Params{Size: glm.Vec2f{800, 600}}
	require.NoError(t, valid.Validate())

	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	for _, size := range []glm.Vec2f{
		{0, 600},
		{800, 0},
		{-800, 600},
		{800, -600},
		{nan, 600},
		{800, nan},
		{inf, 600},
		{800, inf},
	} {
		p := Params{Size: size}
		require.Error(t, p.Validate(), "size=%v", size)
	}
}
