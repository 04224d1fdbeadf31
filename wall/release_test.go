package wall

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeHandle struct {
	name     string
	released *[]string
}

func (f *fakeHandle) Release() {
	*f.released = append(*f.released, f.name)
}

func TestFrameCleanupReleasesEverythingInReverseOrder(t *testing.T) {
	var released []string

	var cleanup frameCleanup
	cleanup.Add(&fakeHandle{"texture", &released})
	cleanup.Add(&fakeHandle{"view", &released})
	cleanup.Add(&fakeHandle{"encoder", &released})
	cleanup.Add(&fakeHandle{"commands", &released})

	cleanup.Release()
	require.Equal(t, []string{"commands", "encoder", "view", "texture"}, released)
}

func TestFrameCleanupReleasesOnlyOnce(t *testing.T) {
	var released []string

	var cleanup frameCleanup
	cleanup.Add(&fakeHandle{"texture", &released})

	cleanup.Release()
	cleanup.Release()
	require.Equal(t, []string{"texture"}, released)
}

func TestFrameCleanupEmpty(t *testing.T) {
	var cleanup frameCleanup

	require.NotPanics(t, cleanup.Release)
}
