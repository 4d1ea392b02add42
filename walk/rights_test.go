package walk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bali3355/Fast-Folder-Exploring-with-Security/sddl"
)

func TestSddlRightsFullControl(t *testing.T) {
	mask := uint32(sddl.EACERights.SDDL_FILE_ALL())
	assert.Equal(t, RightsSet{"FullControl"}, sddlRights(mask))
}

func TestSddlRightsGenericAllTreatedAsFullControl(t *testing.T) {
	mask := uint32(sddl.EACERights.SDDL_GENERIC_ALL())
	assert.Equal(t, RightsSet{"FullControl"}, sddlRights(mask))
}

func TestSddlRightsReadOnly(t *testing.T) {
	mask := uint32(sddl.EACERights.SDDL_FILE_READ())
	assert.Equal(t, RightsSet{"Read"}, sddlRights(mask))
}

func TestSddlRightsUnrecognizedFallsBackToHex(t *testing.T) {
	got := sddlRights(0)
	assert.Equal(t, RightsSet{"0x0"}, got)
}
