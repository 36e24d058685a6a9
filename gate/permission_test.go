package gate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pemmasanikrishna/remo/gate"
)

func TestPermissionMatches(t *testing.T) {
	tests := []struct {
		name      string
		held      gate.Permission
		requested gate.Permission
		want      bool
	}{
		{"exact match", "featuredrep:create", "featuredrep:create", true},
		{"different action", "featuredrep:create", "featuredrep:delete", false},
		{"different resource", "featuredrep:create", "profile:create", false},
		{"resource wildcard", "featuredrep:*", "featuredrep:delete", true},
		{"resource wildcard other resource", "featuredrep:*", "profile:delete", false},
		{"superadmin", "*:*", "featuredrep:delete", true},
		{"superadmin any resource", "*:*", "anything:whatever", true},
		{"malformed held", "featuredrep", "featuredrep:create", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.held.Matches(tt.requested))
		})
	}
}

func TestPermissionParse(t *testing.T) {
	res, act := gate.Permission("featuredrep:update").Parse()
	assert.Equal(t, "featuredrep", res)
	assert.Equal(t, gate.ActionUpdate, act)

	res, act = gate.Permission("nodelimiter").Parse()
	assert.Empty(t, res)
	assert.Empty(t, string(act))

	assert.Equal(t, gate.Permission("status:create"), gate.NewPermission("status", gate.ActionCreate))
}
