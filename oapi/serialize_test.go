package oapi

import (
	"encoding/json"
	"errors"
	"testing"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestNestedChangePropagates(t *testing.T) {
	obj := parsedDiskEncryption()
	boot := obj.ObjectValue("bootPartitionEncryptionDetails")
	require.NoError(t, boot.Set("partitionFileVault2State", "DECRYPTING"))

	assert.True(t, obj.IsDirty())
	changes := obj.Changes()
	require.Contains(t, changes, "bootPartitionEncryptionDetails")
	c := changes["bootPartitionEncryptionDetails"]
	assert.False(t, c.Assigned)
	assert.Equal(t, "ENCRYPTED", c.Nested["partitionFileVault2State"].Old)

	assert.Equal(t, map[string]any{
		"bootPartitionEncryptionDetails": map[string]any{"partitionFileVault2State": "DECRYPTING"},
	}, obj.ChangesPayload())
}

func TestNestedArrayChangeKeyedByIndex(t *testing.T) {
	obj := parsedDiskEncryption()
	part := obj.ObjectList("partitions")[0]
	require.NoError(t, part.Set("partitionFileVault2Percent", 40))

	c := obj.Changes()["partitions"]
	require.Contains(t, c.Nested, "0")
	assert.Equal(t, int64(40), c.Nested["0"].Nested["partitionFileVault2Percent"].New)

	payload := obj.ChangesPayload()
	assert.Equal(t, []any{
		map[string]any{"partitionName": "Data", "partitionFileVault2State": "ENCRYPTED", "partitionFileVault2Percent": int64(40)},
	}, payload["partitions"])
}

func TestClearChangesIsRecursive(t *testing.T) {
	obj := parsedDiskEncryption()
	require.NoError(t, obj.Set("diskEncryptionConfigurationName", "Lab"))
	require.NoError(t, obj.ObjectValue("bootPartitionEncryptionDetails").Set("partitionName", "Root"))
	require.NoError(t, obj.ObjectList("partitions")[0].Set("partitionName", "Home"))

	obj.ClearChanges()

	assert.False(t, obj.IsDirty())
	assert.Empty(t, obj.ChangesPayload())
	assert.Equal(t, "Lab", obj.StringValue("diskEncryptionConfigurationName"))
}

func TestToAPI(t *testing.T) {
	obj := parsedDiskEncryption()
	out := obj.ToAPI()

	assert.Equal(t, "1", out["id"])
	assert.Equal(t, "2024-03-01T10:15:00Z", out["lastEscrowed"])
	assert.Equal(t, []any{"admin", "jdoe"}, out["fileVault2EnabledUserNames"])
	assert.Equal(t, map[string]any{
		"partitionName":              "Macintosh HD",
		"partitionFileVault2State":   "ENCRYPTED",
		"partitionFileVault2Percent": int64(100),
	}, out["bootPartitionEncryptionDetails"])
}

func TestToAPIOmitsEmptyNestedObject(t *testing.T) {
	obj, err := Parse(testDiskEncryptionSchema, map[string]any{
		"id":                             "1",
		"bootPartitionEncryptionDetails": map[string]any{},
	})
	require.NoError(t, err)
	require.NotNil(t, obj.ObjectValue("bootPartitionEncryptionDetails"))

	assert.Equal(t, map[string]any{"id": "1"}, obj.ToAPI())
}

func TestRoundTrip(t *testing.T) {
	obj := parsedDiskEncryption()

	again, err := Parse(testDiskEncryptionSchema, obj.ToAPI())
	require.NoError(t, err)
	assert.True(t, again.Equal(obj))

	data, err := json.Marshal(obj)
	require.NoError(t, err)
	decoded, err := ParseJSON(testDiskEncryptionSchema, data)
	require.NoError(t, err)
	assert.True(t, decoded.Equal(obj))

	require.NoError(t, decoded.Set("diskEncryptionConfigurationName", "Lab"))
	assert.False(t, decoded.Equal(obj))
	assert.False(t, obj.Equal(nil))
}

func TestChangesPayloadFullValueForAssignedProperties(t *testing.T) {
	obj := parsedDiskEncryption()
	require.NoError(t, obj.Set("bootPartitionEncryptionDetails", map[string]any{"partitionName": "Root"}))
	require.NoError(t, obj.Set("lastEscrowed", nil))
	require.NoError(t, obj.DeleteAt("fileVault2EnabledUserNames", 0))

	assert.Equal(t, map[string]any{
		"bootPartitionEncryptionDetails": map[string]any{"partitionName": "Root"},
		"lastEscrowed":                   nil,
		"fileVault2EnabledUserNames":     []any{"jdoe"},
	}, obj.ChangesPayload())
}

func TestChangesPayloadExcludesReadOnly(t *testing.T) {
	obj := parsedDiskEncryption()
	obj.assign("id", "99")
	require.NoError(t, obj.Set("individualRecoveryKeyValidityStatus", "INVALID"))

	payload := obj.ChangesPayload()
	assert.Equal(t, map[string]any{"individualRecoveryKeyValidityStatus": "INVALID"}, payload)
	assert.Contains(t, obj.Changes(), "id")
}

func TestImmutableChangesPayloadIsNil(t *testing.T) {
	obj, err := Parse(testHistorySchema, map[string]any{"id": float64(4), "event": "enrolled"})
	require.NoError(t, err)

	assert.Nil(t, obj.ChangesPayload())
	patch, err := obj.JSONPatch()
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(patch))
}

func TestValidateRequired(t *testing.T) {
	obj, err := New(testDiskEncryptionSchema, map[string]any{
		"partitions": []any{
			map[string]any{"partitionFileVault2State": "ENCRYPTED"},
			map[string]any{"partitionName": "Data"},
		},
	})
	require.NoError(t, err)

	err = obj.ValidateRequired()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingRequired))
	errs := multierr.Errors(err)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "ComputerDiskEncryption.partitions[0].partitionName")

	role, err := New(testApiRoleSchema, map[string]any{})
	require.NoError(t, err)
	assert.Len(t, multierr.Errors(role.ValidateRequired()), 2, "id is read-only and must not be reported")

	assert.NoError(t, parsedDiskEncryption().ValidateRequired())
}

func TestJSONPatchAppliesToSavedState(t *testing.T) {
	obj := parsedDiskEncryption()
	saved, err := json.Marshal(obj.ToAPI())
	require.NoError(t, err)

	require.NoError(t, obj.Set("individualRecoveryKeyValidityStatus", "INVALID"))
	require.NoError(t, obj.Append("fileVault2EnabledUserNames", "carol"))
	require.NoError(t, obj.ObjectValue("bootPartitionEncryptionDetails").Set("partitionFileVault2Percent", 50))
	require.NoError(t, obj.Set("diskEncryptionConfigurationName", nil))

	raw, err := obj.JSONPatch()
	require.NoError(t, err)

	patch, err := jsonpatch.DecodePatch(raw)
	require.NoError(t, err)
	patched, err := patch.Apply(saved)
	require.NoError(t, err)

	current, err := json.Marshal(obj.ToAPI())
	require.NoError(t, err)
	assert.JSONEq(t, string(current), string(patched))
}

func TestJSONPatchSkipsReadOnly(t *testing.T) {
	obj := parsedDiskEncryption()
	obj.assign("id", "2")

	raw, err := obj.JSONPatch()
	require.NoError(t, err)

	var ops []PatchOperation
	require.NoError(t, json.Unmarshal(raw, &ops))
	assert.Empty(t, ops)
}

func TestTopLevelProperty(t *testing.T) {
	assert.Equal(t, "partitions", topLevelProperty("/partitions/0/partitionName"))
	assert.Equal(t, "a/b", topLevelProperty("/a~1b"))
	assert.Equal(t, "a~b", topLevelProperty("/a~0b/c"))
}
