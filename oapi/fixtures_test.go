package oapi

var testPartitionSchema = MustSchema("ComputerPartitionEncryption", false,
	PropertyDefinition{Name: "partitionName", Type: TypeString, Required: true},
	PropertyDefinition{
		Name: "partitionFileVault2State",
		Type: TypeString,
		Enum: []string{"UNKNOWN", "UNENCRYPTED", "INELIGIBLE", "DECRYPTED", "DECRYPTING", "ENCRYPTED", "ENCRYPTING", "RESTARTING", "OPTIMIZING", "DECRYPTING_PAUSED", "ENCRYPTING_PAUSED"},
	},
	PropertyDefinition{Name: "partitionFileVault2Percent", Type: TypeInteger, Minimum: Float(0), Maximum: Float(100)},
)

var testDiskEncryptionSchema = MustSchema("ComputerDiskEncryption", false,
	PropertyDefinition{Name: "id", Type: TypeString, ReadOnly: true, Identifier: IdentifierPrimary},
	PropertyDefinition{Name: "bootPartitionEncryptionDetails", Type: TypeObject, Schema: testPartitionSchema},
	PropertyDefinition{
		Name: "individualRecoveryKeyValidityStatus",
		Type: TypeString,
		Enum: []string{"VALID", "INVALID", "UNKNOWN", "NOT_APPLICABLE"},
	},
	PropertyDefinition{Name: "institutionalRecoveryKeyPresent", Type: TypeBoolean},
	PropertyDefinition{Name: "diskEncryptionConfigurationName", Type: TypeString},
	PropertyDefinition{Name: "fileVault2EnabledUserNames", Type: TypeString, Multiplicity: Array},
	PropertyDefinition{Name: "partitions", Type: TypeObject, Schema: testPartitionSchema, Multiplicity: Array},
	PropertyDefinition{Name: "lastEscrowed", Type: TypeDateTime},
)

var testApiRoleSchema = MustSchema("ApiRole", false,
	PropertyDefinition{Name: "id", Type: TypeString, ReadOnly: true, Required: true, Identifier: IdentifierPrimary},
	PropertyDefinition{Name: "displayName", Type: TypeString, Required: true, MinLength: Int(1), MaxLength: Int(64)},
	PropertyDefinition{Name: "privileges", Type: TypeString, Multiplicity: Array, Required: true, UniqueItems: true, MaxItems: Int(5)},
	PropertyDefinition{Name: "priority", Type: TypeInteger, Minimum: Float(1), Maximum: Float(20)},
	PropertyDefinition{Name: "weight", Type: TypeNumber},
	PropertyDefinition{Name: "code", Type: TypeString, Pattern: `^[A-Z]{3}$`},
	PropertyDefinition{Name: "extra", Type: TypeAny},
)

var testHistorySchema = MustSchema("ComputerHistory", true,
	PropertyDefinition{Name: "id", Type: TypeInteger, Identifier: IdentifierPrimary},
	PropertyDefinition{Name: "event", Type: TypeString},
)

func parsedDiskEncryption() *Object {
	obj, err := Parse(testDiskEncryptionSchema, map[string]any{
		"id": "1",
		"bootPartitionEncryptionDetails": map[string]any{
			"partitionName":              "Macintosh HD",
			"partitionFileVault2State":   "ENCRYPTED",
			"partitionFileVault2Percent": float64(100),
		},
		"individualRecoveryKeyValidityStatus": "VALID",
		"institutionalRecoveryKeyPresent":     false,
		"diskEncryptionConfigurationName":     "Corporate",
		"fileVault2EnabledUserNames":          []any{"admin", "jdoe"},
		"partitions": []any{
			map[string]any{"partitionName": "Data", "partitionFileVault2State": "ENCRYPTED"},
		},
		"lastEscrowed": "2024-03-01T10:15:00Z",
	})
	if err != nil {
		panic(err)
	}
	return obj
}
