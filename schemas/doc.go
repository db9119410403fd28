// Package schemas holds the Jamf Pro API object types generated from openapi.yaml, and the
// collection bindings that list, fetch, create, update and delete them.
package schemas

//go:generate go run ../cmd/oapigen generate --input openapi.yaml --output . --package schemas --schema Building --schema Category --schema Department --schema ApiRole --schema Script --schema ComputerDiskEncryption --schema ComputerHistoryEntry
