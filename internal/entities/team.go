// Package entities contains core business entities.
package entities

// Team is a named grouping contacts may reference.
type Team struct {
	ID   string
	Name string
}
