// Package generation provides the interface and current implementation for
// producing mnemonic study aids from user content. The interface serves as
// a boundary between the application core and a future external
// content-generation service; the shipped implementation returns a fixed
// sample payload.
package generation

import "context"

// Generator defines the interface for generating memory aids from text.
type Generator interface {
	// GenerateAids produces a mind map, mnemonics, and sensory
	// associations for the provided content.
	GenerateAids(ctx context.Context, content string) (*MemoryAids, error)
}

// MemoryAids is the full set of generated study aids for one piece of
// content. Field names match the wire format expected by the frontend.
type MemoryAids struct {
	MindMap             MindMapNode          `json:"mindMap"`
	Mnemonics           []Mnemonic           `json:"mnemonics"`
	SensoryAssociations []SensoryAssociation `json:"sensoryAssociations"`
}

// MindMapNode is one node of the generated mind map tree.
type MindMapNode struct {
	ID       string        `json:"id"`
	Label    string        `json:"label"`
	Children []MindMapNode `json:"children,omitempty"`
}

// Mnemonic is a single mnemonic technique applied to the content.
type Mnemonic struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Type        string `json:"type"`
	Explanation string `json:"explanation,omitempty"`
}

// SensoryAssociation groups association items for one sensory channel
// (visual, auditory, tactile).
type SensoryAssociation struct {
	ID      string            `json:"id"`
	Title   string            `json:"title"`
	Type    string            `json:"type"`
	Content []AssociationItem `json:"content"`
}

// AssociationItem is one concept-to-sense mapping. Which fields are set
// depends on the sensory channel of the containing association.
type AssociationItem struct {
	Concept     string `json:"dynasty"` // historical wire name kept for frontend compatibility
	Image       string `json:"image,omitempty"`
	Color       string `json:"color,omitempty"`
	Association string `json:"association,omitempty"`
	Sound       string `json:"sound,omitempty"`
	Rhythm      string `json:"rhythm,omitempty"`
	Texture     string `json:"texture,omitempty"`
	Feeling     string `json:"feeling,omitempty"`
}
