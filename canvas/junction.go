package canvas

// CharacterMerger handles the merging of two line characters at the same position
type CharacterMerger struct {
	mergeMap map[mergePair]rune
}

type mergePair struct {
	existing rune
	new      rune
}

// NewCharacterMerger creates a merger with the connector crossing rules
func NewCharacterMerger() *CharacterMerger {
	m := &CharacterMerger{
		mergeMap: make(map[mergePair]rune),
	}
	m.initializeMergeRules()
	return m
}

// Merge combines two characters according to the crossing rules
func (m *CharacterMerger) Merge(existing, new rune) rune {
	// If empty, use the new character
	if existing == ' ' || existing == '\x00' {
		return new
	}

	if existing == new {
		return existing
	}

	if merged, ok := m.mergeMap[mergePair{existing, new}]; ok {
		return merged
	}

	// Merging is commutative
	if merged, ok := m.mergeMap[mergePair{new, existing}]; ok {
		return merged
	}

	// Otherwise the newer stroke wins
	return new
}

// initializeMergeRules sets up the character merge mappings
func (m *CharacterMerger) initializeMergeRules() {
	// Straight crossings
	m.mergeMap[mergePair{'─', '│'}] = '┼'
	m.mergeMap[mergePair{'┼', '─'}] = '┼'
	m.mergeMap[mergePair{'┼', '│'}] = '┼'

	// Diagonal crossings
	m.mergeMap[mergePair{'╲', '╱'}] = '╳'
	m.mergeMap[mergePair{'╳', '╲'}] = '╳'
	m.mergeMap[mergePair{'╳', '╱'}] = '╳'

	// ASCII fallbacks
	m.mergeMap[mergePair{'-', '|'}] = '+'
	m.mergeMap[mergePair{'+', '-'}] = '+'
	m.mergeMap[mergePair{'+', '|'}] = '+'
	m.mergeMap[mergePair{'\\', '/'}] = 'X'
	m.mergeMap[mergePair{'X', '\\'}] = 'X'
	m.mergeMap[mergePair{'X', '/'}] = 'X'
}
