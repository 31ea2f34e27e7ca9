package render

// iconTables are tried in order; the first one with at least as many
// icons as the automaton has states is used.
var iconTables = []string{
	" #",
	" +#",
	" .+#",
	" .:+#",
	" .:+%#",
	` 123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ` + "`~!@#$%^&*()-_=+[{]}\\|;:'\",<.>/?",
}

// spectrum buckets automata with more states than any table holds.
const spectrum = " 123456789abcdefghijklmnopq"

// Icons maps cell states to single printable characters.
type Icons struct {
	states int
	table  string
}

// NewIcons picks the smallest table that covers states.
func NewIcons(states int) Icons {
	for _, t := range iconTables {
		if states <= len(t) {
			return Icons{states: states, table: t}
		}
	}
	return Icons{states: states}
}

// Icon returns the character for state.
func (i Icons) Icon(state uint8) byte {
	if i.table != "" {
		if int(state) >= len(i.table) {
			return i.table[len(i.table)-1]
		}
		return i.table[state]
	}
	if state == 0 {
		return ' '
	}
	// 1..26 so that every non-zero state shows as something.
	return spectrum[1+min(int(state), i.states-1)*26/i.states]
}
