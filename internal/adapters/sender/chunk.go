package sender

// splitMessage cuts text into parts of at most limit runes, breaking after the last newline of a part when there
// is one.
func splitMessage(text string, limit int) []string {
	runes := []rune(text)

	var parts []string
	for len(runes) > limit {
		cut := limit
		for i := limit - 1; i > 0; i-- {
			if runes[i] == '\n' {
				cut = i + 1
				break
			}
		}

		parts = append(parts, string(runes[:cut]))
		runes = runes[cut:]
	}

	return append(parts, string(runes))
}
