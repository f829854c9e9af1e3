package vim

import "github.com/theapemachine/vimnav/pkg/script"

// TypableLabels counts the labels that fit in the key buffer, "aa" to "zz".
const TypableLabels = len(script.Alphabet) * len(script.Alphabet)

/*
GenerateLabel returns the hint label for the element at index. Digits are
peeled off least significant first with the bijective step
label = alphabet[i%26] + label; i = i/26 - 1, starting from index+26 so that
every label has at least two letters: 0 is "aa", 25 is "az", 26 is "ba",
675 is "zz" and 676 is "aaa". The overlay script uses the same recurrence.
*/
func GenerateLabel(index int) string {
	if index < 0 {
		return ""
	}

	base := len(script.Alphabet)
	label := ""

	for i := index + base; i >= 0; i = i/base - 1 {
		label = string(script.Alphabet[i%base]) + label
	}

	for len(label) < LabelThreshold {
		label = string(script.Alphabet[0]) + label
	}

	return label
}

/*
Labels returns the first n labels in enumeration order.
*/
func Labels(n int) []string {
	labels := make([]string, 0, max(n, 0))

	for i := 0; i < n; i++ {
		labels = append(labels, GenerateLabel(i))
	}

	return labels
}
