package response

import "cermont_os/internal/domain/lifecycle"

func stepsToStrings(steps []lifecycle.Step) []string {
	out := make([]string, 0, len(steps))
	for _, s := range steps {
		out = append(out, string(s))
	}
	return out
}
