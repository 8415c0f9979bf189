package completion

import (
	"fmt"
	"strings"
)

type FishGenerator struct{}

func (g *FishGenerator) Generate(programName string, data *Data) string {
	var script strings.Builder

	for _, flag := range data.Flags() {
		cmd := fmt.Sprintf("complete -c %s", programName)
		if flag.Short != "" {
			cmd += " -s " + flag.Short
		}
		if flag.Long != "" {
			cmd += " -l " + flag.Long
		}
		if flag.TakesValue {
			cmd += " -r"
		}
		cmd += fmt.Sprintf(" -d '%s'", escapeFish(firstLine(flag.Description)))
		script.WriteString(cmd + "\n")
	}

	// positional slots complete files; without any, plain words are not expected
	if len(data.Positionals) == 0 {
		script.WriteString(fmt.Sprintf("complete -c %s -f\n", programName))
	}

	return script.String()
}
