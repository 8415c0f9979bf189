package completion

import (
	"fmt"
	"strings"
)

type ZshGenerator struct{}

func (g *ZshGenerator) Generate(programName string, data *Data) string {
	var script strings.Builder
	fn := functionName(programName)

	script.WriteString(fmt.Sprintf(`#compdef %s

_%s() {
    _arguments -s`, programName, fn))

	for _, flag := range data.Flags() {
		desc := escapeZsh(firstLine(flag.Description))
		value := ""
		if flag.TakesValue {
			value = ":value:_files"
		}

		spellings := flag.Spellings()
		if len(spellings) == 2 {
			script.WriteString(fmt.Sprintf(` \
        '(%[1]s %[2]s)'{%[1]s,%[2]s}'[%[3]s]%[4]s'`, spellings[0], spellings[1], desc, value))
		} else {
			script.WriteString(fmt.Sprintf(` \
        '%s[%s]%s'`, spellings[0], desc, value))
		}
	}

	for i, pos := range data.Positionals {
		name := escapeZsh(pos.Name)
		switch {
		case pos.Repeatable && pos.Required:
			script.WriteString(fmt.Sprintf(` \
        '*:%s:_files'`, name))
		case pos.Repeatable:
			script.WriteString(fmt.Sprintf(` \
        '*::%s:_files'`, name))
		case pos.Required:
			script.WriteString(fmt.Sprintf(` \
        '%d:%s:_files'`, i+1, name))
		default:
			script.WriteString(fmt.Sprintf(` \
        '%d::%s:_files'`, i+1, name))
		}
	}

	script.WriteString(fmt.Sprintf(`
}

_%s "$@"
`, fn))

	return script.String()
}
