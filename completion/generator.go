package completion

// Generator renders a completion script for one shell
type Generator interface {
	Generate(programName string, data *Data) string
}

var generators = map[string]Generator{
	"bash": &BashGenerator{},
	"zsh":  &ZshGenerator{},
	"fish": &FishGenerator{},
}

// GetGenerator returns the generator for shell, or nil when the shell is not supported
func GetGenerator(shell string) Generator {
	return generators[shell]
}

// Shells returns the supported shell names
func Shells() []string {
	return []string{"bash", "fish", "zsh"}
}
