package parse

import "github.com/google/shlex"

// Split breaks a command line into tokens using POSIX shell quoting rules.
// The program name is not expected and no expansion is performed.
func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, err
	}

	return args, nil
}
