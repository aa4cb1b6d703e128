package pddl

import "os"

// LoadDomain reads path and parses it as a PDDL domain. A filesystem
// failure is wrapped in a LoadError; a syntax or structural failure comes
// back as whatever LexError/BuildError ParseDomain produced.
func LoadDomain(path string) (*Domain, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return ParseDomain(string(data), path)
}

// LoadProblem reads path and parses it as a PDDL problem.
func LoadProblem(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return ParseProblem(string(data), path)
}
