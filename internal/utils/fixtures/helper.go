package fixtures

import (
	"encoding/json"
	"strings"
)

func ReadFile(pathToFile string) ([]byte, error) {
	return FixturesFS.ReadFile(pathToFile)
}

func MustReadFile(pathToFile string) []byte {
	data, err := ReadFile(pathToFile)
	if err != nil {
		panic(err)
	}

	return data
}

func ReadString(pathToFile string) (string, error) {
	data, err := ReadFile(pathToFile)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(data)), nil
}

func MustReadString(pathToFile string) string {
	data, err := ReadString(pathToFile)
	if err != nil {
		panic(err)
	}

	return data
}

// MustReadLogs reads a fixture holding a JSON array of raw log lines.
func MustReadLogs(pathToFile string) []string {
	var lines []string
	if err := json.Unmarshal(MustReadFile(pathToFile), &lines); err != nil {
		panic(err)
	}

	return lines
}
