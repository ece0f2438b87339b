package utils

import (
	"encoding/csv"
	"os"
)

// ReadCSVRows - read a comma separated table into rows. Rows keep whatever
// arity the source has; filtering rows of the wrong arity is left to the
// consumer.
func ReadCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if nil != err {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	return reader.ReadAll()
}
