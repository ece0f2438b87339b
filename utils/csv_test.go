package utils_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/routemark/borders-api/utils"
)

func TestReadCSVRows(t *testing.T) {
	dir, err := ioutil.TempDir("", "csv-test")
	assert.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "ids.csv")
	content := "49,Deutschland,Germany\n33, France,France\nGermany,France\nbadrow\n"
	assert.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))

	rows, err := utils.ReadCSVRows(path)

	assert.NoError(t, err)
	assert.Len(t, rows, 4)
	assert.Equal(t, []string{"49", "Deutschland", "Germany"}, rows[0])
	// leading space is trimmed, row arity is preserved as-is
	assert.Equal(t, []string{"33", "France", "France"}, rows[1])
	assert.Equal(t, []string{"Germany", "France"}, rows[2])
	assert.Equal(t, []string{"badrow"}, rows[3])
}

func TestReadCSVRowsMissingFile(t *testing.T) {
	rows, err := utils.ReadCSVRows("/nonexistent/ids.csv")

	assert.Error(t, err)
	assert.Nil(t, rows)
}
