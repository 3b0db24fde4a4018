package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialector(t *testing.T) {
	pg, err := Dialector("postgres", "host=localhost dbname=leads")
	require.NoError(t, err)
	assert.Equal(t, "postgres", pg.Name())

	my, err := Dialector("mysql", "user:pass@tcp(localhost:3306)/leads")
	require.NoError(t, err)
	assert.Equal(t, "mysql", my.Name())

	_, err = Dialector("sqlite", "leads.db")
	assert.Error(t, err)
}
