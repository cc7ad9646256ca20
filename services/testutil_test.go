// file: services/testutil_test.go
package services_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"campus-teams/models"
	"campus-teams/services"
	"campus-teams/store"
)

// newTestStore opens a throwaway SQLite database for one test.
func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "campus_test.db"))
	require.NoError(t, err, "failed to open test store")
	return s
}

var rollSeq int

// registerStudent logs a fresh student in with a unique roll number.
func registerStudent(t *testing.T, s *store.Store, name string) *models.Student {
	t.Helper()
	rollSeq++
	roll := fmt.Sprintf("2025BTCS%03d", rollSeq%1000)
	st, err := services.NewStudentService(s).Login(name, "CSE", "3", roll)
	require.NoError(t, err, "failed to register test student")
	return st
}
