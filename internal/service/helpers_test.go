package service

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/solace/internal/catalog"
	"github.com/alexanderramin/solace/internal/protocol"
	"github.com/alexanderramin/solace/internal/repository"
	"github.com/alexanderramin/solace/internal/risk"
	"github.com/alexanderramin/solace/internal/testutil"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	return cat
}

func newSessionService(t *testing.T) (SessionService, *sql.DB) {
	t.Helper()
	database := testutil.NewTestDB(t)
	svc := NewSessionService(
		repository.NewSQLiteSessionRepo(database),
		newTestCatalog(t),
		testutil.NewTestUoW(database),
	)
	return svc, database
}

func newTriageService(t *testing.T) (TriageService, SessionService) {
	t.Helper()
	database := testutil.NewTestDB(t)
	cat := newTestCatalog(t)
	sessions := repository.NewSQLiteSessionRepo(database)

	classifier := risk.NewClassifier(cat.Indicators(), cat.Resources(), risk.DefaultThresholds())
	selector := protocol.NewSelector(cat.Techniques())

	triage := NewTriageService(classifier, selector, cat, sessions)
	sessionSvc := NewSessionService(sessions, cat, testutil.NewTestUoW(database))
	return triage, sessionSvc
}
