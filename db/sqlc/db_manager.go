package sqlc

import "time"

const (
	QuerierCtxTimeout = time.Second * 10
)

// Bundles the higher-level query facades. Only match analytics
// for now; game state never touches the database.
type DbManager struct {
	Analytics *AnalyticsManager
}

func NewDbManager(queries Querier) DbManager {
	return DbManager{
		Analytics: NewAnalyticsManager(queries),
	}
}
