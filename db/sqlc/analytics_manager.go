package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"
)

type AnalyticsManager struct {
	queries Querier
}

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

func (a *AnalyticsManager) IncrementMatchesCreatedCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.AnalyticsIncrementMatchesCreatedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) IncrementMatchesCompletedCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.AnalyticsIncrementMatchesCompletedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) IncrementComputerWinsCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.AnalyticsIncrementComputerWinsCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetMatchesCreatedCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.GetMatchesCreatedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetMatchServerAnalytics(ctx context.Context, serverIpNet pqtype.Inet) (MatchServerAnalytic, error) {
	return a.queries.GetMatchServerAnalytics(ctx, serverIpNet)
}
