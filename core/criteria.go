package core

import (
	"context"

	"github.com/huangsam/rategame/internal/contract"
	"github.com/huangsam/rategame/schema"
	"go.uber.org/zap"
)

// LoadCriteria reads the criteria table from src.
func LoadCriteria(ctx context.Context, src contract.CriteriaSource, logger *zap.Logger) (schema.CriteriaTable, error) {
	logger.Debug("loading criteria", zap.String("location", src.Location()))
	table, err := src.Load(ctx)
	if err != nil {
		logger.Error("criteria load failed", zap.String("location", src.Location()), zap.Error(err))
		return nil, err
	}
	logger.Info("criteria loaded", zap.Int("rows", table.Len()))
	return table, nil
}

// SplitCriteria groups the table rows by category. Categories appear in the
// order they are first seen and criteria keep their row order.
func SplitCriteria(table schema.CriteriaTable) *schema.CriteriaIndex {
	index := schema.NewCriteriaIndex()
	for _, row := range table {
		index.Append(row.Category, row.Criterion)
	}
	return index
}
